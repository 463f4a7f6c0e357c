package service

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

// Wire formats, one per scheme, all lowercase hex with ":" separators:
//
//	sealed      nonce:tag:cipher
//	basic       nonce:cipher      (tag rides inside the cipher segment)
//	searchable  cipher            (nonce is fixed per tier, tag inside)
//
// The segment count identifies the scheme; a stored value whose segment count
// does not match its tier's scheme is corrupted or mislabeled, and parsing
// refuses it. There is no format sniffing: a future format change introduces
// a leading version segment rather than heuristics.

const segmentSeparator = ":"

// encodeSealed splits the AEAD output into nonce:tag:cipher. sealed is the
// Seal output with the tag appended, so the tag is the trailing TagSize bytes.
func encodeSealed(nonce, sealed []byte) string {
	tagStart := len(sealed) - domain.TagSize
	return strings.Join([]string{
		hex.EncodeToString(nonce),
		hex.EncodeToString(sealed[tagStart:]),
		hex.EncodeToString(sealed[:tagStart]),
	}, segmentSeparator)
}

// decodeSealed parses nonce:tag:cipher and reassembles the AEAD input
// (cipher followed by tag).
func decodeSealed(encoded string) (nonce, sealed []byte, err error) {
	segments := strings.Split(encoded, segmentSeparator)
	if len(segments) != 3 {
		return nil, nil, fmt.Errorf(
			"%w: sealed value has %d segments, want 3",
			domain.ErrMalformedCiphertext, len(segments),
		)
	}

	nonce, err = decodeNonceSegment(segments[0])
	if err != nil {
		return nil, nil, err
	}

	tag, err := hex.DecodeString(segments[1])
	if err != nil || len(tag) != domain.TagSize {
		return nil, nil, fmt.Errorf("%w: invalid tag segment", domain.ErrMalformedCiphertext)
	}

	body, err := hex.DecodeString(segments[2])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid cipher segment", domain.ErrMalformedCiphertext)
	}

	return nonce, append(body, tag...), nil
}

// encodeBasic encodes nonce:cipher with the tag left inside the cipher segment.
func encodeBasic(nonce, sealed []byte) string {
	return hex.EncodeToString(nonce) + segmentSeparator + hex.EncodeToString(sealed)
}

// decodeBasic parses nonce:cipher.
func decodeBasic(encoded string) (nonce, sealed []byte, err error) {
	segments := strings.Split(encoded, segmentSeparator)
	if len(segments) != 2 {
		return nil, nil, fmt.Errorf(
			"%w: basic value has %d segments, want 2",
			domain.ErrMalformedCiphertext, len(segments),
		)
	}

	nonce, err = decodeNonceSegment(segments[0])
	if err != nil {
		return nil, nil, err
	}

	sealed, err = decodeCipherSegment(segments[1])
	if err != nil {
		return nil, nil, err
	}

	return nonce, sealed, nil
}

// encodeSearchable encodes the bare cipher segment; the nonce is implicit per tier.
func encodeSearchable(sealed []byte) string {
	return hex.EncodeToString(sealed)
}

// decodeSearchable parses a bare cipher segment.
func decodeSearchable(encoded string) ([]byte, error) {
	if strings.Contains(encoded, segmentSeparator) {
		return nil, fmt.Errorf(
			"%w: searchable value must be a single segment",
			domain.ErrMalformedCiphertext,
		)
	}
	return decodeCipherSegment(encoded)
}

func decodeNonceSegment(segment string) ([]byte, error) {
	nonce, err := hex.DecodeString(segment)
	if err != nil || len(nonce) != domain.NonceSize {
		return nil, fmt.Errorf("%w: invalid nonce segment", domain.ErrMalformedCiphertext)
	}
	return nonce, nil
}

func decodeCipherSegment(segment string) ([]byte, error) {
	sealed, err := hex.DecodeString(segment)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cipher segment", domain.ErrMalformedCiphertext)
	}
	// The Seal output always carries the tag, even for empty plaintext.
	if len(sealed) < domain.TagSize {
		return nil, fmt.Errorf("%w: cipher segment shorter than tag", domain.ErrMalformedCiphertext)
	}
	return sealed, nil
}
