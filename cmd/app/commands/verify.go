package commands

import (
	"context"
	"fmt"

	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

// RunVerify checks a plaintext value against a stored protected value. When
// a search digest is supplied the match additionally requires the recomputed
// digest to agree with it.
func RunVerify(ctx context.Context, io IOTuple, tier, value, ciphertext, searchHash string) error {
	t, err := parseTierArg(tier)
	if err != nil {
		return err
	}

	container, protector, err := newProtector()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	field := domain.ProtectedField{Ciphertext: ciphertext, SearchHash: searchHash}
	ok, err := protector.Verify(ctx, value, field, t)
	if err != nil {
		return err
	}

	if ok {
		fmt.Fprintln(io.Writer, "match: true")
	} else {
		fmt.Fprintln(io.Writer, "match: false")
	}
	return nil
}
