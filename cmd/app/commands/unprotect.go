package commands

import (
	"context"
	"fmt"

	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

// RunUnprotect recovers the canonical plaintext from a stored ciphertext.
// Integrity violations and one-way tiers surface as errors; they are never
// printed as an empty value.
func RunUnprotect(ctx context.Context, io IOTuple, tier, ciphertext string) error {
	t, err := parseTierArg(tier)
	if err != nil {
		return err
	}

	container, protector, err := newProtector()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	plaintext, err := protector.Unprotect(ctx, domain.ProtectedField{Ciphertext: ciphertext}, t)
	if err != nil {
		return err
	}

	fmt.Fprintf(io.Writer, "plaintext: %s\n", plaintext)
	return nil
}
