package commands

import (
	"context"
	"fmt"
)

// RunProtect protects a plaintext value under the given tier and prints the
// storage-safe representation. For searchable tiers the search digest is
// printed alongside the ciphertext.
func RunProtect(ctx context.Context, io IOTuple, tier, value string) error {
	t, err := parseTierArg(tier)
	if err != nil {
		return err
	}

	container, protector, err := newProtector()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	field, err := protector.Protect(ctx, value, t)
	if err != nil {
		return err
	}

	if field.Empty() {
		fmt.Fprintln(io.Writer, "# empty input: nothing to protect")
		return nil
	}

	fmt.Fprintf(io.Writer, "ciphertext: %s\n", field.Ciphertext)
	if field.SearchHash != "" {
		fmt.Fprintf(io.Writer, "search_hash: %s\n", field.SearchHash)
	}
	return nil
}
