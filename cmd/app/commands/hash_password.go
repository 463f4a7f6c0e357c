package commands

import (
	"context"
	"fmt"

	"github.com/i3hub-official/fieldshield/internal/protection/domain"
)

// RunHashPassword hashes a password into its versioned storage record.
// The password is not checked against the strength policy here; use
// check-password for that.
func RunHashPassword(ctx context.Context, io IOTuple, password string) error {
	container, protector, err := newProtector()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	field, err := protector.Protect(ctx, password, domain.TierPassword)
	if err != nil {
		return err
	}
	if field.Empty() {
		return fmt.Errorf("password must not be empty")
	}

	fmt.Fprintf(io.Writer, "record: %s\n", field.Ciphertext)
	return nil
}
