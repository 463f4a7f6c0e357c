// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/i3hub-official/fieldshield/internal/app"
	"github.com/i3hub-official/fieldshield/internal/config"
	"github.com/i3hub-official/fieldshield/internal/protection/domain"
	protectionUsecase "github.com/i3hub-official/fieldshield/internal/protection/usecase"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// newProtector builds the container and returns the protection façade along
// with the container for shutdown.
func newProtector() (*app.Container, protectionUsecase.Protector, error) {
	container := app.NewContainer(config.Load())
	protector, err := container.Protector()
	if err != nil {
		return nil, nil, err
	}
	return container, protector, nil
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// parseTierArg converts the --tier flag value into a Tier.
func parseTierArg(tier string) (domain.Tier, error) {
	return domain.ParseTier(tier)
}
