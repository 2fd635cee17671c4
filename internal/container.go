package internal

import (
	"go.uber.org/dig"

	"github.com/e-marchand/dep-checker/internal/domain/commands"
	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/internal/infrastructure/controllers"
	"github.com/e-marchand/dep-checker/internal/infrastructure/repositories"
)

// RegisterProviders wires every layer into the DIG container, from the
// gateways and workspace up to the cobra-bound controllers.
func RegisterProviders(container *dig.Container) error {
	registrations := []func(*dig.Container) error{
		repositories.RegisterProviders,
		entities.RegisterProviders,
		commands.RegisterProviders,
		controllers.RegisterProviders,
	}
	for _, register := range registrations {
		if err := register(container); err != nil {
			return err
		}
	}

	return container.Provide(NewAppInternal)
}
