package controllers

import (
	"go.uber.org/dig"

	"github.com/e-marchand/dep-checker/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewCheckController); err != nil {
		return err
	}
	if err := container.Provide(NewInspectController); err != nil {
		return err
	}
	if err := container.Provide(NewLocalController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	checkController *CheckController,
	inspectController *InspectController,
	localController *LocalController,
) *[]entities.Controller {
	return &[]entities.Controller{
		checkController,
		inspectController,
		localController,
	}
}
