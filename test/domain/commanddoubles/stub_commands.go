//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/e-marchand/dep-checker/internal/domain/commands"
	"github.com/e-marchand/dep-checker/internal/domain/entities"
)

// StubValidateCommand is a stub implementation of commands.Validate.
type StubValidateCommand struct {
	Results []entities.RepositoryValidation

	ExecuteCallCount int
	LastIdentifiers  []string
	LastOpts         commands.ValidateOptions
	LastSettings     *entities.Settings
}

var _ commands.Validate = (*StubValidateCommand)(nil)

func (s *StubValidateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	identifiers []string,
	opts commands.ValidateOptions,
) []entities.RepositoryValidation {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastIdentifiers = identifiers
	s.LastOpts = opts
	return s.Results
}

// StubInspectCommand is a stub implementation of commands.Inspect.
type StubInspectCommand struct {
	Result     entities.ReleaseValidation
	ExecuteErr error

	ExecuteCallCount int
	LastOpts         commands.InspectOptions
}

var _ commands.Inspect = (*StubInspectCommand)(nil)

func (s *StubInspectCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.InspectOptions,
) (entities.ReleaseValidation, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubLocalCommand is a stub implementation of commands.Local.
type StubLocalCommand struct {
	Result     entities.RepositoryValidation
	ExecuteErr error

	ExecuteCallCount int
	LastOpts         commands.LocalOptions
}

var _ commands.Local = (*StubLocalCommand)(nil)

func (s *StubLocalCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.LocalOptions,
) (entities.RepositoryValidation, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
