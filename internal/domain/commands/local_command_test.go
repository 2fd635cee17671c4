//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-marchand/dep-checker/internal/domain/commands"
	"github.com/e-marchand/dep-checker/internal/domain/entities"
	"github.com/e-marchand/dep-checker/test/domain/commanddoubles"
	doubles "github.com/e-marchand/dep-checker/test/infrastructure/repositorydoubles"
)

func TestLocalCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should validate the repository the clone points to", func(t *testing.T) {
		t.Parallel()

		// given
		remote := &doubles.StubRemoteRepository{Ref: entities.RepositoryRef{Owner: "acme", Name: "Widget"}}
		validate := &commanddoubles.StubValidateCommand{
			Results: []entities.RepositoryValidation{{Repository: "acme/Widget", IsValid: true}},
		}
		cmd := commands.NewLocalCommand(remote, validate)
		opts := commands.LocalOptions{
			Validate: commands.ValidateOptions{Policy: entities.NewSelectionPolicy(true, "")},
		}

		// when
		result, err := cmd.Execute(context.Background(), entities.DefaultSettings(), opts)

		// then
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, []string{"."}, remote.RequestedDir)
		assert.Equal(t, []string{"acme/Widget"}, validate.LastIdentifiers)
		assert.Equal(t, entities.SelectAll, validate.LastOpts.Policy.Mode)
	})

	t.Run("should fail when the remote cannot be detected", func(t *testing.T) {
		t.Parallel()

		// given
		remote := &doubles.StubRemoteRepository{Err: errors.New("not a git repository")}
		validate := &commanddoubles.StubValidateCommand{}
		cmd := commands.NewLocalCommand(remote, validate)

		// when
		_, err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.LocalOptions{RepoDir: "/tmp/x"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a git repository")
		assert.Equal(t, 0, validate.ExecuteCallCount)
	})
}
