package commands

import (
	"errors"

	"orderimport/internal/pkg/guard"
)

var ErrRefreshDirectoryCommandIsNotConstructed = errors.New(
	"RefreshDirectoryCommand must be created via NewRefreshDirectoryCommand constructor",
)

// RefreshDirectoryCommand reloads the cached customer directory from storage.
// It is parameterless and is issued by the refresh job.
type RefreshDirectoryCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshDirectoryCommand() RefreshDirectoryCommand {
	return RefreshDirectoryCommand{guard: guard.NewConstructorGuard()}
}

func (c RefreshDirectoryCommand) Validate() error {
	return c.guard.Validate(ErrRefreshDirectoryCommandIsNotConstructed)
}
