package commands

import (
	"context"
)

// DirectoryRefresher is a directory whose contents can be reloaded.
type DirectoryRefresher interface {
	Refresh(ctx context.Context) error
}

// RefreshDirectoryCommandHandler reloads a cached directory.
type RefreshDirectoryCommandHandler struct {
	directory DirectoryRefresher
}

func NewRefreshDirectoryCommandHandler(directory DirectoryRefresher) RefreshDirectoryCommandHandler {
	return RefreshDirectoryCommandHandler{directory: directory}
}

func (h RefreshDirectoryCommandHandler) Handle(ctx context.Context, cmd RefreshDirectoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.directory.Refresh(ctx)
}
