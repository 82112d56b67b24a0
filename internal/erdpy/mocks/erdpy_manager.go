// ErdpyManager is a mock that implements IErdpyManager
package mocks

import (
	"context"
)

type ErdpyManager struct {
	// Commands records every invocation's argument list in order
	Commands [][]string
	// Errors maps a contract subcommand ("build", "deploy") to the error
	// its invocation should return
	Errors map[string]error
	// RunHook, when set, runs before the programmed error is looked up.
	// Tests use it to write result files the way the real tool would.
	RunHook func(workingDir string, command ...string) error
	// Stdout maps a subcommand to the buffered output it should produce
	Stdout map[string]string
}

func NewErdpyManager() *ErdpyManager {
	return &ErdpyManager{
		Errors: make(map[string]error),
		Stdout: make(map[string]string),
	}
}

func subcommand(command []string) string {
	if len(command) > 1 && command[0] == "contract" {
		return command[1]
	}
	if len(command) > 0 {
		return command[0]
	}
	return ""
}

func (mgr *ErdpyManager) RunErdpyCommand(ctx context.Context, workingDir string, command ...string) error {
	mgr.Commands = append(mgr.Commands, command)
	if mgr.RunHook != nil {
		if err := mgr.RunHook(workingDir, command...); err != nil {
			return err
		}
	}
	return mgr.Errors[subcommand(command)]
}

func (mgr *ErdpyManager) RunErdpyCommandBuffered(ctx context.Context, workingDir string, command ...string) (string, error) {
	mgr.Commands = append(mgr.Commands, command)
	return mgr.Stdout[subcommand(command)], mgr.Errors[subcommand(command)]
}
