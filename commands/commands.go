// Package commands holds the built-in commands shipped with the forge binary.
// Project-specific commands come from external providers; built-ins stay thin.
package commands

import (
	"github.com/forgecli/forge-cli-core/plugins/components"
)

// GetCommands is the command provider wired into the forge binary.
func GetCommands(root string) ([]components.Command, error) {
	return []components.Command{
		getVersionCommand(),
		getEnvCommand(),
	}, nil
}
