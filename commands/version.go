package commands

import (
	forgeclicore "github.com/forgecli/forge-cli-core"
	"github.com/forgecli/forge-cli-core/plugins/components"
	"github.com/forgecli/forge-cli-core/utils/coreutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

func getVersionCommand() components.Command {
	return components.Command{
		Name:        "version",
		Description: "Print the CLI version.",
		Action: func(args []string, ctx *components.Context, options *components.Options) error {
			log.Output(coreutils.GetCliExecutableName() + " version " + forgeclicore.GetVersion())
			return nil
		},
	}
}
