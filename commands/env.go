package commands

import (
	"fmt"
	"runtime"

	forgeclicore "github.com/forgecli/forge-cli-core"
	"github.com/forgecli/forge-cli-core/plugins/components"
	"github.com/forgecli/forge-cli-core/utils/coreutils"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

const (
	envFormatTable = "table"
	envFormatList  = "list"
)

type envRow struct {
	Property string `col-name:"Property"`
	Value    string `col-name:"Value" col-max-width:"80"`
}

func getEnvCommand() components.Command {
	return components.Command{
		Name:        "env",
		Description: "Print information about the environment the CLI runs in.",
		Options: []components.Option{
			components.StringOption{
				Name:        "format",
				Description: "Output format, either 'table' or 'list'.",
				Default:     components.Literal(envFormatTable),
				Parse:       parseEnvFormat,
			},
		},
		Examples: []components.Example{
			{
				Desc: "Print the environment as a table",
				Cmd:  "forge env",
			},
			{
				Desc: "Print the environment as plain lines",
				Cmd:  "forge env --format list",
			},
		},
		Pkg: &components.PackageInfo{
			Name:    forgeclicore.GetName(),
			Version: forgeclicore.GetVersion(),
		},
		Action: runEnv,
	}
}

func parseEnvFormat(raw string) (string, error) {
	switch raw {
	case envFormatTable, envFormatList:
		return raw, nil
	}
	return "", errorutils.CheckErrorf("unknown format '%s', expected '%s' or '%s'", raw, envFormatTable, envFormatList)
}

func runEnv(args []string, ctx *components.Context, options *components.Options) error {
	rows := collectEnvRows(ctx)
	if options.GetStringOptionValue("format") == envFormatList {
		for _, row := range rows {
			log.Output(row.Property + ": " + row.Value)
		}
		return nil
	}
	return coreutils.PrintTable(rows, "Environment", "No environment info available")
}

func collectEnvRows(ctx *components.Context) []envRow {
	rows := []envRow{
		{Property: "Project root", Value: ctx.Root},
		{Property: "OS/Arch", Value: fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
		{Property: "Invocation id", Value: ctx.InvocationId},
		{Property: "User agent", Value: forgeclicore.GetUserAgent()},
	}
	configFile := "none"
	if ctx.Config != nil {
		configFile = ctx.Config.ConfigFileUsed()
		if configFile == "" {
			configFile = "loaded"
		}
	}
	rows = append(rows, envRow{Property: "Config file", Value: configFile})
	return rows
}
