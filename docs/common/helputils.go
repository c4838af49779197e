package common

import (
	"fmt"
	"strings"

	"github.com/forgecli/forge-cli-core/utils/coreutils"
	"github.com/urfave/cli"
)

// CommandHelpView holds everything needed to render one command's help text.
// It is a plain value so the renderer stays a pure function of its inputs.
type CommandHelpView struct {
	Name        string
	Usage       string
	Description string
	// Name and version of the package the command came from, if known.
	SourceName    string
	SourceVersion string
	OptionHelps   []string
	Examples      []ExampleView
}

type ExampleView struct {
	Desc string
	Cmd  string
}

// CreateCommandHelp renders the full help text of a single command:
// a title line, the description, an optional source line, the options block
// and optional usage examples.
func CreateCommandHelp(view CommandHelpView) string {
	title := coreutils.GetCliExecutableName() + " " + view.Name
	if view.Usage != "" {
		title += " " + view.Usage
	}
	help := "\n" + coreutils.PrintBoldTitle(title) + "\n"

	if view.Description != "" {
		help += "\n" + view.Description + "\n"
	}
	if view.SourceName != "" {
		help += "\n" + coreutils.PrintComment("Source: "+view.SourceName+"@"+view.SourceVersion) + "\n"
	}

	help += "\n" + coreutils.PrintBold("Options:") + "\n"
	for _, optionHelp := range view.OptionHelps {
		help += "\t" + optionHelp + "\n"
	}

	if len(view.Examples) > 0 {
		help += "\n" + coreutils.PrintBold("Example usage:") + "\n"
		for _, example := range view.Examples {
			help += "\t" + example.Desc + ":\n"
			help += "\t  " + coreutils.PrintLink(example.Cmd) + "\n"
		}
	}
	return strings.TrimSuffix(help, "\n")
}

// CreateUsage builds the command's usage string out of its argument names.
func CreateUsage(argumentNames []string, hasOptions bool) string {
	usage := ""
	if hasOptions {
		usage = "[command options]"
	}
	for _, name := range argumentNames {
		if usage != "" {
			usage += " "
		}
		usage += "<" + name + ">"
	}
	return usage
}

func CreateBashCompletionFunc(extraCommands ...string) cli.BashCompleteFunc {
	return func(ctx *cli.Context) {
		for _, command := range extraCommands {
			fmt.Println(command)
		}
		flagNames := append(ctx.FlagNames(), "help")
		for _, flagName := range flagNames {
			fmt.Println("--" + flagName)
		}
	}
}
