package components

import (
	"fmt"
	"strings"

	"github.com/forgecli/forge-cli-core/docs/common"
	"github.com/forgecli/forge-cli-core/utils/coreutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/urfave/cli"
)

// ConvertApp converts the abstract command descriptors into a runnable
// urfave/cli application. The registry is an explicit object rather than
// process-wide parser state, so tests can build as many as they need.
func ConvertApp(forgeApp App, ctx *Context) *cli.App {
	app := cli.NewApp()
	app.Name = forgeApp.Name
	app.Usage = forgeApp.Description
	app.Version = forgeApp.Version
	app.Commands = convertCommands(forgeApp, ctx)

	// Defaults:
	app.EnableBashCompletion = true
	return app
}

func convertCommands(forgeApp App, ctx *Context) []cli.Command {
	var converted []cli.Command
	for _, cmd := range forgeApp.Commands {
		converted = append(converted, convertCommand(cmd, ctx))
	}
	return converted
}

func convertCommand(cmd Command, ctx *Context) cli.Command {
	name, usageTail := splitCommandName(cmd.Name)
	helpView := common.CommandHelpView{
		Name:        name,
		Usage:       createCommandUsage(cmd, usageTail),
		Description: cmd.Description,
		OptionHelps: createOptionHelps(cmd, ctx),
		Examples:    convertExamples(cmd.Examples),
	}
	if cmd.Pkg != nil {
		helpView.SourceName = cmd.Pkg.Name
		helpView.SourceVersion = cmd.Pkg.Version
	}
	return cli.Command{
		Name:    name,
		Flags:   convertOptions(cmd, ctx),
		Aliases: cmd.Aliases,
		Usage:   cmd.Description,
		// Undocumented commands stay out of the generated command listing.
		Hidden:       cmd.Description == "",
		HelpName:     common.CreateCommandHelp(helpView),
		BashComplete: common.CreateBashCompletionFunc(),
		// Passing any other interface than 'cli.ActionFunc' will fail the command.
		Action: getActionFunc(cmd, ctx),
	}
}

// The first token of the descriptor name is the command name, the rest is kept
// as a usage tail for the help title.
func splitCommandName(name string) (string, string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

func createCommandUsage(cmd Command, usageTail string) string {
	if usageTail != "" {
		return usageTail
	}
	var argumentNames []string
	for _, argument := range cmd.Arguments {
		argumentNames = append(argumentNames, argument.Name)
	}
	return common.CreateUsage(argumentNames, len(cmd.Options) > 0)
}

func convertExamples(examples []Example) []common.ExampleView {
	var converted []common.ExampleView
	for _, example := range examples {
		converted = append(converted, common.ExampleView{Desc: example.Desc, Cmd: example.Cmd})
	}
	return converted
}

func createOptionHelps(cmd Command, ctx *Context) []string {
	var optionHelps []string
	for _, option := range cmd.Options {
		optionHelps = append(optionHelps, createOptionHelp(option, ctx))
	}
	optionHelps = append(optionHelps, "--"+coreutils.ConfigFlag+" <path>\t[Optional] "+configFlagDescription)
	return optionHelps
}

func createOptionHelp(option Option, ctx *Context) string {
	if stringOption, ok := option.(StringOption); ok {
		help := "--" + stringOption.Name + " <value>\t"
		switch {
		case stringOption.Default.IsSet():
			help += "[Default: " + stringOption.Default.Resolve(ctx) + "] "
		case stringOption.Mandatory:
			help += "[Mandatory] "
		default:
			help += "[Optional] "
		}
		return help + stringOption.Description
	}
	if boolOption, ok := option.(BoolOption); ok {
		defaultValue := "false"
		if boolOption.GetDefault() {
			defaultValue = "true"
		}
		return "--" + boolOption.Name + "\t[Default: " + defaultValue + "] " + boolOption.Description
	}
	return "--" + option.GetName() + "\t" + option.GetDescription()
}

const configFlagDescription = "Path to the CLI configuration file."

// convertOptions registers each declared option with the parser, and appends
// the reserved --config flag so a globally-recognized path never trips an
// unknown option error. Its value is consumed before per-command parsing.
func convertOptions(cmd Command, ctx *Context) []cli.Flag {
	var convertedFlags []cli.Flag
	for _, option := range cmd.Options {
		converted := convertByType(option, ctx)
		if converted != nil {
			convertedFlags = append(convertedFlags, converted)
		}
	}
	convertedFlags = append(convertedFlags, cli.StringFlag{
		Name:   coreutils.ConfigFlag,
		Usage:  configFlagDescription,
		Hidden: true,
	})
	return convertedFlags
}

func convertByType(option Option, ctx *Context) cli.Flag {
	if stringOption, ok := option.(StringOption); ok {
		return convertStringOption(stringOption, ctx)
	}
	if boolOption, ok := option.(BoolOption); ok {
		return convertBoolOption(boolOption)
	}
	log.Warn(fmt.Sprintf("Option '%s' does not match any known option type.", option.GetName()))
	return nil
}

func convertStringOption(o StringOption, ctx *Context) cli.Flag {
	return cli.StringFlag{
		Name:  o.Name,
		Usage: o.Description,
		// Defaults are resolved once, against the run context.
		Value: o.Default.Resolve(ctx),
	}
}

func convertBoolOption(o BoolOption) cli.Flag {
	if o.GetDefault() {
		return cli.BoolTFlag{
			Name:  o.Name,
			Usage: o.Description,
		}
	}
	return cli.BoolFlag{
		Name:  o.Name,
		Usage: o.Description,
	}
}

// Wrap the base's ActionFunc with our own, while retrieving needed information from the Context.
func getActionFunc(cmd Command, ctx *Context) cli.ActionFunc {
	return func(baseContext *cli.Context) error {
		if err := AssertRequiredOptions(cmd.Options, collectPassedOptions(baseContext, cmd.Options)); err != nil {
			return err
		}
		options, err := resolveOptions(baseContext, cmd.Options)
		if err != nil {
			return err
		}
		return cmd.Action(baseContext.Args(), ctx, options)
	}
}

// collectPassedOptions gathers the raw string values the parser saw, keyed by
// option name. Mandatory options have no defaults, so an empty value means the
// option was not supplied.
func collectPassedOptions(baseContext *cli.Context, options []Option) map[string]string {
	passed := make(map[string]string)
	for _, option := range options {
		if stringOption, ok := option.(StringOption); ok {
			passed[stringOption.Name] = baseContext.String(stringOption.Name)
		}
	}
	return passed
}

func resolveOptions(baseContext *cli.Context, options []Option) (*Options, error) {
	resolved := &Options{
		stringOptions: make(map[string]string),
		boolOptions:   make(map[string]bool),
	}

	for _, option := range options {
		if stringOption, ok := option.(StringOption); ok {
			value := baseContext.String(stringOption.Name)
			// Parse transforms raw supplied values only. A value coming from
			// the registered default is delivered as declared.
			if stringOption.Parse != nil && baseContext.IsSet(stringOption.Name) {
				var err error
				if value, err = stringOption.Parse(value); err != nil {
					return nil, err
				}
			}
			resolved.stringOptions[stringOption.Name] = value
			continue
		}

		if boolOption, ok := option.(BoolOption); ok {
			if boolOption.GetDefault() {
				resolved.boolOptions[boolOption.Name] = baseContext.BoolT(boolOption.Name)
			} else {
				resolved.boolOptions[boolOption.Name] = baseContext.Bool(boolOption.Name)
			}
		}
	}
	return resolved, nil
}
