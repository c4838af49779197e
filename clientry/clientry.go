// Package clientry is the process entry layer: it prepares the environment,
// registers the discovered commands and dispatches the process arguments to
// exactly one of them.
package clientry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	forgeclicore "github.com/forgecli/forge-cli-core"
	"github.com/forgecli/forge-cli-core/docs/common"
	"github.com/forgecli/forge-cli-core/plugins/components"
	"github.com/forgecli/forge-cli-core/utils/config"
	"github.com/forgecli/forge-cli-core/utils/coreutils"
	corelog "github.com/forgecli/forge-cli-core/utils/log"
	gofrogcmd "github.com/jfrog/gofrog/io"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/urfave/cli"
)

// CommandProvider returns the full command set for a given project root.
type CommandProvider func(root string) ([]components.Command, error)

const (
	setupScriptUnix    = "setup_env.sh"
	setupScriptWindows = "setup_env.bat"
)

// Main runs the CLI: environment setup, command registration and dispatch.
// Exactly one command action runs per invocation; any error it returns
// terminates the process with a non-zero status.
func Main(name, description string, getCommands CommandProvider) {
	corelog.SetDefaultLogger()
	coreutils.SetCliExecutableName(name)

	// A setup failure is not a user mistake and not a command failure, so it
	// deliberately skips the central error handler.
	if err := runSetupScript(); err != nil {
		panic(err)
	}

	coreutils.ExitOnErr(RunWithArgs(os.Args, name, description, getCommands))
}

// RunWithArgs registers the provider's commands and parses args through the
// configured parser. It returns the failure of the single command that ran,
// if any; unknown or absent commands are user mistakes, reported and
// swallowed.
func RunWithArgs(args []string, name, description string, getCommands CommandProvider) error {
	return run(args, name, description, getCommands, os.Stdout)
}

func run(args []string, name, description string, getCommands CommandProvider, writer io.Writer) error {
	// The global --debug flag raises the log level before anything else runs.
	args = append([]string(nil), args...)
	debugIndex, debug, err := coreutils.FindBooleanFlag("--debug", args)
	if err != nil {
		return err
	}
	if debugIndex != -1 {
		coreutils.RemoveFlagFromCommand(&args, debugIndex, debugIndex)
		if debug {
			corelog.SetDebugLogger()
		}
	}

	root, err := os.Getwd()
	if err != nil {
		return errorutils.CheckError(err)
	}
	ctx := components.NewContext(root)
	log.Debug("Invocation id:", ctx.InvocationId)

	// The global --config flag is consumed here, before per-command parsing.
	cleanArgs, err := loadConfig(args, ctx)
	if err != nil {
		return err
	}

	commands, err := getCommands(root)
	if err != nil {
		return err
	}

	app := components.ConvertApp(components.App{
		Name:        name,
		Description: description,
		Version:     forgeclicore.GetVersion(),
		Commands:    commands,
	}, ctx)
	app.Writer = writer
	app.CommandNotFound = func(c *cli.Context, command string) {
		fmt.Fprintln(c.App.Writer, coreutils.PrintYellow(fmt.Sprintf(
			"Unrecognized command '%s'. Run '%s --help' to see a list of available commands.",
			command, coreutils.GetCliExecutableName())))
	}

	cli.CommandHelpTemplate = common.CommandHelpTemplate
	cli.AppHelpTemplate = common.AppHelpTemplate

	return app.Run(cleanArgs)
}

// loadConfig extracts the reserved --config flag from the raw arguments and
// loads the file it points to. Without the flag, the project config file is
// looked up from the root upwards. A project may pin the minimum core version
// it requires.
func loadConfig(args []string, ctx *components.Context) ([]string, error) {
	cleanArgs, configPath, err := coreutils.ExtractConfigFromArgs(args)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		var found bool
		if configPath, found = config.FindConfigFilePath(ctx.Root); !found {
			return cleanArgs, nil
		}
	}

	vConfig, err := config.ReadConfigFile(configPath, config.YAML)
	if err != nil {
		return nil, err
	}
	ctx.Config = vConfig

	err = coreutils.CheckMinimumVersion(forgeclicore.GetVersion(), vConfig.GetString(coreutils.MinCoreVersionKey))
	return cleanArgs, err
}

// runSetupScript executes the platform-appropriate environment-setup script
// located next to the executable, blocking until it completes. A missing
// script is a no-op.
func runSetupScript() error {
	executablePath, err := os.Executable()
	if err != nil {
		return errorutils.CheckError(err)
	}
	scriptName := setupScriptUnix
	if coreutils.IsWindows() {
		scriptName = setupScriptWindows
	}
	scriptPath := filepath.Join(filepath.Dir(executablePath), scriptName)
	if _, err = os.Stat(scriptPath); os.IsNotExist(err) {
		log.Debug("No setup script at", scriptPath)
		return nil
	}

	log.Debug("Running setup script:", scriptPath)
	return coreutils.ConvertExitCodeError(gofrogcmd.RunCmd(&coreutils.ScriptExecCmd{ScriptPath: scriptPath}))
}
