package components

type App struct {
	Name        string
	Description string
	Version     string
	Commands    []Command
}

type Command struct {
	// Name may carry a usage tail after the first token, e.g. "link <package>".
	// Only the first token is registered as the command name.
	Name        string
	Description string
	Aliases     []string
	Arguments   []Argument
	Options     []Option
	Examples    []Example
	// The package that contributed the command, if it came from one.
	Pkg    *PackageInfo
	Action ActionFunc
}

type Argument struct {
	Name        string
	Description string
}

type Example struct {
	Desc string
	Cmd  string
}

type PackageInfo struct {
	Name    string
	Version string
}

// ActionFunc runs the command: args are the positional arguments, ctx is the
// shared read-only run context and options holds the parsed option values.
type ActionFunc func(args []string, ctx *Context, options *Options) error
