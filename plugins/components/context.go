package components

import (
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Context is created once per run and shared read-only by all commands.
type Context struct {
	// Root is the working directory at startup.
	Root string
	// InvocationId correlates log records of a single run.
	InvocationId string
	// Config holds the loaded configuration file, nil when none was found.
	Config *viper.Viper
}

func NewContext(root string) *Context {
	return &Context{
		Root:         root,
		InvocationId: uuid.NewString(),
	}
}

// Options holds the option values parsed for a single command invocation.
type Options struct {
	stringOptions map[string]string
	boolOptions   map[string]bool
}

func (o *Options) GetStringOptionValue(optionName string) string {
	return o.stringOptions[optionName]
}

func (o *Options) GetBoolOptionValue(optionName string) bool {
	return o.boolOptions[optionName]
}

func (o *Options) IsSet(optionName string) bool {
	if _, ok := o.stringOptions[optionName]; ok {
		return true
	}
	_, ok := o.boolOptions[optionName]
	return ok
}
