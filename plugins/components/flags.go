package components

type Option interface {
	GetName() string
	GetDescription() string
}

type StringOption struct {
	Name        string
	Description string
	// Parse transforms the raw command-line value. Identity when nil.
	Parse func(raw string) (string, error)
	// An option with a default value cannot be mandatory.
	Default   Default
	Mandatory bool
}

func (o StringOption) GetName() string {
	return o.Name
}

func (o StringOption) GetDescription() string {
	return o.Description
}

func (o StringOption) isMandatory() bool {
	return o.Mandatory
}

type BoolOption struct {
	Name         string
	Description  string
	DefaultValue bool
}

func (o BoolOption) GetName() string {
	return o.Name
}

func (o BoolOption) GetDescription() string {
	return o.Description
}

func (o BoolOption) GetDefault() bool {
	return o.DefaultValue
}

// Default is either a literal value or derived from the Context. Derived
// defaults are resolved once, at registration time.
type Default struct {
	literal string
	derive  func(*Context) string
}

func Literal(value string) Default {
	return Default{literal: value}
}

func Derived(derive func(*Context) string) Default {
	return Default{derive: derive}
}

func (d Default) IsSet() bool {
	return d.derive != nil || d.literal != ""
}

func (d Default) Resolve(ctx *Context) string {
	if d.derive != nil {
		return d.derive(ctx)
	}
	return d.literal
}
