package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultResolve(t *testing.T) {
	ctx := NewContext("/srv/project")

	var unset Default
	assert.False(t, unset.IsSet())
	assert.Equal(t, "", unset.Resolve(ctx))

	literal := Literal("ios")
	assert.True(t, literal.IsSet())
	assert.Equal(t, "ios", literal.Resolve(ctx))

	derived := Derived(func(c *Context) string { return c.Root + "/build" })
	assert.True(t, derived.IsSet())
	assert.Equal(t, "/srv/project/build", derived.Resolve(ctx))
}

func TestBoolOptionGetDefault(t *testing.T) {
	assert.False(t, BoolOption{Name: "reset-cache"}.GetDefault())
	assert.True(t, BoolOption{Name: "dev", DefaultValue: true}.GetDefault())
}

func TestNewContext(t *testing.T) {
	ctx := NewContext("/srv/project")
	assert.Equal(t, "/srv/project", ctx.Root)
	assert.NotEmpty(t, ctx.InvocationId)
	assert.Nil(t, ctx.Config)

	// Every run gets its own id.
	assert.NotEqual(t, ctx.InvocationId, NewContext("/srv/project").InvocationId)
}

func TestOptionsAccessors(t *testing.T) {
	options := &Options{
		stringOptions: map[string]string{"platform": "ios"},
		boolOptions:   map[string]bool{"dev": true},
	}
	assert.Equal(t, "ios", options.GetStringOptionValue("platform"))
	assert.True(t, options.GetBoolOptionValue("dev"))
	assert.True(t, options.IsSet("platform"))
	assert.True(t, options.IsSet("dev"))
	assert.False(t, options.IsSet("sourcemap"))
}
