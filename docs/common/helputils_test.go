package common

import (
	"strings"
	"testing"

	"github.com/forgecli/forge-cli-core/utils/coreutils"
	"github.com/stretchr/testify/assert"
)

func TestCreateCommandHelp(t *testing.T) {
	coreutils.SetCliExecutableName("forge")
	help := CreateCommandHelp(CommandHelpView{
		Name:          "bundle",
		Usage:         "[command options] <entry-file>",
		Description:   "Build the offline bundle.",
		SourceName:    "forge-cli-core",
		SourceVersion: "1.0.0",
		OptionHelps: []string{
			"--entry-file <value>\t[Mandatory] Path to the root file.",
			"--dev\t[Default: true] Development build.",
		},
		Examples: []ExampleView{
			{Desc: "Build for iOS", Cmd: "forge bundle --entry-file index.js --platform ios"},
			{Desc: "Build without dev mode", Cmd: "forge bundle --entry-file index.js --dev=false"},
		},
	})

	assert.Contains(t, help, "forge bundle [command options] <entry-file>")
	assert.Contains(t, help, "Build the offline bundle.")
	assert.Contains(t, help, "Source: forge-cli-core@1.0.0")
	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "--entry-file <value>\t[Mandatory] Path to the root file.")
	assert.Contains(t, help, "Example usage:")

	// Examples render in the order supplied.
	assert.Less(t, strings.Index(help, "Build for iOS"), strings.Index(help, "Build without dev mode"))
	assert.Contains(t, help, "forge bundle --entry-file index.js --platform ios")
	assert.Contains(t, help, "forge bundle --entry-file index.js --dev=false")
}

func TestCreateCommandHelpMinimal(t *testing.T) {
	coreutils.SetCliExecutableName("forge")
	help := CreateCommandHelp(CommandHelpView{Name: "clean"})

	assert.Contains(t, help, "forge clean")
	assert.Contains(t, help, "Options:")
	assert.NotContains(t, help, "Source:")
	assert.NotContains(t, help, "Example usage:")
}

func TestCreateUsage(t *testing.T) {
	assert.Equal(t, "", CreateUsage(nil, false))
	assert.Equal(t, "[command options]", CreateUsage(nil, true))
	assert.Equal(t, "<entry-file>", CreateUsage([]string{"entry-file"}, false))
	assert.Equal(t, "[command options] <entry-file> <out>", CreateUsage([]string{"entry-file", "out"}, true))
}
