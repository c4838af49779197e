package main

import (
	"github.com/forgecli/forge-cli-core/clientry"
	"github.com/forgecli/forge-cli-core/commands"
)

func main() {
	clientry.Main("forge", "Project build and tooling CLI.", commands.GetCommands)
}
