package cli

import (
	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/strongbox-cli/strongbox/internal/auth"
	"github.com/strongbox-cli/strongbox/internal/config"
	"github.com/strongbox-cli/strongbox/internal/output"
	"github.com/strongbox-cli/strongbox/internal/vault"
)

// FormatterProvider wraps the formatter interface for Kong binding
type FormatterProvider struct {
	Formatter output.Formatter
}

// CLI is the root command structure
type CLI struct {
	Globals

	Menu               MenuCmd                      `cmd:"" default:"1" help:"Unlock the vault and open the interactive menu (default)"`
	Paths              PathsCmd                     `cmd:"" help:"Show config and store file locations"`
	Version            VersionCmd                   `cmd:"" help:"Show version information"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

// BeforeApply hook runs before any command execution
// It resolves file locations, creates the formatter, and binds dependencies
func (c *CLI) BeforeApply(ctx *kong.Context) error {
	paths := config.Resolve(c.Dir)

	mode := c.ResolvedOutput()
	var formatter output.Formatter
	if mode == "json" {
		formatter = output.NewJSON(c.ResultsOnly)
	} else {
		formatter = output.New(mode)
	}

	// Bind dependencies to kong context
	ctx.Bind(paths)
	ctx.Bind(&FormatterProvider{Formatter: formatter})
	ctx.Bind(&c.Globals)
	ctx.Bind(auth.NewGate(paths.ConfigFile))
	ctx.Bind(vault.New(paths.StoreFile))

	return nil
}

// VersionCmd shows version information
type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *kong.Context) error {
	version := ctx.Model.Vars()["version"]
	println("strongbox version " + version)
	return nil
}
