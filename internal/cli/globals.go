package cli

import (
	"os"

	"golang.org/x/term"
)

// Globals holds global flags available to all commands
type Globals struct {
	Dir         string `help:"Directory holding both config.json and passwords.json (defaults to XDG paths)" env:"STRONGBOX_DIR" predictor:"dir"`
	Output      string `help:"Output format" default:"auto" enum:"json,plain,rich,auto" short:"o" env:"STRONGBOX_OUTPUT"`
	ResultsOnly bool   `help:"Strip JSON envelope, return data array only" env:"STRONGBOX_RESULTS_ONLY"`
}

// ResolvedOutput returns the effective output mode
// "auto" detects TTY: if stdout is TTY -> rich, else -> plain
func (g *Globals) ResolvedOutput() string {
	if g.Output != "auto" {
		return g.Output
	}

	// Detect if stdout is a TTY
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "rich"
	}

	return "plain"
}
