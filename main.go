package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	_ "github.com/joho/godotenv/autoload"

	"github.com/strongbox-cli/strongbox/internal/cli"
	"github.com/strongbox-cli/strongbox/internal/output"
)

var (
	version = "dev"
)

func main() {
	// Parse CLI
	cliInstance := &cli.CLI{}
	parser := kong.Must(cliInstance,
		kong.Name("strongbox"),
		kong.Description("Local password manager guarded by a master password"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	// Register completion predictors before parsing
	kongplete.Complete(parser,
		kongplete.WithPredictor("dir", complete.PredictDirs("*")),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	// Run command with bound dependencies
	if err := ctx.Run(); err != nil {
		// Handle error with proper exit code
		if cliErr, ok := err.(*output.CLIError); ok {
			formatter := output.New("plain")
			output.ExitWithError(formatter, cliErr)
			os.Exit(cliErr.ExitCode)
		}
		// Unknown error
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(output.ExitGeneral)
	}
}
