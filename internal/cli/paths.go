package cli

import (
	"os"

	"github.com/strongbox-cli/strongbox/internal/config"
	"github.com/strongbox-cli/strongbox/internal/output"
)

// PathsCmd shows where the config and store files live
type PathsCmd struct{}

// Run executes the paths command
func (cmd *PathsCmd) Run(paths config.Paths, fp *FormatterProvider) error {
	type pathItem struct {
		File   string
		Path   string
		Status string
	}

	items := []pathItem{
		{File: "config", Path: paths.ConfigFile, Status: fileStatus(paths.ConfigFile)},
		{File: "store", Path: paths.StoreFile, Status: fileStatus(paths.StoreFile)},
	}

	columns := []output.Column{
		{Name: "File", Key: "File"},
		{Name: "Path", Key: "Path"},
		{Name: "Status", Key: "Status"},
	}

	return fp.Formatter.PrintList(items, columns)
}

func fileStatus(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "missing"
	}
	return "exists"
}
