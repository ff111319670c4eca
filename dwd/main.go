package dwd

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	port "dwdimport/dwd/import"
	"dwdimport/dwd/list"
)

// Command line arguments for DWD imports
type Cmd struct {
	Import *port.Config `arg:"subcommand" help:"Import DWD hourly observation files"`
	List   *list.Config `arg:"subcommand" help:"List available DWD categories"`
}

func (Cmd) Description() string {
	return "Bulk-load DWD hourly climate observations into one table per category."
}

func (c *Cmd) Execute(parser *arg.Parser) error {
	switch {
	case c.Import != nil:
		return c.Import.Execute()
	case c.List != nil:
		return c.List.Execute()
	default:
		fmt.Println("Error: passing a subcommand is required.")
		fmt.Println()
		parser.WriteHelp(os.Stdout)
		return nil
	}
}
