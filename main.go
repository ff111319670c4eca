package main

import (
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"dwdimport/dwd"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var args dwd.Cmd
	parser := arg.MustParse(&args)

	// Errors are logged where they happen
	if err := args.Execute(parser); err != nil {
		os.Exit(1)
	}
}
