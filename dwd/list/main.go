package list

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"dwdimport/dwd/db"
)

type Config struct {
	CSV bool `arg:"--csv" help:"Print the categories as CSV"`
}

type categoryInfo struct {
	Name    string `csv:"category"`
	Table   string `csv:"table"`
	Pattern string `csv:"pattern"`
	Columns int    `csv:"columns"`
}

func (config *Config) Execute() error {
	return config.Write(os.Stdout)
}

func (config *Config) Write(w io.Writer) error {
	var infos []*categoryInfo
	for _, c := range db.Categories() {
		infos = append(infos, &categoryInfo{Name: c.Name, Table: c.TableName, Pattern: c.Pattern, Columns: len(c.Fields)})
	}

	if config.CSV {
		return gocsv.Marshal(infos, w)
	}

	fmt.Fprintln(w, "Available DWD categories:")
	for _, info := range infos {
		fmt.Fprintf(w, "    - %-17s %s\n", info.Name, info.Pattern)
	}
	return nil
}
