package port

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	dbconfig "dwdimport/config"
	"dwdimport/dwd/db"
	"dwdimport/store"
	"dwdimport/utils"
)

type Config struct {
	Verbose    bool     `arg:"-v" help:"Increase verbosity level"`
	BaseDir    string   `arg:"-p,--path" default:"." help:"Directory the category file patterns are relative to"`
	ConfigFile string   `arg:"-c,--config" default:"config.yaml" help:"YAML file with the database settings"`
	Categories []string `arg:"-t,--categories" help:"Optional space separated list of categories"`
	LogFile    string   `arg:"--log-file" help:"Write JSON logs to this file instead of the terminal"`

	// Creates the progress sink of a category, defaults to a terminal progress bar
	NewProgress func(size int, description string) Progress `arg:"-"`
}

func (Config) Description() string {
	return `Import DWD hourly observation files.
Every selected table is truncated before its files are imported.
Database settings are read from the config file, ".env" and the environment:
    - "DB_DRIVER" ("postgres" or "sqlite")
    - "DB_HOST", "DB_PORT", "DB_USERNAME", "DB_PASSWORD", "DB_DATABASE"
    - "DB_CONN_STRING" (overrides the settings above)`
}

func (config *Config) newBar(size int, description string) Progress {
	if config.NewProgress != nil {
		return config.NewProgress(size, description)
	}

	bar := utils.NewBar(size, description)
	bar.RenderBlank()
	return bar
}

// Returns the categories selected on the command line, in import order
func (config *Config) selectedCategories() []*db.Category {
	names := utils.FilterSlice(config.Categories, db.CategoryNames(), "Category '%v' does not exist, skipping")

	var categories []*db.Category
	for _, category := range db.Categories() {
		if slices.Contains(names, category.Name) {
			categories = append(categories, category)
		}
	}
	return categories
}

func (config *Config) Execute() error {
	logger, closer, err := utils.NewLogger(config.Verbose, config.LogFile)
	if err != nil {
		fmt.Println(err)
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	dbConfig, err := dbconfig.Resolve(config.ConfigFile)
	if err != nil {
		slog.Error("Error in configuration: " + err.Error())
		return err
	}

	ctx := context.Background()
	slog.Debug("Start importing data into database " + dbConfig.String())

	st, err := store.Open(ctx, dbConfig)
	if err != nil {
		slog.Error("Could not connect to database!", "error", err)
		return err
	}
	defer st.Close()
	slog.Debug("Successfully connected to database.")

	if err := Run(ctx, st, config); err != nil {
		return err
	}

	slog.Info("Finished importing!")
	return nil
}

// Imports the selected categories one after the other, stopping at the first failure
func Run(ctx context.Context, st store.Store, config *Config) error {
	for _, category := range config.selectedCategories() {
		slog.Info(fmt.Sprintf("Importing %s data...", category.Name))

		if _, err := ImportTable(ctx, category, st, config); err != nil {
			var truncateErr *TruncateError
			if errors.As(err, &truncateErr) {
				slog.Error(fmt.Sprintf("Could not truncate table %q!", category.TableName), "error", truncateErr.Err)
			} else {
				slog.Error(fmt.Sprintf("Could not import %s data!", category.Name), "error", err)
			}
			return err
		}
	}
	return nil
}
