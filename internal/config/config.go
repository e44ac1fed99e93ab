// Package config holds the optional per-run configuration file. Every
// field has a built-in default so running without a dailyreport.yaml works.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jamil1016/dailyreport/internal/export"
	"github.com/jamil1016/dailyreport/internal/ingest"
)

// Config represents the top-level dailyreport.yaml configuration.
type Config struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
}

// SourceConfig describes the POS export files to ingest.
type SourceConfig struct {
	Extension  string   `yaml:"extension"`
	Encodings  []string `yaml:"encodings"`
	HeaderLine int      `yaml:"header_line"` // zero-based line of the header row
}

// OutputConfig describes the workbook to write.
type OutputConfig struct {
	File   string      `yaml:"file"`
	Sheets SheetConfig `yaml:"sheets"`
}

// SheetConfig names the three workbook sheets.
type SheetConfig struct {
	Report       string `yaml:"report"`
	Transactions string `yaml:"transactions"`
	Dishes       string `yaml:"dishes"`
}

// Default returns the built-in run configuration.
func Default() *Config {
	ing := ingest.DefaultOptions()
	exp := export.DefaultOptions()
	return &Config{
		Source: SourceConfig{
			Extension:  ing.Extension,
			Encodings:  ing.Encodings,
			HeaderLine: ing.HeaderLine,
		},
		Output: OutputConfig{
			File: exp.File,
			Sheets: SheetConfig{
				Report:       exp.ReportSheet,
				Transactions: exp.TransactionSheet,
				Dishes:       exp.DishSheet,
			},
		},
	}
}

// Load reads a dailyreport.yaml file. A missing file yields the defaults;
// fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// IngestOptions maps the source section onto ingest options.
func (c *Config) IngestOptions() ingest.Options {
	return ingest.Options{
		Extension:  c.Source.Extension,
		Encodings:  c.Source.Encodings,
		HeaderLine: c.Source.HeaderLine,
	}
}

// ExportOptions maps the output section onto export options.
func (c *Config) ExportOptions() export.Options {
	return export.Options{
		File:             c.Output.File,
		ReportSheet:      c.Output.Sheets.Report,
		TransactionSheet: c.Output.Sheets.Transactions,
		DishSheet:        c.Output.Sheets.Dishes,
	}
}
