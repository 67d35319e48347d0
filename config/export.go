package config

import "fmt"

// ExportConfig defines where and how the sample sequence is written.
type ExportConfig struct {
	// Format selects the export encoding: "csv" or "json".
	Format string `json:"format"`
	// Path is the output file; empty means stdout.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *ExportConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "csv"
	}
}

// Validate checks mandatory fields.
func (c ExportConfig) Validate() error {
	if c.Format != "csv" && c.Format != "json" {
		return fmt.Errorf("unknown export format %s", c.Format)
	}
	return nil
}
