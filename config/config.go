// Package config loads billing configuration from an optional YAML file
// and environment variables, with defaults that make the binary work with
// no config file at all.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/billing"
)

type Config struct {
	Premium struct {
		Percent float64 `mapstructure:"percent"`
	} `mapstructure:"premium"`

	Deductions struct {
		SecurityDeposit float64 `mapstructure:"security_deposit"`
		IncomeTax       float64 `mapstructure:"income_tax"`
		GST             float64 `mapstructure:"gst"`
		LabourCess      float64 `mapstructure:"labour_cess"`
	} `mapstructure:"deductions"`

	Batch struct {
		Workers   int    `mapstructure:"workers"`
		OutputDir string `mapstructure:"output_dir"`
	} `mapstructure:"batch"`
}

// Load reads configs/config.yaml if present and overlays BILL_* environment
// variables. Missing config file is not an error.
func Load() (*Config, error) {
	return load("configs/config.yaml")
}

func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("BILL")
	v.AutomaticEnv()

	// Statutory defaults: 10% premium, SD 10%, IT 2%, GST 2%, LC 1%.
	v.SetDefault("premium.percent", 0.10)
	v.SetDefault("deductions.security_deposit", 0.10)
	v.SetDefault("deductions.income_tax", 0.02)
	v.SetDefault("deductions.gst", 0.02)
	v.SetDefault("deductions.labour_cess", 0.01)
	v.SetDefault("batch.workers", 4)
	v.SetDefault("batch.output_dir", "output")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigParseError); ok {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		// Config file is optional.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"deductions.security_deposit", c.Deductions.SecurityDeposit},
		{"deductions.income_tax", c.Deductions.IncomeTax},
		{"deductions.gst", c.Deductions.GST},
		{"deductions.labour_cess", c.Deductions.LabourCess},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("config %s = %g: must be a fraction between 0 and 1", r.name, r.value)
		}
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("config batch.workers = %d: must be at least 1", c.Batch.Workers)
	}
	return nil
}

// BillingOptions maps the configuration onto the engine's options.
func (c *Config) BillingOptions() billing.Options {
	return billing.Options{
		PremiumPercent: c.Premium.Percent,
		Rates: billing.DeductionRates{
			SecurityDeposit: c.Deductions.SecurityDeposit,
			IncomeTax:       c.Deductions.IncomeTax,
			GST:             c.Deductions.GST,
			LabourCess:      c.Deductions.LabourCess,
		},
	}
}
