package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/optionsim/mcprice/pricer"
)

// RunFile is an optional YAML description of a pricing run.
// Omitted keys keep the flag defaults; explicitly set flags win over the file.
type RunFile struct {
	Spot       *float64 `yaml:"spot"`
	Strike     *float64 `yaml:"strike"`
	Maturity   *float64 `yaml:"maturity"`
	Rate       *float64 `yaml:"rate"`
	Volatility *float64 `yaml:"volatility"`
	Paths      *int64   `yaml:"paths"`
	Workers    *int     `yaml:"workers"`
	Seed       *int64   `yaml:"seed"`
}

// LoadRunFile parses a run file with strict field checking: typos are errors.
func LoadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&rf); err != nil {
		return nil, fmt.Errorf("parsing run file %s: %w", path, err)
	}
	return &rf, nil
}

// applyTo copies every key present in the file into cfg, skipping the
// keys for which changed reports true (flags given on the command line).
func (rf *RunFile) applyTo(cfg *pricer.Config, changed func(flag string) bool) {
	setFloat := func(flag string, src *float64, dst *float64) {
		if src != nil && !changed(flag) {
			*dst = *src
		}
	}
	setFloat("spot", rf.Spot, &cfg.Params.Spot)
	setFloat("strike", rf.Strike, &cfg.Params.Strike)
	setFloat("maturity", rf.Maturity, &cfg.Params.Maturity)
	setFloat("rate", rf.Rate, &cfg.Params.Rate)
	setFloat("volatility", rf.Volatility, &cfg.Params.Volatility)

	if rf.Paths != nil && !changed("paths") {
		cfg.TotalPaths = *rf.Paths
	}
	if rf.Workers != nil && !changed("workers") {
		cfg.Workers = *rf.Workers
	}
	if rf.Seed != nil && !changed("seed") {
		seed := *rf.Seed
		cfg.Seed = &seed
	}
}
