// SPDX-License-Identifier: MIT

package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsemat/sparse"
)

//go:embed config.schema.json
var configSchemaJSON string

var configSchema = jsonschema.MustCompileString("config.schema.json", configSchemaJSON)

// Config is the optional sparsecalc.yaml.
type Config struct {
	Outputs     Outputs `yaml:"outputs"`
	MulStrategy string  `yaml:"mul_strategy"`
	Print       bool    `yaml:"print"`
}

// Outputs maps each operation to the file its result is saved to.
type Outputs struct {
	Add      string `yaml:"add"`
	Subtract string `yaml:"subtract"`
	Multiply string `yaml:"multiply"`
}

func defaults() Config {
	return Config{
		Outputs: Outputs{
			Add:      "result_add.txt",
			Subtract: "result_subtract.txt",
			Multiply: "result_multiply.txt",
		},
		MulStrategy: sparse.DefaultMulStrategy.String(),
	}
}

// loadConfig returns defaults() overlaid with the YAML file at path.
// An empty path or an empty file yields the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if strings.TrimSpace(string(b)) == "" {
		return cfg, nil
	}

	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := configSchema.Validate(doc); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Normalize trims whitespace and refills fields left blank.
func (c *Config) Normalize() {
	d := defaults()
	c.Outputs.Add = orDefault(c.Outputs.Add, d.Outputs.Add)
	c.Outputs.Subtract = orDefault(c.Outputs.Subtract, d.Outputs.Subtract)
	c.Outputs.Multiply = orDefault(c.Outputs.Multiply, d.Outputs.Multiply)
	c.MulStrategy = orDefault(c.MulStrategy, d.MulStrategy)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

// Validate checks cross-field rules the schema cannot express.
func (c Config) Validate() error {
	if _, err := sparse.ParseMulStrategy(c.MulStrategy); err != nil {
		return err
	}
	seen := map[string]string{}
	for name, p := range map[string]string{
		"add":      c.Outputs.Add,
		"subtract": c.Outputs.Subtract,
		"multiply": c.Outputs.Multiply,
	} {
		if other, dup := seen[p]; dup {
			return fmt.Errorf("outputs.%s and outputs.%s share path %q", other, name, p)
		}
		seen[p] = name
	}
	return nil
}

// mulOptions turns the configured strategy into sparse options.
func (c Config) mulOptions() []sparse.Option {
	s, err := sparse.ParseMulStrategy(c.MulStrategy)
	if err != nil {
		return nil // Validate already rejected it; fall back to the default.
	}
	return []sparse.Option{sparse.WithMulStrategy(s)}
}

// outputFor returns the configured result path for o.
func (c Config) outputFor(o op) string {
	switch o {
	case opAdd:
		return c.Outputs.Add
	case opSub:
		return c.Outputs.Subtract
	default:
		return c.Outputs.Multiply
	}
}
