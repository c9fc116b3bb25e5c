package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Config holds everything the command-line driver needs to build and solve
// a board.
type Config struct {
	Dim        int
	Seed       int64 // 0 picks a time-based seed
	Dictionary string

	LogLevel  string
	LogFormat string

	Gemini GeminiConfig
}

// GeminiConfig selects the VertexAI project used to scan board photos.
// An empty Project disables scanning.
type GeminiConfig struct {
	Project string
	Region  string
	Model   string
}

func DefaultConfig() Config {
	return Config{
		Dim:       4,
		LogLevel:  "info",
		LogFormat: "text",
		Gemini: GeminiConfig{
			Region: defaultRegion,
			Model:  defaultModel,
		},
	}
}

// Validate rejects settings the driver cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Dim < 1 {
		errs = append(errs, fmt.Errorf("dim must be at least 1, got %d", c.Dim))
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// hclConfigFile mirrors the file layout. Pointers tell "unset" apart from
// zero so file values only override defaults they actually name.
type hclConfigFile struct {
	Dim        *int            `hcl:"dim,optional"`
	Seed       *int64          `hcl:"seed,optional"`
	Dictionary *string         `hcl:"dictionary,optional"`
	Log        *hclLogBlock    `hcl:"log,block"`
	Gemini     *hclGeminiBlock `hcl:"gemini,block"`
}

type hclLogBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type hclGeminiBlock struct {
	Project *string `hcl:"project,optional"`
	Region  *string `hcl:"region,optional"`
	Model   *string `hcl:"model,optional"`
}

// LoadConfig reads an HCL config file on top of DefaultConfig. Expressions
// may read the process environment through the env object.
func LoadConfig(path string) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(src, path, os.Environ())
}

// ParseConfig decodes HCL source. environ uses the KEY=value form of
// os.Environ.
func ParseConfig(src []byte, filename string, environ []string) (Config, error) {
	cfg := DefaultConfig()

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclConfigFile
	diags = gohcl.DecodeBody(file.Body, envContext(environ), &parsed)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	setIf(&cfg.Dim, parsed.Dim)
	setIf(&cfg.Seed, parsed.Seed)
	setIf(&cfg.Dictionary, parsed.Dictionary)
	if l := parsed.Log; l != nil {
		setIf(&cfg.LogLevel, l.Level)
		setIf(&cfg.LogFormat, l.Format)
	}
	if g := parsed.Gemini; g != nil {
		setIf(&cfg.Gemini.Project, g.Project)
		setIf(&cfg.Gemini.Region, g.Region)
		setIf(&cfg.Gemini.Model, g.Model)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return cfg, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func envContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}
