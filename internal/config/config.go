// Package config reads and validates the optional YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ancients-collective/winaudit/internal/output"
)

// MaxWorkers bounds the workers setting.
const MaxWorkers = 256

// Config is the file form of the audit options. Command-line flags
// override any value set here.
type Config struct {
	// Categories restricts the audit to these category IDs. Empty means all.
	Categories []string `yaml:"categories" validate:"dive,category"`

	// Workers caps concurrent categories and rules. 0 selects the CPU count.
	Workers int `yaml:"workers" validate:"workers"`

	Verbose bool `yaml:"verbose"`
	Quiet   bool `yaml:"quiet"`

	Outputs Outputs `yaml:"outputs"`
}

// Outputs names the report files to write. Empty entries are skipped.
type Outputs struct {
	JSON  string `yaml:"json" validate:"omitempty,max=4096"`
	HTML  string `yaml:"html" validate:"omitempty,max=4096"`
	CSV   string `yaml:"csv" validate:"omitempty,max=4096"`
	JSONL string `yaml:"jsonl" validate:"omitempty,max=4096"`
	Prom  string `yaml:"prom" validate:"omitempty,max=4096"`
}

// Targets returns the configured outputs as export targets, in a fixed order.
func (o Outputs) Targets() []output.Target {
	var ts []output.Target
	for _, t := range []output.Target{
		{Format: output.FormatJSON, Path: o.JSON},
		{Format: output.FormatHTML, Path: o.HTML},
		{Format: output.FormatCSV, Path: o.CSV},
		{Format: output.FormatJSONL, Path: o.JSONL},
		{Format: output.FormatProm, Path: o.Prom},
	} {
		if t.Path != "" {
			ts = append(ts, t)
		}
	}
	return ts
}

// Loader reads configuration files and validates them against the set of
// known category IDs.
type Loader struct {
	validate   *validator.Validate
	categories map[string]struct{}
}

// New creates a Loader that accepts the given category IDs.
func New(knownCategories []string) *Loader {
	cats := make(map[string]struct{}, len(knownCategories))
	for _, c := range knownCategories {
		cats[c] = struct{}{}
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := cats[fl.Field().String()]
		return ok
	})

	_ = v.RegisterValidation("workers", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n >= 0 && n <= MaxWorkers
	})

	return &Loader{validate: v, categories: cats}
}

// Load reads and validates the file at path.
func (l *Loader) Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %q: %w", path, err)
	}
	cfg, err := l.Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML. Unknown keys are rejected. An empty
// document yields the zero Config.
func (l *Loader) Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.validate.Struct(cfg); err != nil {
		return Config{}, l.formatValidationErrors(err)
	}
	if cfg.Verbose && cfg.Quiet {
		return Config{}, fmt.Errorf("verbose and quiet are mutually exclusive")
	}
	return cfg, nil
}

// formatValidationErrors converts validator errors into user-friendly messages,
// one per line.
func (l *Loader) formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, "  "+l.formatFieldError(fe))
	}
	return fmt.Errorf("validation failed:\n%s", strings.Join(messages, "\n"))
}

// formatFieldError converts a single field validation error to a human-readable message.
func (l *Loader) formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")

	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "workers":
		return fmt.Sprintf("%s must be between 0 and %d", field, MaxWorkers)
	case "category":
		return fmt.Sprintf("%s: unknown category %q (known: %s)", field, fe.Value(), l.knownCategoryList())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

// knownCategoryList returns a comma-separated list of known category IDs.
func (l *Loader) knownCategoryList() string {
	names := make([]string, 0, len(l.categories))
	for name := range l.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
