// Package config loads mustuse settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/mustuse/internal/detector"
)

// DefaultIgnoreDirective is the comment text suppressing reports.
const DefaultIgnoreDirective = "mustuse:ignore"

// Config is the mustuse configuration file layout.
type Config struct {
	// Vocabulary lists method names treated as Result evidence.
	Vocabulary []string `yaml:"vocabulary"`

	// Exported adds upper-cased first-letter forms of the vocabulary names.
	Exported bool `yaml:"exported"`

	// Scope selects the part of a call matched against the vocabulary.
	Scope detector.Scope `yaml:"scope"`

	// ResultTypes enables type-based detection for the listed types.
	ResultTypes []Reference `yaml:"result_types"`

	// KnownTypes adds Result types of well-known libraries to ResultTypes.
	KnownTypes bool `yaml:"known_types"`

	// IgnoreDirective is the comment text suppressing reports.
	IgnoreDirective string `yaml:"ignore_directive"`

	// IncludeGenerated enables checks in generated files.
	IncludeGenerated bool `yaml:"include_generated"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Vocabulary:      append([]string(nil), detector.DefaultNames...),
		Exported:        true,
		Scope:           detector.ScopeExpression,
		IgnoreDirective: DefaultIgnoreDirective,
	}
}

// Load reads and parses a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate: %w", err)
	}

	return cfg, nil
}

// Validate checks values that cannot be checked while decoding.
func (c Config) Validate() error {
	if len(c.Vocabulary) == 0 {
		return errors.New("vocabulary must not be empty")
	}
	if _, err := detector.NewVocabulary(c.Vocabulary...); err != nil {
		return fmt.Errorf("vocabulary: %w", err)
	}

	if _, err := c.Scope.MarshalText(); err != nil {
		return fmt.Errorf("scope: %w", err)
	}

	if c.IgnoreDirective == "" || strings.ContainsAny(c.IgnoreDirective, " \t\n") {
		return fmt.Errorf("ignore directive must be a single non-empty word, got %q", c.IgnoreDirective)
	}

	return nil
}

// DetectorVocabulary returns the vocabulary of the configuration.
func (c Config) DetectorVocabulary() (detector.Vocabulary, error) {
	v, err := detector.NewVocabulary(c.Vocabulary...)
	if err != nil {
		return detector.Vocabulary{}, fmt.Errorf("build vocabulary: %w", err)
	}

	if c.Exported {
		v = v.WithExported()
	}

	return v, nil
}
