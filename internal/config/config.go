// Package config handles converter configuration loading and management.
package config

import (
	"sort"
	"strings"
)

// Config holds all converter settings.
type Config struct {
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Convert Convert       `yaml:"convert" toml:"convert"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Convert holds settings that shape the converted configuration.
type Convert struct {
	// Namespace overrides the namespace declared by the source pack.
	Namespace string `yaml:"namespace" toml:"namespace"`

	// DefaultColor prefixes every item name that has no namespace color.
	DefaultColor string `yaml:"default_color" toml:"default_color"`

	// NamespaceColors maps a namespace substring to a name color.
	NamespaceColors map[string]string `yaml:"namespace_colors" toml:"namespace_colors"`

	CategoryLore     []string `yaml:"category_lore" toml:"category_lore"`
	CategoryPriority int      `yaml:"category_priority" toml:"category_priority"`

	// GeneratedHeader is written as the first line of each output file.
	// Empty disables the header.
	GeneratedHeader string `yaml:"generated_header" toml:"generated_header"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Convert: DefaultConvert(),
	}
}

// DefaultConvert returns the default conversion settings.
func DefaultConvert() Convert {
	return Convert{
		DefaultColor: "<white>",
		NamespaceColors: map[string]string{
			"elitecreatures": "<#FFCF20>",
		},
		CategoryLore: []string{
			"<!i><gray>Converted by <#FFFF00>MCC</#FFFF00>",
		},
		CategoryPriority: 1,
		GeneratedHeader:  "# Generated by Minecraft Config Converter",
	}
}

// ColorFor returns the item name color for namespace. Substring keys are
// tried in lexical order; the first match wins.
func (c Convert) ColorFor(namespace string) string {
	keys := make([]string, 0, len(c.NamespaceColors))
	for k := range c.NamespaceColors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if k != "" && strings.Contains(namespace, k) {
			return c.NamespaceColors[k]
		}
	}
	return c.DefaultColor
}
