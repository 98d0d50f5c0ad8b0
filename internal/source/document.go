// Package source defines the ItemsAdder configuration schema read by the converter.
//
// Only the fields the converter consumes are modelled; unknown keys are
// ignored. Section key order is recorded at decode time because the order of
// items drives the order of the converted output.
package source

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Top-level section names.
const (
	SectionInfo            = "info"
	SectionItems           = "items"
	SectionEquipments      = "equipments"
	SectionArmorsRendering = "armors_rendering"
	SectionCategories      = "categories"
	SectionTemplates       = "templates"
)

// Document is one parsed (or merged) ItemsAdder configuration.
type Document struct {
	Info            Info                `yaml:"info" json:"info,omitempty" jsonschema:"description=Pack metadata; carries the namespace"`
	Items           map[string]Item     `yaml:"items" json:"items,omitempty" jsonschema:"description=Item definitions keyed by local item id"`
	Equipments      map[string]Layers   `yaml:"equipments" json:"equipments,omitempty" jsonschema:"description=Legacy per-armor skin layer textures"`
	ArmorsRendering map[string]Layers   `yaml:"armors_rendering" json:"armors_rendering,omitempty" jsonschema:"description=Per-armor skin layer textures"`
	Categories      map[string]Category `yaml:"categories" json:"categories,omitempty" jsonschema:"description=Creative-menu categories"`
	Templates       map[string]any      `yaml:"templates" json:"templates,omitempty" jsonschema:"description=Item templates (not converted)"`

	order map[string][]string
}

// Info is the "info" block.
type Info struct {
	Namespace string `yaml:"namespace" json:"namespace,omitempty" jsonschema:"pattern=^[0-9a-z_.-]+$"`
}

// Layers maps an armor to its humanoid skin textures.
type Layers struct {
	Layer1 string `yaml:"layer_1" json:"layer_1,omitempty" jsonschema:"description=Body/helmet/boots layer texture"`
	Layer2 string `yaml:"layer_2" json:"layer_2,omitempty" jsonschema:"description=Leggings layer texture"`
}

// Category is one creative-menu category.
type Category struct {
	Name    string   `yaml:"name" json:"name,omitempty"`
	Icon    string   `yaml:"icon" json:"icon,omitempty"`
	Enabled *bool    `yaml:"enabled" json:"enabled,omitempty"`
	Items   []string `yaml:"items" json:"items,omitempty"`
}

// IsEnabled reports the "enabled" flag, which defaults to true.
func (c Category) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Parse decodes a YAML configuration file.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &doc, nil
}

// UnmarshalYAML decodes the document and records the key order of each section.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	type plain Document
	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}

	d.order = make(map[string][]string)
	for i := 0; i+1 < len(node.Content); i += 2 {
		section, value := node.Content[i].Value, node.Content[i+1]
		if value.Kind != yaml.MappingNode {
			continue
		}
		keys := make([]string, 0, len(value.Content)/2)
		for j := 0; j+1 < len(value.Content); j += 2 {
			keys = append(keys, value.Content[j].Value)
		}
		d.order[section] = keys
	}
	return nil
}

// HasDefinitions reports whether the document defines any items or armor layers.
func (d *Document) HasDefinitions() bool {
	return len(d.Items) > 0 || len(d.Equipments) > 0 || len(d.ArmorsRendering) > 0
}

// ItemKeys returns item ids in file order.
func (d *Document) ItemKeys() []string { return orderedKeys(d, SectionItems, d.Items) }

// EquipmentKeys returns "equipments" ids in file order.
func (d *Document) EquipmentKeys() []string {
	return orderedKeys(d, SectionEquipments, d.Equipments)
}

// ArmorsRenderingKeys returns "armors_rendering" ids in file order.
func (d *Document) ArmorsRenderingKeys() []string {
	return orderedKeys(d, SectionArmorsRendering, d.ArmorsRendering)
}

// CategoryKeys returns category ids in file order.
func (d *Document) CategoryKeys() []string {
	return orderedKeys(d, SectionCategories, d.Categories)
}

// TemplateKeys returns template ids in file order.
func (d *Document) TemplateKeys() []string {
	return orderedKeys(d, SectionTemplates, d.Templates)
}

// Merge folds other into d. Existing ids are overwritten in place, new ids are
// appended, and d's info is kept unless it has no namespace.
func (d *Document) Merge(other *Document) {
	if d.Info.Namespace == "" {
		d.Info = other.Info
	}
	d.Items = mergeSection(d, other, SectionItems, d.Items, other.Items)
	d.Equipments = mergeSection(d, other, SectionEquipments, d.Equipments, other.Equipments)
	d.ArmorsRendering = mergeSection(d, other, SectionArmorsRendering, d.ArmorsRendering, other.ArmorsRendering)
	d.Categories = mergeSection(d, other, SectionCategories, d.Categories, other.Categories)
	d.Templates = mergeSection(d, other, SectionTemplates, d.Templates, other.Templates)
}

// MergeCategories folds only other's categories into d.
func (d *Document) MergeCategories(other *Document) {
	d.Categories = mergeSection(d, other, SectionCategories, d.Categories, other.Categories)
}

func mergeSection[V any](dst, src *Document, section string, into, from map[string]V) map[string]V {
	if len(from) == 0 {
		return into
	}
	order := orderedKeys(dst, section, into)
	if into == nil {
		into = make(map[string]V, len(from))
	}
	for _, k := range orderedKeys(src, section, from) {
		if _, exists := into[k]; !exists {
			order = append(order, k)
		}
		into[k] = from[k]
	}
	if dst.order == nil {
		dst.order = make(map[string][]string)
	}
	dst.order[section] = order
	return into
}

// orderedKeys returns the recorded order, followed by any ids that were added
// programmatically (sorted, for determinism).
func orderedKeys[V any](d *Document, section string, m map[string]V) []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range d.order[section] {
		if _, ok := m[k]; ok && !seen[k] {
			out = append(out, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
