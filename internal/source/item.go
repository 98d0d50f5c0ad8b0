package source

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Item is one entry of the "items" section.
type Item struct {
	DisplayName        string              `yaml:"display_name" json:"display_name,omitempty" jsonschema:"description=Display name; & color codes allowed"`
	Resource           Resource            `yaml:"resource" json:"resource,omitempty"`
	Behaviours         Behaviours          `yaml:"behaviours" json:"behaviours,omitempty"`
	SpecificProperties *SpecificProperties `yaml:"specific_properties" json:"specific_properties,omitempty"`
	Equipment          *ItemEquipment      `yaml:"equipment" json:"equipment,omitempty" jsonschema:"description=Legacy armor linkage"`
}

// Resource describes the item's material and visuals.
type Resource struct {
	Material  string `yaml:"material" json:"material,omitempty" jsonschema:"description=Bukkit material; STONE when absent"`
	ModelPath string `yaml:"model_path" json:"model_path,omitempty"`
	Generate  bool   `yaml:"generate" json:"generate,omitempty" jsonschema:"description=Generate a flat model from the first texture"`
	Textures  Paths  `yaml:"textures" json:"textures,omitempty"`
	Texture   Paths  `yaml:"texture" json:"texture,omitempty"`
}

// FirstTexture returns the first entry of "textures", falling back to "texture".
func (r Resource) FirstTexture() (string, bool) {
	for _, list := range []Paths{r.Textures, r.Texture} {
		if len(list) > 0 && list[0] != "" {
			return list[0], true
		}
	}
	return "", false
}

// Paths accepts either a single string or a list of strings.
type Paths []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Paths) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*p = nil
			return nil
		}
		*p = Paths{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*p = list
		return nil
	default:
		return fmt.Errorf("line %d: expected a path or a list of paths", node.Line)
	}
}

// Behaviours holds the item behaviour blocks the converter understands.
type Behaviours struct {
	Furniture    *Furniture    `yaml:"furniture" json:"furniture,omitempty"`
	FurnitureSit *FurnitureSit `yaml:"furniture_sit" json:"furniture_sit,omitempty"`
	Hat          bool          `yaml:"hat" json:"hat,omitempty" jsonschema:"description=Wearable in the head slot"`
}

// SpecificProperties holds "specific_properties".
type SpecificProperties struct {
	Armor *ArmorProperties `yaml:"armor" json:"armor,omitempty"`
}

// ArmorProperties links an item to a custom armor.
type ArmorProperties struct {
	CustomArmor string `yaml:"custom_armor" json:"custom_armor,omitempty" jsonschema:"description=Armor rendering id, optionally namespaced"`
	Slot        string `yaml:"slot" json:"slot,omitempty" jsonschema:"enum=head,enum=chest,enum=legs,enum=feet"`
}

// ItemEquipment is the legacy "equipment" block.
type ItemEquipment struct {
	ID string `yaml:"id" json:"id,omitempty"`
}

// HasArmorProperties reports whether the item declares any armor linkage.
func (it Item) HasArmorProperties() bool {
	return it.Equipment != nil || (it.SpecificProperties != nil && it.SpecificProperties.Armor != nil)
}
