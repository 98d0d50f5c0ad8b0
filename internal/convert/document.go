package convert

import (
	"strings"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/placement"
)

// Document is the converted CraftEngine configuration. Every key is a
// namespaced id ("<namespace>:<id>").
type Document struct {
	Items      *Ordered[*Item]
	Equipments *Ordered[*Equipment]
	Templates  *Ordered[*ModelDef]
	Categories *Ordered[*Category]
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		Items:      NewOrdered[*Item](),
		Equipments: NewOrdered[*Equipment](),
		Templates:  NewOrdered[*ModelDef](),
		Categories: NewOrdered[*Category](),
	}
}

// Item is one entry of the "items" section.
type Item struct {
	Material string     `yaml:"material"`
	Data     ItemData   `yaml:"data"`
	Settings *Settings  `yaml:"settings,omitempty"`
	Behavior *Behavior  `yaml:"behavior,omitempty"`
	Model    *ItemModel `yaml:"model,omitempty"`
}

// IsArmor reports whether the item belongs in armor.yml: it has an armor
// material or is linked to an equipment.
func (it *Item) IsArmor() bool {
	if _, ok := slotForMaterial(it.Material); ok {
		return true
	}
	return it.Settings != nil && it.Settings.Equipment != nil
}

// ItemData holds item components.
type ItemData struct {
	ItemName   string      `yaml:"item-name"`
	Equippable *Equippable `yaml:"equippable,omitempty"`
}

// Equippable makes an item wearable in a slot.
type Equippable struct {
	Slot string `yaml:"slot"`
}

// Settings holds item settings.
type Settings struct {
	Equipment *EquipmentSettings `yaml:"equipment,omitempty"`
}

// EquipmentSettings links an item to an equipment asset.
type EquipmentSettings struct {
	AssetID string `yaml:"asset-id"`
	Slot    string `yaml:"slot"`
}

// ItemModel is either a direct model reference (Type and Path) or a template
// reference (Template and Arguments).
type ItemModel struct {
	Type      string           `yaml:"type,omitempty"`
	Path      string           `yaml:"path,omitempty"`
	Template  string           `yaml:"template,omitempty"`
	Arguments *Ordered[string] `yaml:"arguments,omitempty"`
}

// Behavior is an item behavior. Only furniture is produced.
type Behavior struct {
	Type      string    `yaml:"type"`
	Furniture Furniture `yaml:"furniture"`
}

// Furniture is the furniture behavior body.
type Furniture struct {
	Settings  FurnitureSettings `yaml:"settings"`
	Loot      Loot              `yaml:"loot"`
	Placement Placement         `yaml:"placement"`
}

// FurnitureSettings names the furniture's item and sounds.
type FurnitureSettings struct {
	Item   string `yaml:"item"`
	Sounds Sounds `yaml:"sounds"`
}

// Sounds are the break and place sound events.
type Sounds struct {
	Break string `yaml:"break"`
	Place string `yaml:"place"`
}

// Loot selects the loot table dropped when the furniture breaks.
type Loot struct {
	Template  string        `yaml:"template"`
	Arguments LootArguments `yaml:"arguments"`
}

// LootArguments fill the loot table template.
type LootArguments struct {
	Item string `yaml:"item"`
}

// Placement holds one block per allowed surface.
type Placement struct {
	Ground  *placement.Block `yaml:"ground,omitempty"`
	Wall    *placement.Block `yaml:"wall,omitempty"`
	Ceiling *placement.Block `yaml:"ceiling,omitempty"`
}

// Set stores b for orientation o.
func (p *Placement) Set(o placement.Orientation, b placement.Block) {
	switch o {
	case placement.Ground:
		p.Ground = &b
	case placement.Wall:
		p.Wall = &b
	case placement.Ceiling:
		p.Ceiling = &b
	}
}

// ModelDef is a node of an item model definition: a plain model, a
// condition, a range dispatch or a select.
type ModelDef struct {
	Type     string       `yaml:"type"`
	Property string       `yaml:"property,omitempty"`
	Path     string       `yaml:"path,omitempty"`
	Scale    float64      `yaml:"scale,omitempty"`
	OnFalse  *ModelDef    `yaml:"on-false,omitempty"`
	OnTrue   *ModelDef    `yaml:"on-true,omitempty"`
	Entries  []RangeEntry `yaml:"entries,omitempty"`
	Cases    []SelectCase `yaml:"cases,omitempty"`
	Fallback *ModelDef    `yaml:"fallback,omitempty"`
}

// RangeEntry is one threshold of a range dispatch.
type RangeEntry struct {
	Threshold float64   `yaml:"threshold"`
	Model     *ModelDef `yaml:"model"`
}

// SelectCase is one case of a select.
type SelectCase struct {
	When  string    `yaml:"when"`
	Model *ModelDef `yaml:"model"`
}

// Equipment is one entry of the "equipments" section.
type Equipment struct {
	Type             string `yaml:"type"`
	Humanoid         string `yaml:"humanoid,omitempty"`
	HumanoidLeggings string `yaml:"humanoid-leggings,omitempty"`
}

// Category is one entry of the "categories" section.
type Category struct {
	Name     string   `yaml:"name"`
	Lore     []string `yaml:"lore,omitempty"`
	Priority int      `yaml:"priority"`
	Icon     string   `yaml:"icon"`
	List     []string `yaml:"list"`
	Hidden   bool     `yaml:"hidden"`
}

// qualify returns "<namespace>:<id>".
func qualify(namespace, id string) string {
	return namespace + ":" + id
}

// requalify moves a reference into namespace: a two-part "ns:id" gets its
// namespace replaced, a bare id is prefixed, and anything else is kept.
func requalify(namespace, ref string) string {
	if !strings.Contains(ref, ":") {
		return qualify(namespace, ref)
	}
	parts := strings.Split(ref, ":")
	if len(parts) == 2 {
		return qualify(namespace, parts[1])
	}
	return ref
}
