package convert

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/source"
)

// DefaultMaterial is used when an item declares no material.
const DefaultMaterial = "STONE"

// Kind is the conversion path an item takes.
type Kind int

const (
	KindGeneric Kind = iota
	KindArmor
	KindFurniture
	KindComplex
	KindHat
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindArmor:
		return "armor"
	case KindFurniture:
		return "furniture"
	case KindComplex:
		return "complex"
	case KindHat:
		return "hat"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Classify picks the conversion path for it. The first match wins:
// armor, furniture, complex material, hat, generic. An armor material or
// armor linkage wins over a furniture behaviour.
func Classify(it source.Item) Kind {
	mat := materialOf(it)
	switch {
	case isArmorMaterial(mat) || it.HasArmorProperties():
		return KindArmor
	case it.Behaviours.Furniture != nil:
		return KindFurniture
	case isComplexMaterial(mat):
		return KindComplex
	case it.Behaviours.Hat:
		return KindHat
	default:
		return KindGeneric
	}
}

func materialOf(it source.Item) string {
	if it.Resource.Material == "" {
		return DefaultMaterial
	}
	return it.Resource.Material
}

// item converts one source item and stores it under "<ns>:<key>".
func (r *run) item(key string, src source.Item) {
	id := qualify(r.ns, key)

	name := src.DisplayName
	if name == "" {
		name = key
	}
	item := &Item{
		Material: materialOf(src),
		Data:     ItemData{ItemName: r.displayName(name)},
	}

	kind := Classify(src)
	switch kind {
	case KindArmor:
		r.armor(item, src)
	case KindFurniture:
		r.furniture(item, id, src)
	case KindComplex:
		r.complex(item, key, src)
	case KindHat:
		item.Data.Equippable = &Equippable{Slot: SlotHead}
		r.assignModel(item, src.Resource)
	default:
		r.assignModel(item, src.Resource)
	}

	r.out.Items.Set(id, item)
	r.log.Debug("converted item", zap.String("id", id), zap.Stringer("kind", kind))
}

// displayName formats an item name: italics off, the namespace color, and
// '&' color codes turned into '§'.
func (r *run) displayName(name string) string {
	return "<!i>" + r.cfg.ColorFor(r.ns) + strings.ReplaceAll(name, "&", "§")
}
