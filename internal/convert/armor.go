package convert

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/source"
	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/model"
)

// Equipment slots.
const (
	SlotHead  = "head"
	SlotChest = "chest"
	SlotLegs  = "legs"
	SlotFeet  = "feet"
)

var armorSuffixes = []struct {
	suffix, slot string
}{
	{"_HELMET", SlotHead},
	{"_CHESTPLATE", SlotChest},
	{"_LEGGINGS", SlotLegs},
	{"_BOOTS", SlotFeet},
}

// leatherBySlot makes placeholder STONE armor wearable.
var leatherBySlot = map[string]string{
	SlotHead:  "LEATHER_HELMET",
	SlotChest: "LEATHER_CHESTPLATE",
	SlotLegs:  "LEATHER_LEGGINGS",
	SlotFeet:  "LEATHER_BOOTS",
}

// slotForMaterial infers the slot from an armor material suffix.
func slotForMaterial(material string) (string, bool) {
	for _, s := range armorSuffixes {
		if strings.HasSuffix(material, s.suffix) {
			return s.slot, true
		}
	}
	return "", false
}

func isArmorMaterial(material string) bool {
	_, ok := slotForMaterial(material)
	return ok
}

// armor links the item to its equipment asset. The legacy equipment.id wins
// over specific_properties.armor; a material suffix wins over the declared
// slot.
func (r *run) armor(item *Item, src source.Item) {
	var assetID string
	slot := SlotHead

	if src.Equipment != nil {
		assetID = src.Equipment.ID
	}
	if assetID == "" && src.SpecificProperties != nil && src.SpecificProperties.Armor != nil {
		a := src.SpecificProperties.Armor
		assetID = a.CustomArmor
		if a.Slot != "" {
			slot = a.Slot
		}
	}
	if s, ok := slotForMaterial(item.Material); ok {
		slot = s
	}

	if assetID != "" {
		if item.Material == DefaultMaterial {
			if m, ok := leatherBySlot[slot]; ok {
				item.Material = m
			}
		}
		item.Settings = &Settings{Equipment: &EquipmentSettings{
			AssetID: qualify(r.ns, model.StripNamespace(assetID)),
			Slot:    slot,
		}}
	} else {
		r.log.Debug("armor item has no equipment id", zap.String("material", item.Material))
	}

	r.assignModel(item, src.Resource)
}
