package convert

import (
	"strings"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/source"
	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/model"
)

// EquipmentType is the CraftEngine equipment kind produced for every armor.
const EquipmentType = "component"

// equipment maps an armor's skin layers to humanoid layers. Both the
// "equipments" and "armors_rendering" sections come through here; a later id
// replaces an earlier one.
func (r *run) equipment(key string, l source.Layers) {
	eq := &Equipment{Type: EquipmentType}
	if l.Layer1 != "" {
		eq.Humanoid = r.layerRef(l.Layer1)
	}
	if l.Layer2 != "" {
		eq.HumanoidLeggings = r.layerRef(l.Layer2)
	}
	r.out.Equipments.Set(qualify(r.ns, key), eq)
}

// layerRef moves a layer texture into the target namespace, dropping any
// namespace it already carries.
func (r *run) layerRef(p string) string {
	return qualify(r.ns, model.StripNamespace(strings.TrimSuffix(p, ".png")))
}
