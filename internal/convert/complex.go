package convert

import (
	"go.uber.org/zap"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/source"
	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/model"
)

// Item model definition types and properties.
const (
	ModelTypeModel         = "minecraft:model"
	ModelTypeCondition     = "minecraft:condition"
	ModelTypeRangeDispatch = "minecraft:range_dispatch"
	ModelTypeSelect        = "minecraft:select"
)

// templateArg maps a template argument to the suffix appended to the item's
// base model path.
type templateArg struct {
	name, suffix string
}

// complexTemplate is a multi-state model for one vanilla material.
type complexTemplate struct {
	def  func() *ModelDef
	args []templateArg
}

var complexTemplates = map[string]complexTemplate{
	"BOW": {
		def: func() *ModelDef {
			return &ModelDef{
				Type:     ModelTypeCondition,
				Property: "minecraft:using_item",
				OnFalse:  argModel("bow_model"),
				OnTrue: &ModelDef{
					Type:     ModelTypeRangeDispatch,
					Property: "minecraft:use_duration",
					Scale:    0.05,
					Entries: []RangeEntry{
						{Threshold: 0.65, Model: argModel("bow_pulling_1_model")},
						{Threshold: 0.9, Model: argModel("bow_pulling_2_model")},
					},
					Fallback: argModel("bow_pulling_0_model"),
				},
			}
		},
		args: []templateArg{
			{"bow_model", ""},
			{"bow_pulling_0_model", "_0"},
			{"bow_pulling_1_model", "_1"},
			{"bow_pulling_2_model", "_2"},
		},
	},
	"CROSSBOW": {
		def: func() *ModelDef {
			return &ModelDef{
				Type:     ModelTypeCondition,
				Property: "minecraft:using_item",
				OnFalse: &ModelDef{
					Type:     ModelTypeSelect,
					Property: "minecraft:charge_type",
					Cases: []SelectCase{
						{When: "arrow", Model: argModel("arrow_model")},
						{When: "rocket", Model: argModel("firework_model")},
					},
					Fallback: argModel("model"),
				},
				OnTrue: &ModelDef{
					Type:     ModelTypeRangeDispatch,
					Property: "minecraft:crossbow/pull",
					Entries: []RangeEntry{
						{Threshold: 0.58, Model: argModel("pulling_1_model")},
						{Threshold: 1.0, Model: argModel("pulling_2_model")},
					},
					Fallback: argModel("pulling_0_model"),
				},
			}
		},
		args: []templateArg{
			{"model", ""},
			{"arrow_model", "_charged"},
			{"firework_model", "_firework"},
			{"pulling_0_model", "_0"},
			{"pulling_1_model", "_1"},
			{"pulling_2_model", "_2"},
		},
	},
	"SHIELD": {
		def: func() *ModelDef {
			return &ModelDef{
				Type:     ModelTypeCondition,
				Property: "minecraft:using_item",
				OnFalse:  argModel("shield_model"),
				OnTrue:   argModel("shield_blocking_model"),
			}
		},
		args: []templateArg{
			{"shield_model", ""},
			{"shield_blocking_model", "_blocking"},
		},
	},
	"FISHING_ROD": {
		def: func() *ModelDef {
			return &ModelDef{
				Type:     ModelTypeCondition,
				Property: "minecraft:fishing_rod/cast",
				OnFalse:  argModel("path"),
				OnTrue:   argModel("cast_path"),
			}
		},
		args: []templateArg{
			{"path", ""},
			{"cast_path", "_cast"},
		},
	},
}

func isComplexMaterial(material string) bool {
	_, ok := complexTemplates[material]
	return ok
}

// argModel is a plain model whose path is the template argument name.
func argModel(name string) *ModelDef {
	return &ModelDef{Type: ModelTypeModel, Path: "${" + name + "}"}
}

// TemplateID returns the id of the per-item model template.
func TemplateID(namespace, key string) string {
	return "models:" + namespace + "_" + key + "_model"
}

// complex registers a multi-state model template for the item and points the
// item at it. Argument paths are derived from the item's model path.
func (r *run) complex(item *Item, key string, src source.Item) {
	tmpl := complexTemplates[item.Material]
	id := TemplateID(r.ns, key)
	base := model.StripNamespace(src.Resource.ModelPath)

	args := NewOrdered[string]()
	for _, a := range tmpl.args {
		args.Set(a.name, itemModelRef(r.ns, base+a.suffix))
	}

	r.out.Templates.Set(id, tmpl.def())
	item.Model = &ItemModel{Template: id, Arguments: args}

	r.log.Debug("registered model template", zap.String("template", id), zap.String("material", item.Material))
}
