package convert

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/source"
	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/model"
)

// itemModelRef returns "<ns>:item/<path>".
func itemModelRef(namespace, path string) string {
	return qualify(namespace, model.ItemDir+path)
}

// GeneratedModelPath returns the models/-relative file of a generated model.
func GeneratedModelPath(texture string) string {
	return model.ItemDir + texture + ".json"
}

// assignModel points the item at its model. An explicit model_path wins;
// otherwise "generate: true" with a texture yields a generated flat model,
// recorded for writing at save time. Items with neither keep no model.
func (r *run) assignModel(item *Item, res source.Resource) {
	if res.ModelPath != "" {
		item.Model = &ItemModel{
			Type: ModelTypeModel,
			Path: itemModelRef(r.ns, model.StripNamespace(res.ModelPath)),
		}
		return
	}

	if !res.Generate {
		return
	}
	tex, ok := res.FirstTexture()
	if !ok {
		r.log.Debug("generate requested without a texture")
		return
	}
	tex = strings.TrimSuffix(tex, ".png")
	ref := itemModelRef(r.ns, tex)

	item.Model = &ItemModel{Type: ModelTypeModel, Path: ref}
	r.generated.Set(GeneratedModelPath(tex), model.NewGenerated(ref))
	r.log.Debug("queued generated model", zap.String("texture", ref))
}
