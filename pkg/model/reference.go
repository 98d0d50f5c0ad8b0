package model

import (
	"strings"

	"github.com/iancoleman/orderedmap"
)

// VanillaNamespace is never rewritten.
const VanillaNamespace = "minecraft"

// ItemDir is the directory item textures and models live under in the target pack.
const ItemDir = "item/"

// SplitRef splits "ns:path" into its parts. ok is false for bare paths.
func SplitRef(ref string) (ns, path string, ok bool) {
	return strings.Cut(ref, ":")
}

// StripNamespace drops an embedded "ns:" prefix.
func StripNamespace(ref string) string {
	if _, p, ok := SplitRef(ref); ok {
		return p
	}
	return ref
}

// IsLayerPath reports whether a texture path looks like an armor skin layer.
// Name-based: an item texture called e.g. "player_head" or "armor_stand_icon"
// is also matched and keeps its original location.
func IsLayerPath(path string) bool {
	return strings.Contains(path, "layer") || strings.Contains(path, "armor")
}

// RewriteTexture re-points a texture reference at namespace and the item/
// directory. "#var" references and vanilla references are returned unchanged;
// layer/armor paths and paths already under item/ keep their path.
func RewriteTexture(ref, namespace string) string {
	if strings.HasPrefix(ref, "#") {
		return ref
	}
	ns, path, ok := SplitRef(ref)
	if !ok {
		path = ref
	} else if ns == VanillaNamespace {
		return ref
	}
	if !IsLayerPath(path) && !strings.HasPrefix(path, ItemDir) {
		path = ItemDir + path
	}
	return namespace + ":" + path
}

// RewriteOverride re-points a namespaced override model reference at
// namespace and item/. Bare and vanilla references are returned unchanged.
func RewriteOverride(ref, namespace string) string {
	ns, path, ok := SplitRef(ref)
	if !ok || ns == VanillaNamespace {
		return ref
	}
	if !strings.HasPrefix(path, ItemDir) {
		path = ItemDir + path
	}
	return namespace + ":" + path
}

// RewriteReferences applies RewriteTexture to every "textures" value and
// RewriteOverride to every "overrides[].model". It returns the number of
// references that changed.
func (d *Document) RewriteReferences(namespace string) int {
	changed := 0

	if tex, ok := asMap(d.get("textures")); ok {
		out := orderedmap.New()
		for _, k := range tex.Keys() {
			v, _ := tex.Get(k)
			if s, ok := v.(string); ok {
				if r := RewriteTexture(s, namespace); r != s {
					v = r
					changed++
				}
			}
			out.Set(k, v)
		}
		d.root.Set("textures", out)
	}

	list, ok := d.get("overrides").([]interface{})
	if !ok {
		return changed
	}
	for i, o := range list {
		switch m := o.(type) {
		case *orderedmap.OrderedMap, orderedmap.OrderedMap:
			om, _ := asMap(m)
			v, _ := om.Get("model")
			if s, ok := v.(string); ok {
				if r := RewriteOverride(s, namespace); r != s {
					om.Set("model", r)
					changed++
				}
			}
			list[i] = om
		case map[string]interface{}:
			if s, ok := m["model"].(string); ok {
				if r := RewriteOverride(s, namespace); r != s {
					m["model"] = r
					changed++
				}
			}
		}
	}
	d.root.Set("overrides", list)

	return changed
}
