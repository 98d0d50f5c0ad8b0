// Package model reads and writes resource-pack item model files
// (assets/<namespace>/models/**/*.json).
//
// Documents keep the key order of the file they were read from, so a
// rewritten model differs from its source only where a reference changed.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/orderedmap"

	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/encoding"
)

// GeneratedParent is the vanilla parent used for flat, texture-only item models.
const GeneratedParent = "minecraft:item/generated"

// Model format errors.
var (
	ErrNotObject = errors.New("model is not a JSON object")
)

// Document is a parsed model file.
type Document struct {
	root *orderedmap.OrderedMap
}

// New returns an empty document.
func New() *Document {
	return &Document{root: orderedmap.New()}
}

// NewGenerated returns the minimal model that renders textureRef as a flat item:
//
//	{"parent": "minecraft:item/generated", "textures": {"layer0": textureRef}}
func NewGenerated(textureRef string) *Document {
	textures := orderedmap.New()
	textures.Set("layer0", textureRef)

	d := New()
	d.root.Set("parent", GeneratedParent)
	d.root.Set("textures", textures)
	return d
}

// Parse decodes a model file.
func Parse(data []byte) (*Document, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		return nil, ErrNotObject
	}

	root := orderedmap.New()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	return &Document{root: root}, nil
}

// Load reads and parses the model file at path. A byte order mark is
// tolerated.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(encoding.ToUTF8(data))
}

// Parent returns the "parent" reference, if any.
func (d *Document) Parent() string {
	v, _ := d.root.Get("parent")
	s, _ := v.(string)
	return s
}

// Texture returns the value of one "textures" entry.
func (d *Document) Texture(key string) (string, bool) {
	tex, ok := asMap(d.get("textures"))
	if !ok {
		return "", false
	}
	v, ok := tex.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// TextureKeys returns the "textures" keys in file order.
func (d *Document) TextureKeys() []string {
	tex, ok := asMap(d.get("textures"))
	if !ok {
		return nil
	}
	return tex.Keys()
}

// OverrideModels returns the "model" reference of every override, in order.
// Overrides without a string model yield an empty string.
func (d *Document) OverrideModels() []string {
	list, _ := d.get("overrides").([]interface{})
	out := make([]string, 0, len(list))
	for _, o := range list {
		var ref string
		if m, ok := asMap(o); ok {
			v, _ := m.Get("model")
			ref, _ = v.(string)
		} else if m, ok := o.(map[string]interface{}); ok {
			ref, _ = m["model"].(string)
		}
		out = append(out, ref)
	}
	return out
}

// Marshal encodes the document with two-space indentation and a trailing newline.
func (d *Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d.root, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteFile writes the document to path, creating parent directories.
func (d *Document) WriteFile(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (d *Document) get(key string) interface{} {
	v, _ := d.root.Get(key)
	return v
}

// asMap unwraps nested objects. Depending on how they were produced, nested
// objects are held either by value or by pointer.
func asMap(v interface{}) (*orderedmap.OrderedMap, bool) {
	switch m := v.(type) {
	case *orderedmap.OrderedMap:
		return m, m != nil
	case orderedmap.OrderedMap:
		return &m, true
	}
	return nil, false
}
