package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/encoding"
)

// Element is one cuboid of a block/item model, in 1/16 block units.
type Element struct {
	From [3]float64 `json:"from"`
	To   [3]float64 `json:"to"`
}

// Geometry holds the elements of a model file.
type Geometry struct {
	Elements []Element `json:"elements"`
}

// ParseGeometry decodes only the "elements" list of a model file.
// Missing coordinates read as zero.
func ParseGeometry(data []byte) (*Geometry, error) {
	var g Geometry
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("decoding model elements: %w", err)
	}
	return &g, nil
}

// LoadGeometry reads the elements of the model file at path.
func LoadGeometry(path string) (*Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGeometry(encoding.ToUTF8(data))
}

// ReachesBelow reports whether any element's from or to Y coordinate is
// strictly below y.
func (g *Geometry) ReachesBelow(y float64) bool {
	for _, el := range g.Elements {
		if el.From[1] < y || el.To[1] < y {
			return true
		}
	}
	return false
}

// Path returns the file path of model "ns:path" (or bare "path", resolved in
// defaultNamespace) under a resource pack root.
func Path(packRoot, ref, defaultNamespace string) string {
	ns, p, ok := SplitRef(ref)
	if !ok {
		ns, p = defaultNamespace, ref
	}
	return filepath.Join(packRoot, "assets", ns, "models", filepath.FromSlash(p)+".json")
}
