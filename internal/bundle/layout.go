package bundle

import "path/filepath"

// Layout is where a converted namespace is written.
type Layout struct {
	Root         string // CraftEngine/resources/<ns>
	ConfigDir    string // Root/configuration/items/<ns>
	ResourcePack string // Root/resourcepack
}

// NewLayout returns the output layout for namespace under outputRoot.
func NewLayout(outputRoot, namespace string) Layout {
	root := filepath.Join(outputRoot, "CraftEngine", "resources", namespace)
	return Layout{
		Root:         root,
		ConfigDir:    filepath.Join(root, "configuration", "items", namespace),
		ResourcePack: filepath.Join(root, "resourcepack"),
	}
}
