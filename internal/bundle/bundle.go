// Package bundle locates the parts of an unpacked ItemsAdder bundle: the item
// and category configuration files and the resource pack root.
package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/source"
	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/encoding"
)

// ItemsAdderDir is the plugin directory name, matched case-insensitively.
const ItemsAdderDir = "itemsadder"

// Bundle errors.
var (
	ErrNoItemConfigs = errors.New("no configuration file defines items, equipments or armors_rendering")
	ErrNotDirectory  = errors.New("not a directory")
)

// Bundle is the result of scanning an unpacked bundle.
type Bundle struct {
	Root     string // the directory Discover was given
	ScanRoot string // the ItemsAdder directory if found, else Root

	ItemConfigs     []string // files with items, equipments or armors_rendering
	CategoryConfigs []string // files with categories only

	// ResourcePack is the resource pack root: a "resourcepack" directory, a
	// directory holding "assets", or one holding both "models" and
	// "textures", whichever the scan reaches first. It falls back to Root.
	ResourcePack string
}

// Discover scans root. Directories are visited in lexical order, parents
// before children. YAML files that cannot be parsed are skipped.
func Discover(root string, log *zap.Logger) (*Bundle, error) {
	if log == nil {
		log = zap.NewNop()
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	b := &Bundle{Root: root, ScanRoot: root}
	if dir, ok := findItemsAdderDir(root, log); ok {
		b.ScanRoot = dir
		log.Info("found ItemsAdder directory", zap.String("path", dir))
	}

	if err := b.scan(b.ScanRoot, log); err != nil {
		return nil, err
	}

	if len(b.ItemConfigs) == 0 {
		return nil, ErrNoItemConfigs
	}
	if b.ResourcePack == "" {
		b.ResourcePack = root
	}

	log.Info("discovered bundle",
		zap.Int("item_configs", len(b.ItemConfigs)),
		zap.Int("category_configs", len(b.CategoryConfigs)),
		zap.String("resource_pack", b.ResourcePack))
	return b, nil
}

// findItemsAdderDir returns the first directory named "ItemsAdder" in any
// letter case, searching parents before children.
func findItemsAdderDir(dir string, log *zap.Logger) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug("cannot read directory", zap.String("path", dir), zap.Error(err))
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() && strings.EqualFold(e.Name(), ItemsAdderDir) {
			return filepath.Join(dir, e.Name()), true
		}
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if found, ok := findItemsAdderDir(filepath.Join(dir, e.Name()), log); ok {
			return found, true
		}
	}
	return "", false
}

func (b *Bundle) scan(dir string, log *zap.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if dir == b.ScanRoot {
			return err
		}
		log.Warn("cannot read directory", zap.String("path", dir), zap.Error(err))
		return nil
	}

	dirs := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			dirs[e.Name()] = true
		}
	}
	if b.ResourcePack == "" {
		switch {
		case dirs["resourcepack"]:
			b.ResourcePack = filepath.Join(dir, "resourcepack")
		case dirs["assets"]:
			b.ResourcePack = dir
		case dirs["models"] && dirs["textures"]:
			b.ResourcePack = dir
		}
	}

	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		switch classify(path, log) {
		case kindItems:
			b.ItemConfigs = append(b.ItemConfigs, path)
		case kindCategories:
			b.CategoryConfigs = append(b.CategoryConfigs, path)
		}
	}

	for _, e := range entries {
		if e.IsDir() {
			if err := b.scan(filepath.Join(dir, e.Name()), log); err != nil {
				return err
			}
		}
	}
	return nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml")
}

type configKind int

const (
	kindOther configKind = iota
	kindItems
	kindCategories
)

// classify reads the top-level keys of a YAML file.
func classify(path string, log *zap.Logger) configKind {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("cannot read config", zap.String("path", path), zap.Error(err))
		return kindOther
	}
	var top map[string]yaml.Node
	if err := yaml.Unmarshal(encoding.ToUTF8(data), &top); err != nil {
		log.Debug("skipping unparsable YAML", zap.String("path", path), zap.Error(err))
		return kindOther
	}

	has := func(k string) bool { _, ok := top[k]; return ok }
	switch {
	case has(source.SectionItems), has(source.SectionEquipments), has(source.SectionArmorsRendering):
		return kindItems
	case has(source.SectionCategories):
		return kindCategories
	default:
		return kindOther
	}
}

// Load parses and merges the bundle's configuration files. Item configs are
// merged in scan order, later ids replacing earlier ones and the first info
// with a namespace winning; category configs then contribute their
// categories.
func (b *Bundle) Load(log *zap.Logger) (*source.Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	doc := &source.Document{}
	for _, path := range b.ItemConfigs {
		d, err := loadFile(path)
		if err != nil {
			log.Warn("skipping config", zap.String("path", path), zap.Error(err))
			continue
		}
		doc.Merge(d)
	}
	for _, path := range b.CategoryConfigs {
		d, err := loadFile(path)
		if err != nil {
			log.Warn("skipping config", zap.String("path", path), zap.Error(err))
			continue
		}
		doc.MergeCategories(d)
	}
	if !doc.HasDefinitions() {
		return nil, ErrNoItemConfigs
	}
	return doc, nil
}

func loadFile(path string) (*source.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return source.Parse(encoding.ToUTF8(data))
}
