package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/migrate"
)

// Output file names.
const (
	ItemsFile      = "items.yml"
	ArmorFile      = "armor.yml"
	CategoriesFile = "categories.yml"
)

type itemsFile struct {
	Templates *Ordered[*ModelDef] `yaml:"templates,omitempty"`
	Items     *Ordered[*Item]     `yaml:"items,omitempty"`
}

type armorFile struct {
	Items      *Ordered[*Item]      `yaml:"items,omitempty"`
	Equipments *Ordered[*Equipment] `yaml:"equipments,omitempty"`
}

type categoriesFile struct {
	Categories *Ordered[*Category] `yaml:"categories,omitempty"`
}

// Report describes what Save wrote.
type Report struct {
	Files     []string      // configuration files written
	Migration migrate.Stats // zero when no migration ran
	Generated int           // generated models written
}

// Save writes items.yml (templates and non-armor items), armor.yml (armor
// items and equipments) and categories.yml into outputDir, leaving out files
// that would be empty. When both resource pack roots are set the pack is then
// migrated. Finally the generated models missing from the target pack are
// written.
func (r *Result) Save(outputDir string) (*Report, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	armor, other := NewOrdered[*Item](), NewOrdered[*Item]()
	for _, id := range r.Document.Items.Keys() {
		it, _ := r.Document.Items.Get(id)
		if it.IsArmor() {
			armor.Set(id, it)
		} else {
			other.Set(id, it)
		}
	}

	rep := &Report{}
	files := []struct {
		name  string
		empty bool
		v     interface{}
	}{
		{ItemsFile, r.Document.Templates.Len() == 0 && other.Len() == 0,
			itemsFile{Templates: r.Document.Templates, Items: other}},
		{ArmorFile, armor.Len() == 0 && r.Document.Equipments.Len() == 0,
			armorFile{Items: armor, Equipments: r.Document.Equipments}},
		{CategoriesFile, r.Document.Categories.Len() == 0,
			categoriesFile{Categories: r.Document.Categories}},
	}
	for _, f := range files {
		if f.empty {
			continue
		}
		path := filepath.Join(outputDir, f.name)
		if err := writeYAML(path, r.cfg.GeneratedHeader, f.v); err != nil {
			return rep, fmt.Errorf("writing %s: %w", f.name, err)
		}
		rep.Files = append(rep.Files, path)
		r.log.Info("wrote configuration", zap.String("path", path))
	}

	if r.sourcePack != "" && r.targetPack != "" {
		st, err := migrate.New(r.sourcePack, r.targetPack, r.Namespace, r.log).Run()
		rep.Migration = st
		if err != nil {
			return rep, err
		}
	}

	if r.targetPack != "" {
		n, err := r.writeGenerated()
		rep.Generated = n
		if err != nil {
			return rep, err
		}
	}
	return rep, nil
}

// writeGenerated writes generated models that do not exist on disk yet.
func (r *Result) writeGenerated() (int, error) {
	root := filepath.Join(r.targetPack, "assets", r.Namespace, "models")
	written := 0
	for _, rel := range r.Generated.Keys() {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if _, err := os.Stat(path); err == nil {
			continue
		}
		doc, _ := r.Generated.Get(rel)
		if err := doc.WriteFile(path); err != nil {
			return written, fmt.Errorf("writing generated model %s: %w", rel, err)
		}
		written++
	}
	if written > 0 {
		r.log.Info("wrote generated models", zap.Int("count", written))
	}
	return written, nil
}

// writeYAML encodes v with two-space indentation under a one-line comment.
func writeYAML(path, header string, v interface{}) error {
	var buf bytes.Buffer
	if header = strings.TrimSpace(header); header != "" {
		if !strings.HasPrefix(header, "#") {
			header = "# " + header
		}
		buf.WriteString(header)
		buf.WriteByte('\n')
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
