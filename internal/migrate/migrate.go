// Package migrate relocates an ItemsAdder resource pack into the CraftEngine
// layout.
//
// Textures and models are moved under item/ in the target namespace and every
// model's texture and override references are rewritten to follow them.
// Textures left without a model afterwards get a flat generated one.
package migrate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/model"
)

// LayerMarker in a texture file name marks an armor skin layer. Such textures
// keep their relative path.
const LayerMarker = "layer_"

// AssetError records a file that could not be migrated.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// Stats summarizes a migration run.
type Stats struct {
	Textures   int // textures and .mcmeta files copied
	Models     int // models rewritten
	Fabricated int // generated models written for bare textures
	Errors     []*AssetError
}

// Migrator copies one namespace of a source pack into a target pack.
type Migrator struct {
	src, dst  string
	namespace string
	log       *zap.Logger
}

// New returns a Migrator reading from the pack rooted at src and writing to
// the pack rooted at dst. A nil logger discards output.
func New(src, dst, namespace string, log *zap.Logger) *Migrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Migrator{
		src:       src,
		dst:       dst,
		namespace: namespace,
		log:       log.With(zap.String("namespace", namespace)),
	}
}

// Run performs the migration. Per-file failures are logged and collected in
// Stats.Errors; only failures to walk a directory are returned. A source pack
// that does not exist is a no-op.
func (m *Migrator) Run() (Stats, error) {
	var st Stats

	if _, err := os.Stat(m.src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.log.Info("no source resource pack, skipping migration", zap.String("src", m.src))
			return st, nil
		}
		return st, err
	}

	m.log.Info("migrating resource pack", zap.String("src", m.src), zap.String("dst", m.dst))

	if err := m.migrateTextures(&st); err != nil {
		return st, fmt.Errorf("migrating textures: %w", err)
	}
	if err := m.migrateModels(&st); err != nil {
		return st, fmt.Errorf("migrating models: %w", err)
	}
	m.migrateSounds()
	if err := m.fabricateModels(&st); err != nil {
		return st, fmt.Errorf("generating models: %w", err)
	}

	m.log.Info("migration complete",
		zap.Int("textures", st.Textures),
		zap.Int("models", st.Models),
		zap.Int("generated", st.Fabricated),
		zap.Int("errors", len(st.Errors)))
	return st, nil
}

func (m *Migrator) assetDir(root, kind string) string {
	return filepath.Join(root, "assets", m.namespace, kind)
}

func (m *Migrator) fail(st *Stats, path string, err error) {
	m.log.Warn("skipping asset", zap.String("path", path), zap.Error(err))
	st.Errors = append(st.Errors, &AssetError{Path: path, Err: err})
}

// itemDir returns the target directory for a source directory relative to
// textures/ or models/. Directories already under item/ are kept.
func itemDir(relDir string) string {
	slash := filepath.ToSlash(relDir)
	if slash == "item" || strings.HasPrefix(slash, model.ItemDir) {
		return relDir
	}
	return filepath.Join("item", relDir)
}

// migrateTextures copies .png and .mcmeta files under item/.
func (m *Migrator) migrateTextures(st *Stats) error {
	srcDir := m.assetDir(m.src, "textures")
	if !exists(srcDir) {
		m.log.Warn("no textures found", zap.String("dir", srcDir))
		return nil
	}
	dstDir := m.assetDir(m.dst, "textures")

	return filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, ".png") && !strings.HasSuffix(name, ".mcmeta") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, filepath.Dir(p))
		if err != nil {
			return err
		}
		destRel := itemDir(rel)
		if strings.Contains(name, LayerMarker) {
			destRel = rel
		}

		dest := filepath.Join(dstDir, destRel, name)
		if err := CopyFile(p, dest); err != nil {
			m.fail(st, p, err)
			return nil
		}
		st.Textures++
		m.log.Debug("copied texture", zap.String("path", dest))
		return nil
	})
}

// migrateModels moves models under item/ and rewrites their references.
func (m *Migrator) migrateModels(st *Stats) error {
	srcDir := m.assetDir(m.src, "models")
	if !exists(srcDir) {
		return nil
	}
	dstDir := m.assetDir(m.dst, "models")

	return filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, filepath.Dir(p))
		if err != nil {
			return err
		}
		dest := filepath.Join(dstDir, itemDir(rel), d.Name())

		doc, err := model.Load(p)
		if err != nil {
			m.fail(st, p, err)
			return nil
		}
		n := doc.RewriteReferences(m.namespace)
		if err := doc.WriteFile(dest); err != nil {
			m.fail(st, p, err)
			return nil
		}
		st.Models++
		m.log.Debug("rewrote model", zap.String("path", dest), zap.Int("references", n))
		return nil
	})
}

// migrateSounds is a placeholder; sounds are not migrated.
func (m *Migrator) migrateSounds() {
	m.log.Debug("sound migration not supported, skipping")
}

// fabricateModels writes a generated model for every item texture that has
// no model of the same name.
func (m *Migrator) fabricateModels(st *Stats) error {
	texDir := filepath.Join(m.assetDir(m.dst, "textures"), "item")
	if !exists(texDir) {
		return nil
	}
	modelDir := filepath.Join(m.assetDir(m.dst, "models"), "item")

	return filepath.WalkDir(texDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".png") {
			return nil
		}

		rel, err := filepath.Rel(texDir, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), ".png")
		dest := filepath.Join(modelDir, filepath.FromSlash(name)+".json")
		if exists(dest) {
			return nil
		}

		ref := m.namespace + ":" + path.Join("item", name)
		if err := model.NewGenerated(ref).WriteFile(dest); err != nil {
			m.fail(st, dest, err)
			return nil
		}
		st.Fabricated++
		m.log.Debug("generated missing model", zap.String("path", dest))
		return nil
	})
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
