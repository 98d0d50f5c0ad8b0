package bundle

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/migrate"
)

// Work directories created by PrepareResourcePack.
const (
	RestructuredDir = "restructured_rp"
	RenamedDir      = "renamed_rp"
)

// packFolders are the asset kinds carried over from a bare pack.
var packFolders = []string{"models", "textures", "sounds"}

// PrepareResourcePack returns a pack root whose assets live under
// assets/<namespace>, copying into workDir when rp does not already have
// that shape. rp itself is never modified.
//
// A bare pack (models, textures or sounds with no assets directory) is copied
// into workDir/restructured_rp/assets/<namespace>. A standard pack whose
// namespace was overridden has assets/<original> copied to
// workDir/renamed_rp/assets/<namespace>, unless rp already holds the target
// namespace; a failed copy is logged and rp is used as is.
func PrepareResourcePack(rp, workDir, original, namespace string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if rp == "" || !isDir(rp) {
		return rp, nil
	}

	if !isDir(filepath.Join(rp, "assets")) {
		var found []string
		for _, name := range packFolders {
			if isDir(filepath.Join(rp, name)) {
				found = append(found, name)
			}
		}
		if len(found) == 0 {
			return rp, nil
		}

		root := filepath.Join(workDir, RestructuredDir)
		nsDir := filepath.Join(root, "assets", namespace)
		log.Info("restructuring resource pack",
			zap.String("src", rp), zap.String("dst", nsDir), zap.Strings("folders", found))
		for _, name := range found {
			if err := migrate.CopyTree(filepath.Join(rp, name), filepath.Join(nsDir, name)); err != nil {
				return "", err
			}
		}
		return root, nil
	}

	if original == "" || original == namespace {
		return rp, nil
	}
	src := filepath.Join(rp, "assets", original)
	if !isDir(src) || isDir(filepath.Join(rp, "assets", namespace)) {
		return rp, nil
	}

	root := filepath.Join(workDir, RenamedDir)
	tmp := root + ".tmp"
	log.Info("renaming resource pack namespace",
		zap.String("from", original), zap.String("to", namespace))
	err := migrate.CopyTree(src, filepath.Join(tmp, "assets", namespace))
	if err == nil {
		err = os.Rename(tmp, root)
	}
	if err != nil {
		log.Warn("failed to rename namespace folder", zap.Error(err))
		os.RemoveAll(tmp)
		return rp, nil
	}
	return root, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
