package bundle

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	ia := filepath.Join(root, "plugins", "ItemsAdder")
	writeFile(t, filepath.Join(root, "outside.yml"), "items:\n  ignored: {}\n")
	writeFile(t, filepath.Join(ia, "contents", "pack", "configs", "b_items.yml"), "info:\n  namespace: pack\nitems:\n  ruby: {}\n")
	writeFile(t, filepath.Join(ia, "contents", "pack", "configs", "a_armor.yaml"), "armors_rendering:\n  set: {layer_1: x}\n")
	writeFile(t, filepath.Join(ia, "contents", "pack", "configs", "categories.yml"), "categories:\n  gems: {items: [ruby]}\n")
	writeFile(t, filepath.Join(ia, "contents", "pack", "configs", "mixed.yml"), "equipments:\n  e: {}\ncategories:\n  c: {}\n")
	writeFile(t, filepath.Join(ia, "contents", "pack", "configs", "broken.yml"), "items: [unclosed\n")
	writeFile(t, filepath.Join(ia, "contents", "pack", "configs", "other.yml"), "settings:\n  x: 1\n")
	writeFile(t, filepath.Join(ia, "contents", "pack", "configs", "list.yml"), "- items\n")
	writeFile(t, filepath.Join(ia, "contents", "pack", "configs", "notes.txt"), "items:\n")
	mkdir(t, filepath.Join(ia, "contents", "pack", "resourcepack", "assets", "pack"))

	b, err := Discover(root, nil)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if b.ScanRoot != ia {
		t.Errorf("ScanRoot = %s, want %s", b.ScanRoot, ia)
	}

	configs := filepath.Join(ia, "contents", "pack", "configs")
	wantItems := []string{
		filepath.Join(configs, "a_armor.yaml"),
		filepath.Join(configs, "b_items.yml"),
		filepath.Join(configs, "mixed.yml"),
	}
	if !reflect.DeepEqual(b.ItemConfigs, wantItems) {
		t.Errorf("ItemConfigs = %v, want %v", b.ItemConfigs, wantItems)
	}
	if want := []string{filepath.Join(configs, "categories.yml")}; !reflect.DeepEqual(b.CategoryConfigs, want) {
		t.Errorf("CategoryConfigs = %v, want %v", b.CategoryConfigs, want)
	}
	if want := filepath.Join(ia, "contents", "pack", "resourcepack"); b.ResourcePack != want {
		t.Errorf("ResourcePack = %s, want %s", b.ResourcePack, want)
	}
}

func TestDiscover_CaseInsensitiveDir(t *testing.T) {
	root := t.TempDir()
	ia := filepath.Join(root, "itemsADDER")
	writeFile(t, filepath.Join(ia, "items.yml"), "items:\n  a: {}\n")

	b, err := Discover(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b.ScanRoot != ia {
		t.Errorf("ScanRoot = %s, want %s", b.ScanRoot, ia)
	}
}

func TestDiscover_ResourcePackPriority(t *testing.T) {
	tests := []struct {
		name string
		dirs []string
		want string
	}{
		{
			name: "resourcepack dir beats assets in same directory",
			dirs: []string{"pack/assets", "pack/resourcepack"},
			want: "pack/resourcepack",
		},
		{
			name: "assets beats models and textures",
			dirs: []string{"pack/assets", "pack/models", "pack/textures"},
			want: "pack",
		},
		{
			name: "models and textures",
			dirs: []string{"pack/models", "pack/textures"},
			want: "pack",
		},
		{
			name: "models alone is not a pack",
			dirs: []string{"pack/models"},
			want: "",
		},
		{
			name: "first reached wins",
			dirs: []string{"a/deep/assets", "b/resourcepack"},
			want: "a/deep",
		},
		{
			name: "parent reached before children",
			dirs: []string{"x/assets", "x/y/resourcepack"},
			want: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, filepath.Join(root, "configs", "items.yml"), "items:\n  a: {}\n")
			for _, d := range tt.dirs {
				mkdir(t, filepath.Join(root, filepath.FromSlash(d)))
			}

			b, err := Discover(root, nil)
			if err != nil {
				t.Fatal(err)
			}
			want := root
			if tt.want != "" {
				want = filepath.Join(root, filepath.FromSlash(tt.want))
			}
			if b.ResourcePack != want {
				t.Errorf("ResourcePack = %s, want %s", b.ResourcePack, want)
			}
		})
	}
}

func TestDiscover_FallbackToInputRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ItemsAdder", "items.yml"), "items:\n  a: {}\n")

	b, err := Discover(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b.ResourcePack != root {
		t.Errorf("ResourcePack = %s, want input root %s", b.ResourcePack, root)
	}
}

func TestDiscover_Errors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "categories.yml"), "categories:\n  c: {}\n")
	if _, err := Discover(root, nil); !errors.Is(err, ErrNoItemConfigs) {
		t.Errorf("expected ErrNoItemConfigs, got %v", err)
	}

	file := filepath.Join(root, "categories.yml")
	if _, err := Discover(file, nil); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("expected ErrNotDirectory, got %v", err)
	}

	if _, err := Discover(filepath.Join(root, "missing"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.yml"), "info:\n  namespace: first\nitems:\n  one: {display_name: A}\n  two: {}\n")
	writeFile(t, filepath.Join(root, "b.yml"), "info:\n  namespace: second\nitems:\n  one: {display_name: B}\n  three: {}\ntemplates:\n  t: {}\n")
	writeFile(t, filepath.Join(root, "c.yml"), "categories:\n  gems: {name: Gems}\n")
	writeFile(t, filepath.Join(root, "d.yml"), "categories:\n  gems: {name: Later}\n  tools: {}\n")

	b, err := Discover(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := b.Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Info.Namespace != "first" {
		t.Errorf("expected first info to win, got %q", doc.Info.Namespace)
	}
	if got := doc.ItemKeys(); !reflect.DeepEqual(got, []string{"one", "two", "three"}) {
		t.Errorf("ItemKeys() = %v", got)
	}
	if doc.Items["one"].DisplayName != "B" {
		t.Errorf("expected later item to win, got %q", doc.Items["one"].DisplayName)
	}
	if len(doc.Templates) != 1 {
		t.Errorf("expected templates merged, got %v", doc.Templates)
	}
	if got := doc.CategoryKeys(); !reflect.DeepEqual(got, []string{"gems", "tools"}) {
		t.Errorf("CategoryKeys() = %v", got)
	}
	if doc.Categories["gems"].Name != "Later" {
		t.Errorf("expected later category to win, got %q", doc.Categories["gems"].Name)
	}
}

func TestPrepareResourcePack_Restructure(t *testing.T) {
	rp, work := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(rp, "textures", "gems", "ruby.png"), "png")
	writeFile(t, filepath.Join(rp, "models", "gems", "ruby.json"), "{}")

	got, err := PrepareResourcePack(rp, work, "old", "pack", nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(work, RestructuredDir); got != want {
		t.Fatalf("root = %s, want %s", got, want)
	}
	for _, rel := range []string{"textures/gems/ruby.png", "models/gems/ruby.json"} {
		if _, err := os.Stat(filepath.Join(got, "assets", "pack", filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(rp, "textures", "gems", "ruby.png")); err != nil {
		t.Errorf("source pack was modified: %v", err)
	}
}

func TestPrepareResourcePack_Rename(t *testing.T) {
	rp, work := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(rp, "assets", "old", "textures", "a.png"), "png")

	got, err := PrepareResourcePack(rp, work, "old", "pack", nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(work, RenamedDir); got != want {
		t.Fatalf("root = %s, want %s", got, want)
	}
	if _, err := os.Stat(filepath.Join(got, "assets", "pack", "textures", "a.png")); err != nil {
		t.Errorf("namespace not renamed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(rp, "assets", "old", "textures", "a.png")); err != nil {
		t.Errorf("source pack was modified: %v", err)
	}
}

func TestPrepareResourcePack_Unchanged(t *testing.T) {
	standard := t.TempDir()
	writeFile(t, filepath.Join(standard, "assets", "old", "textures", "a.png"), "png")
	taken := t.TempDir()
	mkdir(t, filepath.Join(taken, "assets", "old"))
	mkdir(t, filepath.Join(taken, "assets", "pack"))
	empty := t.TempDir()

	tests := []struct {
		name     string
		rp       string
		original string
		ns       string
	}{
		{"same namespace", standard, "old", "old"},
		{"no original namespace", standard, "", "pack"},
		{"original missing", standard, "gone", "pack"},
		{"target exists", taken, "old", "pack"},
		{"nothing to restructure", empty, "old", "pack"},
		{"no pack", "", "old", "pack"},
		{"missing pack", filepath.Join(empty, "missing"), "old", "pack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrepareResourcePack(tt.rp, t.TempDir(), tt.original, tt.ns, nil)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.rp {
				t.Errorf("root = %s, want unchanged %s", got, tt.rp)
			}
		})
	}
}

func TestNewLayout(t *testing.T) {
	l := NewLayout("out", "pack")
	want := Layout{
		Root:         filepath.Join("out", "CraftEngine", "resources", "pack"),
		ConfigDir:    filepath.Join("out", "CraftEngine", "resources", "pack", "configuration", "items", "pack"),
		ResourcePack: filepath.Join("out", "CraftEngine", "resources", "pack", "resourcepack"),
	}
	if l != want {
		t.Errorf("NewLayout() = %+v, want %+v", l, want)
	}
}

func TestLoad_LegacyEncodings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "bom.yml"), "\xEF\xBB\xBFitems:\n  ruby: {}\n")
	// display_name "中文" in GB18030
	writeFile(t, filepath.Join(root, "gbk.yml"), "items:\n  jade:\n    display_name: \"\xD6\xD0\xCE\xC4\"\n")

	b, err := Discover(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.ItemConfigs) != 2 {
		t.Fatalf("expected both configs, got %v", b.ItemConfigs)
	}
	doc, err := b.Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := doc.Items["ruby"]; !ok {
		t.Error("BOM-prefixed config not loaded")
	}
	if got := doc.Items["jade"].DisplayName; got != "中文" {
		t.Errorf("DisplayName = %q, want 中文", got)
	}
}
