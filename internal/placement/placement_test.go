package placement

import (
	stdmath "math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/math"
)

func approx(a, b float64) bool {
	return stdmath.Abs(a-b) < 1e-9
}

func TestOrientationString(t *testing.T) {
	tests := []struct {
		o    Orientation
		want string
	}{
		{Ground, "ground"},
		{Wall, "wall"},
		{Ceiling, "ceiling"},
		{Orientation(9), "Unknown(9)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Orientation(%d).String() = %q, want %q", int(tt.o), got, tt.want)
		}
	}
}

func TestBuild_UnitSolidGround(t *testing.T) {
	b := Build(Ground, Furniture{Item: "pack:crate", Hitbox: UnitHitbox, Solid: true}, Options{})

	if len(b.Hitboxes) != 1 {
		t.Fatalf("expected 1 hitbox, got %d", len(b.Hitboxes))
	}
	hb := b.Hitboxes[0]
	if hb.Type != Shulker {
		t.Errorf("expected shulker, got %s", hb.Type)
	}
	if hb.Position.String() != "0,0,0" {
		t.Errorf("expected position 0,0,0, got %s", hb.Position)
	}
	if !hb.BlocksBuilding || !hb.Interactive {
		t.Errorf("shulker should block building and be interactive: %+v", hb)
	}

	if len(b.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(b.Elements))
	}
	el := b.Elements[0]
	if el.Item != "pack:crate" {
		t.Errorf("expected element item pack:crate, got %s", el.Item)
	}
	if el.Translation.String() != "0,0.5,0" {
		t.Errorf("expected translation 0,0.5,0 (height/2), got %s", el.Translation)
	}
	if el.Position != nil {
		t.Errorf("ground element should have no position, got %s", el.Position)
	}
	if el.Scale != nil {
		t.Errorf("expected no scale, got %s", el.Scale)
	}
	if b.LootSpawnOffset.String() != "0,0.4,0" {
		t.Errorf("unexpected loot spawn offset %s", b.LootSpawnOffset)
	}
	if b.Rules.Rotation != "ANY" || b.Rules.Alignment != "ANY" {
		t.Errorf("unexpected rules %+v", b.Rules)
	}
}

func TestBuild_Translation(t *testing.T) {
	tests := []struct {
		name   string
		hitbox Hitbox
		scale  *math.Vec3
		opts   Options
		want   math.Vec3
	}{
		{"half height", Hitbox{Width: 1, Height: 3, Length: 1}, nil, Options{}, math.Vec3{Y: 1.5}},
		{"model offset", Hitbox{Width: 1, Height: 3, Length: 1}, nil, Options{YOffset: 0.5, HasYOffset: true}, math.Vec3{Y: 0.5}},
		{"tall model scaled", UnitHitbox, &math.Vec3{X: 1, Y: 2, Z: 0.5}, Options{YOffset: 1.5, HasYOffset: true}, math.Vec3{Y: 3}},
		{"shrunk", UnitHitbox, &math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Options{YOffset: 0.5, HasYOffset: true}, math.Vec3{Y: 0.25}},
		{"oversized family", Hitbox{Width: 3, Height: 2, Length: 2}, nil, Options{YOffset: 0.5, HasYOffset: true}, math.Vec3{Y: 0.5, Z: 0.5}},
		{"near miss", Hitbox{Width: 3, Height: 2, Length: 3}, nil, Options{YOffset: 0.5, HasYOffset: true}, math.Vec3{Y: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Build(Ground, Furniture{Hitbox: tt.hitbox, Solid: true, Scale: tt.scale}, tt.opts)
			got := b.Elements[0].Translation
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) || !approx(got.Z, tt.want.Z) {
				t.Errorf("translation = %s, want %s", got, tt.want)
			}
			if tt.scale != nil && (b.Elements[0].Scale == nil || *b.Elements[0].Scale != *tt.scale) {
				t.Errorf("scale not carried to element: %v", b.Elements[0].Scale)
			}
		})
	}
}

func TestBuild_Orientations(t *testing.T) {
	f := Furniture{Hitbox: Hitbox{Width: 1, Height: 1, Length: 1, Offset: math.Vec3{Y: 0.25}}, Solid: true}

	wall := Build(Wall, f, Options{})
	if p := wall.Elements[0].Position; p == nil || p.String() != "0.5,0,0.5" {
		t.Errorf("wall position = %v, want 0.5,0,0.5", p)
	}
	if got := wall.Hitboxes[0].Position.String(); got != "0,0.25,0" {
		t.Errorf("wall hitbox position = %s", got)
	}

	ceiling := Build(Ceiling, f, Options{})
	if p := ceiling.Elements[0].Position; p == nil || p.String() != "0,-2,0" {
		t.Errorf("ceiling position = %v, want 0,-2,0", p)
	}
	if got := ceiling.Hitboxes[0].Position.String(); got != "0,-0.75,0" {
		t.Errorf("ceiling hitbox position = %s, want 0,-0.75,0", got)
	}
}

func TestVolumes_SolidCount(t *testing.T) {
	tests := []struct {
		w, h, l float64
		want    int
	}{
		{1, 1, 1, 1},
		{2, 1, 1, 2},
		{3, 2, 2, 12},
		{0.4, 0.4, 0.4, 1},
		{1.4, 2.6, 1, 3},
		{2.5, 1, 1, 2}, // half-to-even
		{3.5, 1, 1, 4},
	}

	for _, tt := range tests {
		got := Volumes(Hitbox{Width: tt.w, Height: tt.h, Length: tt.l}, math.Vec3{}, true, nil)
		if len(got) != tt.want {
			t.Errorf("Volumes(%v×%v×%v) = %d shulkers, want %d", tt.w, tt.h, tt.l, len(got), tt.want)
		}
		for _, v := range got {
			if v.Type != Shulker {
				t.Errorf("expected shulker, got %s", v.Type)
			}
		}
	}
}

func TestVolumes_SolidLayout(t *testing.T) {
	got := Volumes(Hitbox{Width: 2, Height: 2, Length: 1}, math.Vec3{X: 1}, true, nil)

	want := []string{
		"0.5,0,0", "1.5,0,0",
		"0.5,1,0", "1.5,1,0",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d volumes, got %d", len(want), len(got))
	}
	for i, v := range got {
		if v.Position.String() != want[i] {
			t.Errorf("volume %d at %s, want %s", i, v.Position, want[i])
		}
	}
}

func TestVolumes_NonSolid(t *testing.T) {
	got := Volumes(Hitbox{Width: 2, Height: 1.5, Length: 2}, math.Vec3{}, false, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 volume, got %d", len(got))
	}
	v := got[0]
	if v.Type != Interaction || v.BlocksBuilding {
		t.Errorf("expected non-blocking interaction, got %+v", v)
	}
	if v.Width == nil || v.Height == nil || *v.Width != 2 || *v.Height != 1.5 {
		t.Errorf("expected 2×1.5 footprint, got %+v", v)
	}
	if len(v.Seats) != 0 {
		t.Errorf("expected no seats, got %v", v.Seats)
	}
}

func TestVolumes_Seat(t *testing.T) {
	tests := []struct {
		width float64
		solid bool
		want  []string
	}{
		{1, true, []string{"0,-0.35,0"}},
		{0.5, false, []string{"0,-0.35,0"}},
		{2, true, []string{"-0.5,-0.35,0", "0.5,-0.35,0"}},
		{3, true, []string{"-1,-0.35,0", "0,-0.35,0", "1,-0.35,0"}},
	}

	for _, tt := range tests {
		got := Volumes(Hitbox{Width: tt.width, Height: 1, Length: 1}, math.Vec3{}, tt.solid, &Seat{Height: 0.5})
		if len(got) != 1 {
			t.Fatalf("expected 1 volume, got %d", len(got))
		}
		v := got[0]
		if v.Type != Interaction || v.BlocksBuilding != tt.solid {
			t.Errorf("width %v: unexpected volume %+v", tt.width, v)
		}
		if len(v.Seats) != len(tt.want) {
			t.Fatalf("width %v: expected %d seats, got %v", tt.width, len(tt.want), v.Seats)
		}
		for i, s := range v.Seats {
			if s.String() != tt.want[i] {
				t.Errorf("width %v: seat %d at %s, want %s", tt.width, i, s, tt.want[i])
			}
		}
	}
}

func writeModel(t *testing.T, root, ns, path, content string) {
	t.Helper()
	full := filepath.Join(root, "assets", ns, "models", filepath.FromSlash(path)+".json")
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestYOffset(t *testing.T) {
	root := t.TempDir()
	writeModel(t, root, "pack", "furniture/lamp", `{"elements":[{"from":[4,-16,4],"to":[12,16,12]}]}`)
	writeModel(t, root, "pack", "furniture/table", `{"elements":[{"from":[0,0,0],"to":[16,14,16]}]}`)
	writeModel(t, root, "other", "furniture/lamp", `{"elements":[{"from":[0,0,0],"to":[16,16,16]}]}`)
	writeModel(t, root, "pack", "furniture/broken", `{"elements":`)

	tests := []struct {
		name      string
		modelPath string
		root      string
		want      float64
	}{
		{"tall", "furniture/lamp", root, TallYOffset},
		{"flush", "furniture/table", root, FlushYOffset},
		{"explicit namespace", "other:furniture/lamp", root, FlushYOffset},
		{"explicit same namespace", "pack:furniture/lamp", root, TallYOffset},
		{"missing", "furniture/none", root, FlushYOffset},
		{"malformed", "furniture/broken", root, FlushYOffset},
		{"no path", "", root, FlushYOffset},
		{"no root", "furniture/lamp", "", FlushYOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YOffset(tt.modelPath, tt.root, "pack"); got != tt.want {
				t.Errorf("YOffset(%q) = %v, want %v", tt.modelPath, got, tt.want)
			}
		})
	}
}

func TestVolumes_SizeKeys(t *testing.T) {
	tests := []struct {
		name     string
		hb       Hitbox
		solid    bool
		wantSize bool
	}{
		{"zero-sized interaction", Hitbox{}, false, true},
		{"interaction", Hitbox{Width: 1, Height: 2, Length: 1}, false, true},
		{"shulker", Hitbox{Width: 1, Height: 1, Length: 1}, true, false},
	}

	for _, tt := range tests {
		data, err := yaml.Marshal(Volumes(tt.hb, math.Vec3{}, tt.solid, nil)[0])
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		out := string(data)
		for _, key := range []string{"width:", "height:"} {
			if got := strings.Contains(out, key); got != tt.wantSize {
				t.Errorf("%s: %s present = %v, want %v\n%s", tt.name, key, got, tt.wantSize, out)
			}
		}
	}
}
