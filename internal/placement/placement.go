// Package placement computes furniture placement geometry: the display
// element's translation and the collision volumes for each surface a
// furniture item can be placed on.
package placement

import (
	"fmt"
	stdmath "math"

	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/math"
)

// Orientation is the surface a furniture is attached to.
type Orientation int

const (
	Ground Orientation = iota
	Wall
	Ceiling
)

// String returns the placement key used in the output configuration.
func (o Orientation) String() string {
	switch o {
	case Ground:
		return "ground"
	case Wall:
		return "wall"
	case Ceiling:
		return "ceiling"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// HitboxType is the entity backing a collision volume.
type HitboxType string

const (
	Shulker     HitboxType = "shulker"
	Interaction HitboxType = "interaction"
)

// Hitbox dimensions and offset in blocks.
type Hitbox struct {
	Width, Height, Length float64
	Offset                math.Vec3 // width/height/length offsets
}

// UnitHitbox is used when a furniture declares no hitbox.
var UnitHitbox = Hitbox{Width: 1, Height: 1, Length: 1}

// Seat describes a sittable furniture.
type Seat struct {
	Height float64 // sit height in blocks
}

// SeatYOffset converts a sit height into the seat's Y position.
const SeatYOffset = -0.85

// Furniture is the input to Build.
type Furniture struct {
	Item   string // fully qualified item id shown by the display element
	Hitbox Hitbox
	Solid  bool
	Seat   *Seat      // nil when the furniture cannot be sat on
	Scale  *math.Vec3 // nil when no display scale is configured
}

// Options carries the model-derived inputs to Build.
type Options struct {
	// YOffset is the result of YOffset for the furniture's model. When
	// HasYOffset is false, half the hitbox height is used instead.
	YOffset    float64
	HasYOffset bool
}

// Block is the placement configuration for one orientation.
type Block struct {
	LootSpawnOffset math.Vec3 `yaml:"loot-spawn-offset"`
	Rules           Rules     `yaml:"rules"`
	Elements        []Element `yaml:"elements"`
	Hitboxes        []Volume  `yaml:"hitboxes,omitempty"`
}

// Rules constrain how the furniture may be rotated and aligned.
type Rules struct {
	Rotation  string `yaml:"rotation"`
	Alignment string `yaml:"alignment"`
}

// Element is the item display entity rendering the furniture.
type Element struct {
	Item             string     `yaml:"item"`
	DisplayTransform string     `yaml:"display-transform"`
	ShadowRadius     float64    `yaml:"shadow-radius"`
	ShadowStrength   float64    `yaml:"shadow-strength"`
	Billboard        string     `yaml:"billboard"`
	Translation      math.Vec3  `yaml:"translation"`
	Position         *math.Vec3 `yaml:"position,omitempty"`
	Scale            *math.Vec3 `yaml:"scale,omitempty"`
}

// Volume is one collision sub-volume. Interaction volumes always carry a
// width and height, shulkers never do.
type Volume struct {
	Position       math.Vec3   `yaml:"position"`
	Type           HitboxType  `yaml:"type"`
	BlocksBuilding bool        `yaml:"blocks-building"`
	Width          *float64    `yaml:"width,omitempty"`
	Height         *float64    `yaml:"height,omitempty"`
	Interactive    bool        `yaml:"interactive"`
	Seats          []math.Vec3 `yaml:"seats,omitempty"`
}

var (
	wallPosition    = math.Vec3{X: 0.5, Y: 0, Z: 0.5}
	ceilingPosition = math.Vec3{X: 0, Y: -2, Z: 0}
	lootSpawnOffset = math.Vec3{X: 0, Y: 0.4, Z: 0}
)

// Build returns the placement block of f for orientation o.
func Build(o Orientation, f Furniture, opts Options) Block {
	hb := f.Hitbox

	el := Element{
		Item:             f.Item,
		DisplayTransform: "NONE",
		ShadowRadius:     0.4,
		ShadowStrength:   0.5,
		Billboard:        "FIXED",
		Translation:      translation(hb, f.Scale, opts),
	}
	switch o {
	case Wall:
		p := wallPosition
		el.Position = &p
	case Ceiling:
		p := ceilingPosition
		el.Position = &p
	}
	if f.Scale != nil {
		s := *f.Scale
		el.Scale = &s
	}

	offset := hb.Offset
	if o == Ceiling {
		// Hitboxes hang below the attachment point.
		offset.Y -= 1.0
	}

	return Block{
		LootSpawnOffset: lootSpawnOffset,
		Rules:           Rules{Rotation: "ANY", Alignment: "ANY"},
		Elements:        []Element{el},
		Hitboxes:        Volumes(hb, offset, f.Solid, f.Seat),
	}
}

func translation(hb Hitbox, scale *math.Vec3, opts Options) math.Vec3 {
	y := hb.Height / 2
	if opts.HasYOffset {
		y = opts.YOffset
	}
	if scale != nil {
		y *= scale.MaxComponent()
	}

	var z float64
	// One oversized furniture family (2 high, 3 wide, 2 long) renders half a
	// block off on Z. There is no general rule behind this value.
	if hb.Height == 2 && hb.Width == 3 && hb.Length == 2 {
		z = 0.5
	}
	return math.Vec3{X: 0, Y: y, Z: z}
}

// Volumes splits a hitbox into collision sub-volumes positioned at offset.
//
// A seat yields one interaction volume covering the footprint with seats
// spread along X. A solid hitbox yields one shulker per unit cell, centred
// on X/Z and stacked upward from offset. Anything else yields a single
// non-blocking interaction volume.
func Volumes(hb Hitbox, offset math.Vec3, solid bool, seat *Seat) []Volume {
	width, height := hb.Width, hb.Height
	if seat != nil {
		return []Volume{{
			Position:       offset,
			Type:           Interaction,
			BlocksBuilding: solid,
			Width:          &width,
			Height:         &height,
			Interactive:    true,
			Seats:          Seats(hb.Width, seat.Height),
		}}
	}

	if !solid {
		return []Volume{{
			Position:       offset,
			Type:           Interaction,
			BlocksBuilding: false,
			Width:          &width,
			Height:         &height,
			Interactive:    true,
		}}
	}

	w, h, l := cells(hb.Width), cells(hb.Height), cells(hb.Length)
	out := make([]Volume, 0, w*h*l)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for z := 0; z < l; z++ {
				rel := math.Vec3{
					X: float64(x) - float64(w-1)/2,
					Y: float64(y),
					Z: float64(z) - float64(l-1)/2,
				}
				out = append(out, Volume{
					Position:       rel.Add(offset),
					Type:           Shulker,
					BlocksBuilding: true,
					Interactive:    true,
				})
			}
		}
	}
	return out
}

// Seats spreads round(width) seats evenly along X, centred on 0.
// Rounding is half-to-even throughout this package.
func Seats(width, sitHeight float64) []math.Vec3 {
	y := sitHeight + SeatYOffset
	n := int(stdmath.RoundToEven(width))
	if n <= 1 {
		return []math.Vec3{{X: 0, Y: y, Z: 0}}
	}
	out := make([]math.Vec3, n)
	for i := range out {
		out[i] = math.Vec3{X: float64(i) - float64(n-1)/2, Y: y, Z: 0}
	}
	return out
}

// cells rounds a dimension to a whole number of blocks, at least one.
func cells(d float64) int {
	n := int(stdmath.RoundToEven(d))
	if n < 1 {
		return 1
	}
	return n
}
