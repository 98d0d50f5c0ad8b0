package source

import "gopkg.in/yaml.v3"

// Furniture is the "behaviours.furniture" block.
type Furniture struct {
	Entity                string                 `yaml:"entity" json:"entity,omitempty" jsonschema:"enum=armor_stand,enum=item_frame,enum=item_display"`
	Solid                 *bool                  `yaml:"solid" json:"solid,omitempty" jsonschema:"description=Blocks movement; defaults to true"`
	PlaceableOn           *PlaceableOn           `yaml:"placeable_on" json:"placeable_on,omitempty"`
	Hitbox                *Hitbox                `yaml:"hitbox" json:"hitbox,omitempty"`
	DisplayTransformation *DisplayTransformation `yaml:"display_transformation" json:"display_transformation,omitempty"`
	Scale                 *Vector                `yaml:"scale" json:"scale,omitempty"`
}

// IsSolid reports the "solid" flag, which defaults to true.
func (f Furniture) IsSolid() bool {
	return f.Solid == nil || *f.Solid
}

// ScaleVector returns display_transformation.scale, else scale, else nil.
func (f Furniture) ScaleVector() *Vector {
	if f.DisplayTransformation != nil && f.DisplayTransformation.Scale != nil {
		return f.DisplayTransformation.Scale
	}
	return f.Scale
}

// PlaceableOn lists the surfaces a furniture can be placed on.
type PlaceableOn struct {
	Floor   bool `yaml:"floor" json:"floor,omitempty"`
	Walls   bool `yaml:"walls" json:"walls,omitempty"`
	Ceiling bool `yaml:"ceiling" json:"ceiling,omitempty"`

	explicit bool // the mapping had at least one key
}

// UnmarshalYAML records whether any flag was written, even a false one.
func (p *PlaceableOn) UnmarshalYAML(node *yaml.Node) error {
	type plain PlaceableOn
	var v plain
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = PlaceableOn(v)
	p.explicit = node.Kind == yaml.MappingNode && len(node.Content) > 0
	return nil
}

// IsEmpty reports whether no flag was given. A mapping whose flags are all
// false is not empty: it enables no surface.
func (p PlaceableOn) IsEmpty() bool {
	return !p.explicit && !p.Floor && !p.Walls && !p.Ceiling
}

// Hitbox is a furniture collision volume in blocks. Missing sizes read as 1.
type Hitbox struct {
	Width        float64 `yaml:"width" json:"width,omitempty"`
	Height       float64 `yaml:"height" json:"height,omitempty"`
	Length       float64 `yaml:"length" json:"length,omitempty"`
	WidthOffset  float64 `yaml:"width_offset" json:"width_offset,omitempty"`
	HeightOffset float64 `yaml:"height_offset" json:"height_offset,omitempty"`
	LengthOffset float64 `yaml:"length_offset" json:"length_offset,omitempty"`
}

// UnitHitbox is the hitbox assumed when none is configured.
var UnitHitbox = Hitbox{Width: 1, Height: 1, Length: 1}

// UnmarshalYAML applies the 1×1×1 defaults before decoding.
func (h *Hitbox) UnmarshalYAML(node *yaml.Node) error {
	type plain Hitbox
	v := plain(UnitHitbox)
	if err := node.Decode(&v); err != nil {
		return err
	}
	*h = Hitbox(v)
	return nil
}

// DisplayTransformation is the item_display transformation block.
type DisplayTransformation struct {
	Scale *Vector `yaml:"scale" json:"scale,omitempty"`
}

// Vector is an x/y/z triple. Missing components read as 1.
type Vector struct {
	X float64 `yaml:"x" json:"x,omitempty"`
	Y float64 `yaml:"y" json:"y,omitempty"`
	Z float64 `yaml:"z" json:"z,omitempty"`
}

// UnmarshalYAML applies the unit defaults before decoding.
func (v *Vector) UnmarshalYAML(node *yaml.Node) error {
	type plain Vector
	p := plain{X: 1, Y: 1, Z: 1}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*v = Vector(p)
	return nil
}

// FurnitureSit is the "behaviours.furniture_sit" block.
type FurnitureSit struct {
	SitHeight float64 `yaml:"sit_height" json:"sit_height,omitempty" jsonschema:"description=Seat height in blocks; defaults to 0.5"`

	off bool
}

// DefaultSitHeight is used when furniture_sit has no sit_height.
const DefaultSitHeight = 0.5

// UnmarshalYAML applies the default sit height before decoding.
func (s *FurnitureSit) UnmarshalYAML(node *yaml.Node) error {
	type plain FurnitureSit
	p := plain{SitHeight: DefaultSitHeight}
	if node.Kind == yaml.ScalarNode {
		// "furniture_sit: true" style flags carry no settings.
		var on bool
		if err := node.Decode(&on); err != nil {
			return err
		}
		*s = FurnitureSit{SitHeight: p.SitHeight, off: !on}
		return nil
	}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = FurnitureSit{SitHeight: p.SitHeight}
	return nil
}

// Seat returns the seat settings, or nil when the furniture has no seat.
func (b Behaviours) Seat() *FurnitureSit {
	if b.FurnitureSit == nil || b.FurnitureSit.off {
		return nil
	}
	return b.FurnitureSit
}
