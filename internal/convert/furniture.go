package convert

import (
	"go.uber.org/zap"

	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/placement"
	"github.com/Dove-Chen/Minecraft-Config-Converter/internal/source"
	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/math"
)

// Furniture behavior constants.
const (
	FurnitureBehavior     = "furniture_item"
	FurnitureLootTemplate = "default:loot_table/furniture"
	FurnitureBreakSound   = "minecraft:block.stone.break"
	FurniturePlaceSound   = "minecraft:block.stone.place"
)

// furniture attaches a furniture behavior with one placement block per
// allowed surface.
func (r *run) furniture(item *Item, id string, src source.Item) {
	f := src.Behaviours.Furniture

	in := placement.Furniture{
		Item:   id,
		Hitbox: hitbox(f.Hitbox),
		Solid:  f.IsSolid(),
	}
	if s := src.Behaviours.Seat(); s != nil {
		in.Seat = &placement.Seat{Height: s.SitHeight}
	}
	if v := f.ScaleVector(); v != nil {
		in.Scale = &math.Vec3{X: v.X, Y: v.Y, Z: v.Z}
	}

	yOffset := placement.YOffset(src.Resource.ModelPath, r.sourcePack, r.ns)
	opts := placement.Options{YOffset: yOffset, HasYOffset: true}

	b := &Behavior{
		Type: FurnitureBehavior,
		Furniture: Furniture{
			Settings: FurnitureSettings{
				Item:   id,
				Sounds: Sounds{Break: FurnitureBreakSound, Place: FurniturePlaceSound},
			},
			Loot: Loot{
				Template:  FurnitureLootTemplate,
				Arguments: LootArguments{Item: id},
			},
		},
	}
	for _, o := range orientations(f.PlaceableOn) {
		b.Furniture.Placement.Set(o, placement.Build(o, in, opts))
	}
	item.Behavior = b

	r.log.Debug("furniture placement",
		zap.String("id", id),
		zap.Float64("y_offset", yOffset),
		zap.Bool("solid", in.Solid),
		zap.Bool("seat", in.Seat != nil))

	r.assignModel(item, src.Resource)
}

func hitbox(h *source.Hitbox) placement.Hitbox {
	if h == nil {
		return placement.UnitHitbox
	}
	return placement.Hitbox{
		Width:  h.Width,
		Height: h.Height,
		Length: h.Length,
		Offset: math.Vec3{X: h.WidthOffset, Y: h.HeightOffset, Z: h.LengthOffset},
	}
}

// orientations lists the enabled surfaces; floor only when no flag is given.
func orientations(p *source.PlaceableOn) []placement.Orientation {
	if p == nil || p.IsEmpty() {
		return []placement.Orientation{placement.Ground}
	}
	var out []placement.Orientation
	if p.Floor {
		out = append(out, placement.Ground)
	}
	if p.Walls {
		out = append(out, placement.Wall)
	}
	if p.Ceiling {
		out = append(out, placement.Ceiling)
	}
	return out
}
