package placement

import (
	"github.com/Dove-Chen/Minecraft-Config-Converter/pkg/model"
)

// Y offsets returned by YOffset.
const (
	FlushYOffset = 0.5
	TallYOffset  = 1.5

	// tallThreshold is in model units (1/16 block).
	tallThreshold = -2.0
)

// YOffset estimates the display translation on Y for a furniture model.
//
// Models with geometry reaching below tallThreshold are treated as tall and
// get TallYOffset; everything else, including missing or unreadable model
// files and empty inputs, gets FlushYOffset. modelPath may carry its own
// namespace; otherwise namespace is used to locate
// assets/<ns>/models/<path>.json under packRoot.
func YOffset(modelPath, packRoot, namespace string) float64 {
	if modelPath == "" || packRoot == "" {
		return FlushYOffset
	}
	g, err := model.LoadGeometry(model.Path(packRoot, modelPath, namespace))
	if err != nil {
		return FlushYOffset
	}
	if g.ReachesBelow(tallThreshold) {
		return TallYOffset
	}
	return FlushYOffset
}
