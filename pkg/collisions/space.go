package collisions

import (
	"math"

	"github.com/solarlune/resolv"
)

const (
	// ZoneSpaceWidth is the screen width in space units. One unit is one cell.
	ZoneSpaceWidth = 1000
	// ZoneSpaceHeight is a single row; only the horizontal position matters
	ZoneSpaceHeight = 1

	TagZoneLow  = "zone-low"
	TagZoneHigh = "zone-high"
	TagProbe    = "probe"
)

// Zone is a horizontal band of the screen.
type Zone uint8

const (
	ZoneNeutral Zone = iota
	// ZoneLow is the band at the low end of the x axis (left edge of the rendered frame)
	ZoneLow
	// ZoneHigh is the band at the high end of the x axis
	ZoneHigh
)

func (z Zone) String() string {
	switch z {
	case ZoneLow:
		return "low"
	case ZoneHigh:
		return "high"
	default:
		return "neutral"
	}
}

// ZoneMap classifies screen positions into edge bands and the neutral center.
// The bands are objects in a resolv space and a probe object is moved to the
// classified position.
type ZoneMap struct {
	space *resolv.Space
	low   *resolv.Object
	high  *resolv.Object
	probe *resolv.Object
}

// NewZoneMap builds a map whose edge bands each cover sideWidth of the screen
// (a fraction between 0 and 0.5).
func NewZoneMap(sideWidth float64) *ZoneMap {
	band := math.Floor(sideWidth * ZoneSpaceWidth)
	space := resolv.NewSpace(ZoneSpaceWidth, ZoneSpaceHeight, 1, 1)
	low := resolv.NewObject(0, 0, band, ZoneSpaceHeight, TagZoneLow)
	// the high band starts one cell past the mirrored edge so that both bands
	// exclude their boundary
	high := resolv.NewObject(ZoneSpaceWidth-band+1, 0, band-1, ZoneSpaceHeight, TagZoneHigh)
	probe := resolv.NewObject(0, 0, 1, ZoneSpaceHeight, TagProbe)
	space.Add(low, high, probe)

	return &ZoneMap{
		space: space,
		low:   low,
		high:  high,
		probe: probe,
	}
}

// Classify returns the zone for x given in normalized device coordinates
// (-1 at the left edge, 1 at the right edge).
func (z *ZoneMap) Classify(x float64) Zone {
	z.probe.Position.X = ToSpace(x)
	z.probe.Update()

	switch {
	case z.probe.SharesCells(z.low):
		return ZoneLow
	case z.probe.SharesCells(z.high):
		return ZoneHigh
	default:
		return ZoneNeutral
	}
}

// ToSpace converts a normalized device coordinate into a space position,
// clamped to the space.
func ToSpace(x float64) float64 {
	if math.IsNaN(x) {
		return ZoneSpaceWidth / 2
	}
	px := math.Floor((x*0.5 + 0.5) * ZoneSpaceWidth)
	return math.Max(0, math.Min(ZoneSpaceWidth-1, px))
}
