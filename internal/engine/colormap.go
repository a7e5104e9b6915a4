package engine

import "fmt"

// ColorMapper chooses the fill color for single-perimeter time steps.
// Implementations must be pure: the same inputs always yield the same
// color.
type ColorMapper interface {
	Color(day, totalDays, elapsedHours int) string
}

// ylOrRdStops are the anchor colors of the sequential yellow-orange-red
// ramp, pale to dark.
var ylOrRdStops = [][3]uint8{
	{0xff, 0xff, 0xcc},
	{0xff, 0xed, 0xa0},
	{0xfe, 0xd9, 0x76},
	{0xfe, 0xb2, 0x4c},
	{0xfd, 0x8d, 0x3c},
	{0xfc, 0x4e, 0x2a},
	{0xe3, 0x1a, 0x1c},
	{0xbd, 0x00, 0x26},
	{0x80, 0x00, 0x26},
}

// DayIntensityMapper keys color to the day index only: within one day,
// every step shares a color. This is the legacy default; it trades
// smoothness for a readable day-by-day progression.
type DayIntensityMapper struct{}

func (DayIntensityMapper) Color(day, totalDays, _ int) string {
	return rampColor(float64(day) / float64(totalDays))
}

// ContinuousIntensityMapper keys color to elapsed hours, giving a smooth
// ramp across steps within a day. Not the default; swap it in without
// touching the geometry core.
type ContinuousIntensityMapper struct{}

func (ContinuousIntensityMapper) Color(_, totalDays, elapsedHours int) string {
	return rampColor(float64(elapsedHours) / float64(totalDays*24))
}

// zonePalette is the fixed danger-zone color list, most severe first.
var zonePalette = []string{"red", "orange", "yellow"}

// zoneColor returns the discrete color for zone index i (0 = most
// severe). Counts beyond the palette reuse the least severe color.
func zoneColor(i int) string {
	if i < len(zonePalette) {
		return zonePalette[i]
	}
	return zonePalette[len(zonePalette)-1]
}

// rampColor linearly interpolates the ramp at intensity in [0,1],
// clamping out-of-range values.
func rampColor(intensity float64) string {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}

	segments := len(ylOrRdStops) - 1
	pos := intensity * float64(segments)
	idx := int(pos)
	if idx >= segments {
		idx = segments - 1
	}
	frac := pos - float64(idx)

	lo, hi := ylOrRdStops[idx], ylOrRdStops[idx+1]
	r := lerp(lo[0], hi[0], frac)
	g := lerp(lo[1], hi[1], frac)
	b := lerp(lo[2], hi[2], frac)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
