package roi

import (
	"math/rand/v2"
	"time"
)

// RandomSource yields a uniform integer in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type baseRange struct{ min, max int }

// Base land price ranges per mode, inclusive.
var baseRanges = map[Mode]baseRange{
	ModePostal: {50, 100},
	ModeZip:    {3000, 7000},
	ModeRegion: {500, 1500},
}

// Share of the base price that applies to each density class.
var areaPercents = map[Mode]map[AreaType]float64{
	ModePostal: {AreaRural: 0.25, AreaUrban: 0.5, AreaCity: 1},
	ModeZip:    {AreaRural: 0.25, AreaUrban: 0.5, AreaCity: 1},
	ModeRegion: {AreaRural: 0.1, AreaUrban: 0.3, AreaCity: 1},
}

// BaseRange returns the inclusive base price range for mode.
// ok is false for an unknown mode.
func BaseRange(mode Mode) (min, max int, ok bool) {
	r, ok := baseRanges[mode]
	return r.min, r.max, ok
}

// AreaPercent returns the scaling applied to the base price.
// Unknown combinations scale by 1.
func AreaPercent(mode Mode, area AreaType) float64 {
	if pct, ok := areaPercents[mode][area]; ok {
		return pct
	}
	return 1
}

// LandValueFor scales a fixed base sample for (mode, area).
func LandValueFor(base int, mode Mode, area AreaType) float64 {
	return float64(base) * AreaPercent(mode, area)
}

// LandValueSampler draws base land prices. Sampling happens only when
// a caller asks for it.
type LandValueSampler struct {
	rng RandomSource
}

// NewLandValueSampler wraps rng. A nil rng gets a time-seeded generator.
func NewLandValueSampler(rng RandomSource) *LandValueSampler {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1|1))
	}
	return &LandValueSampler{rng: rng}
}

// NewSeededSampler gives a reproducible sequence for seed.
func NewSeededSampler(seed uint64) *LandValueSampler {
	return &LandValueSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// SampleBase draws a uniform integer from the mode's range.
// An unknown mode samples 0.
func (s *LandValueSampler) SampleBase(mode Mode) int {
	r, ok := baseRanges[mode]
	if !ok {
		return 0
	}
	return s.rng.IntN(r.max-r.min+1) + r.min
}

// Sample draws a base price and scales it by the area percentage.
func (s *LandValueSampler) Sample(mode Mode, area AreaType) float64 {
	return LandValueFor(s.SampleBase(mode), mode, area)
}
