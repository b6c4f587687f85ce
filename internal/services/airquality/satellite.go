package airquality

import (
	"math"
	"math/rand/v2"
	"sync"

	"airquality-api/internal/models"
)

const (
	satelliteSource = "TEMPO (Satellite - Mock)"
	// maxSatelliteDeviation is the largest relative offset from the ground value.
	maxSatelliteDeviation = 0.1
)

// RandomSource returns a uniformly distributed value in [0, 1).
type RandomSource func() float64

// UnseededSource draws from the process-wide generator.
func UnseededSource() RandomSource {
	return rand.Float64
}

// SeededSource returns a reproducible source. It is safe for concurrent use.
func SeededSource(seed int64) RandomSource {
	var mu sync.Mutex
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return r.Float64()
	}
}

// FixedSource always returns v. Useful when a caller needs an exact estimate.
func FixedSource(v float64) RandomSource {
	return func() float64 { return v }
}

// SatelliteEstimator derives a mock satellite PM2.5 value from a ground reading.
type SatelliteEstimator struct {
	random RandomSource
}

func NewSatelliteEstimator(random RandomSource) *SatelliteEstimator {
	if random == nil {
		random = UnseededSource()
	}
	return &SatelliteEstimator{random: random}
}

// Estimate perturbs the ground PM2.5 by up to ±10% and rounds to 2 decimals.
// It returns false when there is no ground reading to derive from.
func (e *SatelliteEstimator) Estimate(ground *models.GroundReading) (models.SatelliteReading, bool) {
	if ground == nil {
		return models.SatelliteReading{}, false
	}

	u := math.Min(math.Max(e.random(), 0), 1)
	factor := 1 + maxSatelliteDeviation*(2*u-1)

	return models.SatelliteReading{
		PM25:   round2(ground.PM25 * factor),
		Unit:   models.UnitPM25,
		Source: satelliteSource,
	}, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
