package engine

import (
	"time"

	"github.com/lixenwraith/crossing/constants"
	"golang.org/x/exp/rand"
)

// RandomSource draws uniform integers in [0, n)
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a seeded source; equal seeds give equal speed sequences
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeededSource returns a source seeded from the wall clock
func NewTimeSeededSource() RandomSource {
	return NewRandomSource(uint64(time.Now().UnixNano()))
}

// drawSpeed picks an integer speed in [ObstacleMinSpeed, ObstacleMaxSpeed)
func drawSpeed(rng RandomSource) float64 {
	return float64(constants.ObstacleMinSpeed + rng.Intn(constants.ObstacleMaxSpeed-constants.ObstacleMinSpeed))
}
