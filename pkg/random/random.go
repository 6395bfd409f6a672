package random

import (
	"math/rand"
	"time"

	"github.com/username/when-exactly/pkg/dateutil"
)

// Generator produces valid calendar coordinates from a seeded source, so a
// failing property test can be replayed with the same seed.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded with seed
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Between returns an int in [lo, hi]
func (g *Generator) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// Date returns a valid (year, month, day) with year in [minYear, maxYear]
func (g *Generator) Date(minYear, maxYear int) (year, month, day int) {
	year = g.Between(max(minYear, dateutil.MinYear), min(maxYear, dateutil.MaxYear))
	month = g.Between(1, 12)
	day = g.Between(1, dateutil.DaysIn(year, month))
	return year, month, day
}

// Clock returns a valid (hour, minute, second)
func (g *Generator) Clock() (hour, minute, second int) {
	return g.Between(0, 23), g.Between(0, 59), g.Between(0, 59)
}

// Time returns a UTC time with whole seconds and year in [minYear, maxYear]
func (g *Generator) Time(minYear, maxYear int) time.Time {
	year, month, day := g.Date(minYear, maxYear)
	hour, minute, second := g.Clock()
	return dateutil.Civil(year, month, day, hour, minute, second)
}

// ISOWeek returns a valid (ISO year, week, weekday)
func (g *Generator) ISOWeek(minYear, maxYear int) (year, week, weekday int) {
	year = g.Between(max(minYear, dateutil.MinYear), min(maxYear, dateutil.MaxYear))
	week = g.Between(1, dateutil.ISOWeeksInYear(year))
	weekday = g.Between(1, 7)
	return year, week, weekday
}

// Shuffle returns a shuffled copy of values using Fisher-Yates.
func Shuffle[T any](g *Generator, values []T) []T {
	shuffled := make([]T, len(values))
	copy(shuffled, values)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// SelectItems selects n distinct indices out of totalCount
func (g *Generator) SelectItems(totalCount, n int) []int {
	if n <= 0 || totalCount <= 0 {
		return []int{}
	}

	allIndices := make([]int, totalCount)
	for i := range allIndices {
		allIndices[i] = i
	}
	if n >= totalCount {
		return allIndices
	}

	return Shuffle(g, allIndices)[:n]
}
