package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/mafiabot/internal/dice Roller

// Roller is the single source of randomness for the game engine
type Roller interface {
	// Intn returns a uniform int in [0, n). n must be positive.
	Intn(n int) int

	// Float64 returns a uniform float in [0.0, 1.0)
	Float64() float64

	// Shuffle randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultRoller is a seeded Roller safe for concurrent use
type DefaultRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *DefaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &DefaultRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform int in [0, n). Non-positive n yields 0.
func (r *DefaultRoller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Float64 returns a uniform float in [0.0, 1.0)
func (r *DefaultRoller) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Shuffle randomizes the order of n elements
func (r *DefaultRoller) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}
