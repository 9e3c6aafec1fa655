package server

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/ironsheep/colors"
)

// WheelRegistry holds the ColorWheel sessions created through the
// color_wheel_create tool, keyed by a random UUID.
//
// colors.ColorWheel is not safe for concurrent use, so every access to a wheel
// happens under the registry lock. WheelRegistry itself is safe for concurrent
// use by multiple goroutines.
//
// # Memory Management
//
// Wheels live until Delete or Clear is called. The registry refuses to create
// more than its limit so an unattended client cannot grow it without bound.
type WheelRegistry struct {
	mu     sync.Mutex
	limit  int
	seeds  *rand.Rand
	wheels map[string]*colors.ColorWheel
}

// NewWheelRegistry creates an empty registry that allows at most limit live
// wheels (0 means no wheels may be created). Each new wheel gets its own
// random source seeded from seeds.
func NewWheelRegistry(limit int, seeds *rand.Rand) *WheelRegistry {
	return &WheelRegistry{
		limit:  limit,
		seeds:  seeds,
		wheels: make(map[string]*colors.ColorWheel),
	}
}

// Create starts a new wheel at phase start and returns its ID.
//
// Returns an error if the registry already holds its limit of wheels.
func (r *WheelRegistry) Create(start float64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.wheels) >= r.limit {
		return "", fmt.Errorf("wheel limit reached (%d live wheels)", r.limit)
	}

	id := uuid.New().String()
	src := rand.New(rand.NewSource(r.seeds.Int63()))
	r.wheels[id] = colors.NewColorWheel(start, colors.WithRand(src))
	return id, nil
}

// Next advances the wheel with the given ID count times and returns the
// emitted colors in order.
//
// Returns an error if no wheel has that ID.
func (r *WheelRegistry) Next(id string, count int) ([]colors.HSVColor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wheels[id]
	if !ok {
		return nil, fmt.Errorf("unknown wheel: %s", id)
	}
	return w.Take(count), nil
}

// Delete removes a wheel and reports whether it existed.
func (r *WheelRegistry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.wheels[id]
	delete(r.wheels, id)
	return ok
}

// Clear removes every wheel.
func (r *WheelRegistry) Clear() {
	r.mu.Lock()
	r.wheels = make(map[string]*colors.ColorWheel)
	r.mu.Unlock()
}

// Len returns the number of live wheels.
func (r *WheelRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.wheels)
}
