package server

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func newTestRegistry(limit int) *WheelRegistry {
	return NewWheelRegistry(limit, rand.New(rand.NewSource(3)))
}

func TestWheelRegistry_Create(t *testing.T) {
	r := newTestRegistry(4)

	id, err := r.Create(0.5)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("ID %q is not a UUID: %v", id, err)
	}
	if r.Len() != 1 {
		t.Errorf("Len: got %d, want 1", r.Len())
	}
}

func TestWheelRegistry_Limit(t *testing.T) {
	r := newTestRegistry(2)

	for i := 0; i < 2; i++ {
		if _, err := r.Create(0); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}
	if _, err := r.Create(0); err == nil {
		t.Error("Create should fail once the limit is reached")
	}

	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", r.Len())
	}
	if _, err := r.Create(0); err != nil {
		t.Errorf("Create after Clear failed: %v", err)
	}
}

func TestWheelRegistry_ZeroLimit(t *testing.T) {
	if _, err := newTestRegistry(0).Create(0); err == nil {
		t.Error("Create should fail with a zero limit")
	}
}

func TestWheelRegistry_NextAndDelete(t *testing.T) {
	r := newTestRegistry(4)
	id, err := r.Create(0)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := r.Next(id, 3)
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Next: got %d colors, want 3", len(got))
	}

	if !r.Delete(id) {
		t.Error("Delete: got false, want true")
	}
	if r.Delete(id) {
		t.Error("second Delete: got true, want false")
	}
	if _, err := r.Next(id, 1); err == nil {
		t.Error("Next should fail for a deleted wheel")
	}
}

func TestWheelRegistry_IndependentWheels(t *testing.T) {
	r := newTestRegistry(4)
	a, _ := r.Create(0)
	b, _ := r.Create(0)

	first, _ := r.Next(a, 5)
	// Advancing b must not move a.
	if _, err := r.Next(b, 5); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	more, _ := r.Next(a, 1)

	if more[0].Hue() == first[len(first)-1].Hue() {
		t.Error("wheel a did not advance")
	}
}

func TestWheelRegistry_ConcurrentAccess(t *testing.T) {
	r := newTestRegistry(64)
	id, err := r.Create(0)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := r.Next(id, 1); err != nil {
					t.Errorf("Next failed: %v", err)
					return
				}
			}
			if _, err := r.Create(0.1); err != nil {
				t.Errorf("Create failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if r.Len() != 9 {
		t.Errorf("Len: got %d, want 9", r.Len())
	}
}
