package status

import (
	"sync"
	"testing"
)

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("spawn.pairs").Store(3)
	r.Ints.Get("score.current").Add(2)
	r.Floats.Get("fps").Set(59.94)
	r.Strings.Get("scene").Store("Play")

	got := r.Lines()
	want := []string{"score.current: 2", "spawn.pairs: 3", "fps: 59.9", "scene: Play"}
	if len(got) != len(want) {
		t.Fatalf("lines = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lines = %v, want %v", got, want)
		}
	}
	if r.TotalCount() != 4 {
		t.Fatalf("count = %d", r.TotalCount())
	}
}

func TestMetricMapSamePointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Fatal("Get returned distinct pointers for one key")
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Ints.Get("hits").Add(1)
			}
		}()
	}
	wg.Wait()

	if v := r.Ints.Get("hits").Load(); v != 8000 {
		t.Fatalf("hits = %d, want 8000", v)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Fatal("zero value not empty")
	}
	s.Store("abcdefghijklmnopqrstuvwxyz0123")
	if got := s.Load(); len(got) != MaxStringLen {
		t.Fatalf("stored %q, want %d bytes", got, MaxStringLen)
	}
}
