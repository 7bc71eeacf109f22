package proj

import "sync"

// A SafeProj serializes access to a Proj so it can be shared between
// goroutines. Every call takes a per-handle lock, so throughput under
// contention is that of a single goroutine; for parallel throughput create
// one Context per goroutine instead.
type SafeProj struct {
	mu sync.Mutex
	p  *Proj
}

// Synchronized wraps a transformation for shared use. The Proj must not be
// used directly afterwards.
func Synchronized(p *Proj) *SafeProj {
	return &SafeProj{p: p}
}

func (s *SafeProj) Convert(coord Coord) (Coord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Convert(coord)
}

func (s *SafeProj) Project(coord Coord, inverse bool) (Coord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Project(coord, inverse)
}

func (s *SafeProj) ConvertSlice(coords []Coord) ([]Coord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.ConvertSlice(coords)
}

func (s *SafeProj) ProjectSlice(coords []Coord, inverse bool) ([]Coord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.ProjectSlice(coords, inverse)
}

func (s *SafeProj) Info() (ProjInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Info()
}

func (s *SafeProj) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Close()
}
