// Package testutils provides shared probe nodes for exercising trees in
// tests: scripted leaves, flip-switch conditions, and leaves that fail
// the test when ticked.
package testutils

import (
	"testing"

	"github.com/aretw0/grove/pkg/behavior"
)

// Script is a leaf that replays a fixed list of statuses in order and
// sticks to the last entry once the list is exhausted. It counts
// initializations and ticks so tests can assert lifecycle guarantees.
type Script[S comparable, W any] struct {
	Statuses []behavior.Status
	Inits    int
	Ticks    int
}

// NewScript builds a Script from the given playback.
func NewScript[S comparable, W any](statuses ...behavior.Status) *Script[S, W] {
	return &Script[S, W]{Statuses: statuses}
}

func (s *Script[S, W]) Initialize(W) { s.Inits++ }

func (s *Script[S, W]) Tick(S, W) behavior.Status {
	i := s.Ticks
	s.Ticks++
	if i >= len(s.Statuses) {
		i = len(s.Statuses) - 1
	}
	return s.Statuses[i]
}

// MustNotRun returns a leaf that fails the test if it is ever ticked.
func MustNotRun[S comparable, W any](t testing.TB) behavior.Behavior[S, W] {
	return behavior.Func[S, W](func(S, W) behavior.Status {
		t.Helper()
		t.Fatalf("leaf ticked although it must not run")
		return behavior.Failure
	})
}

// Gate is a condition whose answer tests can flip at will. It counts
// initializations and evaluations.
type Gate[S comparable, W any] struct {
	Open  bool
	Inits int
	Tests int
}

func (g *Gate[S, W]) Initialize(W) { g.Inits++ }

func (g *Gate[S, W]) Test(S, W) bool {
	g.Tests++
	return g.Open
}
