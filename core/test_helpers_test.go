// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for metro/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep the helpers stdlib-only so failures read the same across packages.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/metro/core"
)

// Common station names used across core tests, in raw (unnormalized) form.
const (
	StationEmpty = "   "

	StationAmeerpet = "Ameerpet"
	StationMadhapur = "Madhapur"
	StationHitec    = "HITEC City"
	StationGachi    = "Gachibowli"
	StationBegumpet = "Begumpet"
	StationMGBS     = "MG Bus Station"
)

// Common line labels.
const (
	LineBlue = "Blue Line"
	LineRed  = "Red Line"
)

// NewMetroGraph returns a small two-line network:
//
//	gachibowli ─5─ hitec city ─3─ madhapur ─4─ ameerpet ─3─ begumpet ─4─ mg bus station
//	└──────────────── blue line ──────────────┘└──────────── red line ────────────┘
func NewMetroGraph(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	edges := []struct {
		a, b string
		km   int64
		line string
	}{
		{StationAmeerpet, StationMadhapur, 4, LineBlue},
		{StationMadhapur, StationHitec, 3, LineBlue},
		{StationHitec, StationGachi, 5, LineBlue},
		{StationAmeerpet, StationBegumpet, 3, LineRed},
		{StationBegumpet, StationMGBS, 4, LineRed},
	}
	for _, e := range edges {
		if err := g.AddEdge(e.a, e.b, e.km, e.line); err != nil {
			t.Fatalf("AddEdge(%q,%q): %v", e.a, e.b, err)
		}
	}

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
// Use only for sentinel-style contracts (core.Err*).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: want true; got false", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: want false; got true", op)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustEqualStrings FAILS the test if the slices differ in length or order.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %v (len %d); want %v (len %d)", op, got, len(got), want, len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: index %d: got %q; want %q (full got=%v)", op, i, got[i], want[i], got)
		}
	}
}

// MustSortedStrings FAILS the test if ids are not sorted ascending.
func MustSortedStrings(t *testing.T, ids []string, op string) {
	t.Helper()

	if sort.StringsAreSorted(ids) {
		return
	}

	t.Fatalf("%s: not sorted: %v", op, ids)
}

// MustNoErrorsFromChan drains errCh after all producers finished and fails on the first error.
// Goroutines report through the channel instead of calling t.Fatalf themselves.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", op, err)
		}
	}
}
