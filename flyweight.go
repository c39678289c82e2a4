// flyweight.go: the shared flyweight handed out by a Factory
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package flyweight

import (
	"fmt"
	"io"
)

const (
	// Version of the flyweight library
	Version = "v0.1.0-dev"

	// DemoRepetitions is how many times the hullyard driver repeats the same request.
	DemoRepetitions = 1_000
)

// Flyweight owns one copy of a SharedState and combines it with an
// IndividualState on demand.
//
// Flyweight values returned by a Factory are copies: changing a returned
// value never changes what the factory holds.
type Flyweight struct {
	shared    SharedState
	out       io.Writer
	createdAt int64
}

// newFlyweight copies s into a new flyweight writing to out.
func newFlyweight(s SharedState, out io.Writer, createdAt int64) Flyweight {
	if out == nil {
		out = io.Discard
	}
	return Flyweight{
		shared:    s,
		out:       out,
		createdAt: createdAt,
	}
}

// SharedState returns a copy of the owned shared state.
func (f Flyweight) SharedState() SharedState {
	return f.shared
}

// Key returns the key the flyweight is stored under.
func (f Flyweight) Key() Key {
	return f.shared.Key()
}

// CreatedAt returns the creation time in nanoseconds since epoch,
// as reported by the factory's TimeProvider.
func (f Flyweight) CreatedAt() int64 {
	return f.createdAt
}

// Describe returns the line Operation writes, without the trailing newline.
func (f Flyweight) Describe(individual IndividualState) string {
	return fmt.Sprintf("Flyweight: Displaying shared (%s) and individual (%s) state.", f.shared, individual)
}

// Operation displays the shared state together with individual.
func (f Flyweight) Operation(individual IndividualState) {
	out := f.out
	if out == nil {
		out = io.Discard
	}
	_, _ = fmt.Fprintln(out, f.Describe(individual))
}
