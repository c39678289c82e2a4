// flyweight_test.go: tests for the Flyweight value
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package flyweight

import (
	"bytes"
	"testing"
)

func TestFlyweight_Describe(t *testing.T) {
	fw := newFlyweight(galleon, nil, 0)
	want := "Flyweight: Displaying shared ([ Galleon , 16cm , Black Oak ]) and individual ([ June 7th , Puerto Oro ]) state."
	if got := fw.Describe(NewIndividualState("June 7th", "Puerto Oro")); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFlyweight_Operation(t *testing.T) {
	var out bytes.Buffer
	fw := newFlyweight(galleon, &out, 0)

	fw.Operation(NewIndividualState("June 7th", "Puerto Oro"))
	want := fw.Describe(NewIndividualState("June 7th", "Puerto Oro")) + "\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestFlyweight_ZeroValue(t *testing.T) {
	var fw Flyweight
	// Must not panic with no output configured.
	fw.Operation(NewIndividualState("", ""))
	if fw.Key() != (Key{}) {
		t.Errorf("expected zero key, got %v", fw.Key())
	}
}

func TestFlyweight_Accessors(t *testing.T) {
	fw := newFlyweight(pontoon, nil, 42)
	if fw.SharedState() != pontoon {
		t.Errorf("expected %v, got %v", pontoon, fw.SharedState())
	}
	if fw.Key() != pontoon.Key() {
		t.Errorf("expected key %v, got %v", pontoon.Key(), fw.Key())
	}
	if fw.CreatedAt() != 42 {
		t.Errorf("expected createdAt 42, got %d", fw.CreatedAt())
	}
}
