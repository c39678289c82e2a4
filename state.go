// state.go: shared and individual state value types
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package flyweight

import "strings"

// KeySeparator joins the three shared-state fields in the display form of a Key.
const KeySeparator = "_"

// SharedState is the immutable part of a hull that many hulls have in common.
// It is a plain value: copying it copies every field.
type SharedState struct {
	StereotypeName string
	Thickness      string
	Material       string
}

// NewSharedState builds a SharedState from its three fields.
func NewSharedState(stereotypeName, thickness, material string) SharedState {
	return SharedState{
		StereotypeName: stereotypeName,
		Thickness:      thickness,
		Material:       material,
	}
}

// Key returns the lookup key of s.
func (s SharedState) Key() Key {
	return Key(s)
}

// String renders s as "[ stereotype , thickness , material ]".
func (s SharedState) String() string {
	return "[ " + s.StereotypeName + " , " + s.Thickness + " , " + s.Material + " ]"
}

// IndividualState is the per-hull part supplied at operation time.
// It is never stored by the factory.
type IndividualState struct {
	LaunchDate string
	PortOfCall string
}

// NewIndividualState builds an IndividualState.
func NewIndividualState(launchDate, portOfCall string) IndividualState {
	return IndividualState{LaunchDate: launchDate, PortOfCall: portOfCall}
}

// String renders s as "[ launchDate , portOfCall ]".
func (s IndividualState) String() string {
	return "[ " + s.LaunchDate + " , " + s.PortOfCall + " ]"
}

// Key identifies a flyweight inside a Factory.
//
// Key is compared field by field, so two triples map to the same flyweight
// only when all three fields are equal. Fields may contain KeySeparator.
type Key struct {
	StereotypeName string
	Thickness      string
	Material       string
}

// String returns the display form "stereotype_thickness_material".
// The display form is not injective when a field contains KeySeparator;
// never use it as an identity.
func (k Key) String() string {
	return strings.Join([]string{k.StereotypeName, k.Thickness, k.Material}, KeySeparator)
}
