// client.go: client-side helpers that pair flyweights with individual state
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package flyweight

import "fmt"

const msgAddingHull = "Client: Adding specific hull to database."

// AddHullToDatabase records one hull: it fetches the shared flyweight for
// the stereotype, thickness and material and runs its operation with the
// hull's own port of call and launch date.
func AddHullToDatabase(f *Factory, portOfCall, launchDate, stereotypeName, thickness, material string) Flyweight {
	_, _ = fmt.Fprintln(f.Output(), msgAddingHull)
	fw := f.GetFlyweight(NewSharedState(stereotypeName, thickness, material))
	fw.Operation(NewIndividualState(launchDate, portOfCall))
	return fw
}
