// Package flyweight implements the Flyweight pattern for a registry of ship hulls.
//
// # Overview
//
// Many hulls share the same stereotype, thickness and material. Storing that
// triple once per hull wastes memory, so a Factory keeps exactly one Flyweight
// per distinct SharedState and callers pair it with the per-hull
// IndividualState (launch date, port of call) only when they need it.
//
// # Quick Start
//
//	factory := flyweight.NewFactory(flyweight.Config{Output: os.Stdout},
//	    flyweight.NewSharedState("Ice Breaker", "30cm", "Hardened Steel"),
//	    flyweight.NewSharedState("Pontoon", "1cm", "Reinforced Nylon"),
//	)
//	defer factory.Close()
//
//	fw := factory.GetFlyweight(flyweight.NewSharedState("Galleon", "16cm", "Black Oak"))
//	fw.Operation(flyweight.NewIndividualState("June 7th", "Puerto Oro"))
//	factory.ListFlyweights()
//
// # Keys
//
// A Key is the SharedState triple itself, compared field by field. Its String
// form joins the fields with KeySeparator for display; that form can collide
// when a field contains the separator, the Key itself cannot.
//
// # Seeding
//
// NewFactory and Factory.Seed insert flyweights first-writer-wins: a state
// whose key is already present is dropped and the stored flyweight is kept.
// HotSeeds uses Argus to watch a seed catalog file and feeds it to Seed.
//
// # Narration
//
// Config.Output receives a human-readable trace: whether GetFlyweight created
// or reused a flyweight, every Flyweight.Operation and every listing. The
// create/reuse line is always written before GetFlyweight returns.
//
// # Observability
//
// Config.Logger takes any Logger (see the zaplog package for a zap adapter)
// and Config.MetricsCollector any MetricsCollector (see the otel package).
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package flyweight
