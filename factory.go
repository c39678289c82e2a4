// factory.go: the flyweight factory
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package flyweight

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Narration written to Config.Output.
const (
	msgCreating = "FlyweightFactory: Can't find a flyweight, creating new one."
	msgReusing  = "FlyweightFactory: Reusing existing flyweight."
)

// Factory hands out one Flyweight per distinct Key.
//
// The factory owns every flyweight it stores. Callers always receive copies.
// Entries are never evicted. A Factory is safe for concurrent use: the
// existence check and the insert of GetFlyweight happen under one lock, so
// each key is created at most once. Every line written to the output is
// written whole, but lines from different goroutines may interleave.
type Factory struct {
	mu         sync.Mutex
	flyweights map[Key]Flyweight
	closed     bool

	out      io.Writer
	logger   Logger
	clock    TimeProvider
	metrics  MetricsCollector
	onCreate func(Key)

	created atomic.Uint64
	reused  atomic.Uint64
	seeded  atomic.Uint64
}

// NewFactory creates a factory holding one flyweight per distinct key in
// seeds. When two seeds share a key the first one wins and later ones are
// dropped without error.
//
// NewFactory never returns nil.
func NewFactory(cfg Config, seeds ...SharedState) *Factory {
	cfg.applyDefaults()

	f := &Factory{
		flyweights: make(map[Key]Flyweight, len(seeds)),
		out:        lockOutput(cfg.Output),
		logger:     cfg.Logger,
		clock:      cfg.TimeProvider,
		metrics:    cfg.MetricsCollector,
		onCreate:   cfg.OnCreate,
	}

	f.mu.Lock()
	added := f.seedLocked(seeds)
	f.mu.Unlock()

	f.logger.Info("flyweight factory created", "seeds", len(seeds), "flyweights", added)
	return f
}

// GetFlyweight returns the flyweight for s, creating it when no flyweight
// with the same key exists yet.
//
// Before returning it writes either a "creating" or a "reusing" line to the
// configured output. It never fails.
func (f *Factory) GetFlyweight(s SharedState) Flyweight {
	start := time.Now()
	key := s.Key()

	f.mu.Lock()
	fw, found := f.flyweights[key]
	if !found {
		f.narrateLocked(msgCreating)
		fw = newFlyweight(s, f.out, f.clock.Now())
		f.flyweights[key] = fw
	} else {
		f.narrateLocked(msgReusing)
	}
	f.mu.Unlock()

	f.metrics.RecordLookup(time.Since(start).Nanoseconds(), found)
	if found {
		f.reused.Add(1)
		f.logger.Debug("flyweight reused", "key", key.String())
		return fw
	}

	f.created.Add(1)
	f.metrics.RecordCreate()
	f.logger.Debug("flyweight created", "key", key.String())
	f.notifyCreate(key)
	return fw
}

// Lookup returns the flyweight stored for s without creating one and
// without writing narration.
func (f *Factory) Lookup(s SharedState) (Flyweight, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fw, ok := f.flyweights[s.Key()]
	return fw, ok
}

// Seed inserts flyweights for the given states, keeping any flyweight that
// already exists under the same key. It returns how many were added.
//
// Seed on a closed factory adds nothing.
func (f *Factory) Seed(states ...SharedState) int {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		f.logger.Warn("seed rejected", "error", NewErrFactoryClosed("Seed"))
		return 0
	}
	added := f.seedLocked(states)
	f.mu.Unlock()

	if added > 0 {
		f.logger.Info("flyweights seeded", "added", added, "offered", len(states))
	}
	return added
}

// Len returns the number of distinct flyweights.
func (f *Factory) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.flyweights)
}

// Keys returns a snapshot of the stored keys ordered by their display form.
func (f *Factory) Keys() []Key {
	f.mu.Lock()
	keys := make([]Key, 0, len(f.flyweights))
	for k := range f.flyweights {
		keys = append(keys, k)
	}
	f.mu.Unlock()

	sort.Slice(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})
	return keys
}

// ListFlyweights writes the number of flyweights followed by one display key
// per line to the configured output.
func (f *Factory) ListFlyweights() {
	keys := f.Keys()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.narrateLocked(fmt.Sprintf("\nFlyweightFactory: I have %d flyweights:", len(keys)))
	for _, k := range keys {
		f.narrateLocked(k.String())
	}
}

// Stats returns factory statistics.
func (f *Factory) Stats() FactoryStats {
	return FactoryStats{
		Created: f.created.Load(),
		Reused:  f.reused.Load(),
		Seeded:  f.seeded.Load(),
		Size:    f.Len(),
	}
}

// Output returns the writer narration goes to. Writes through it are
// serialized with the factory's own narration.
func (f *Factory) Output() io.Writer {
	return f.out
}

// Close marks the factory closed. Existing flyweights stay reachable through
// GetFlyweight; Seed stops accepting new entries.
//
// Close is safe to call multiple times.
func (f *Factory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	f.logger.Info("flyweight factory closed", "flyweights", len(f.flyweights))
	return nil
}

// seedLocked inserts states first-writer-wins. Caller holds f.mu.
func (f *Factory) seedLocked(states []SharedState) int {
	added := 0
	for _, s := range states {
		key := s.Key()
		if _, exists := f.flyweights[key]; exists {
			f.logger.Debug("duplicate seed dropped", "key", key.String())
			continue
		}
		f.flyweights[key] = newFlyweight(s, f.out, f.clock.Now())
		added++
	}
	if added > 0 {
		f.seeded.Add(uint64(added)) // #nosec G115 - added is a non-negative count
		f.metrics.RecordSeed(added)
	}
	return added
}

func (f *Factory) narrateLocked(line string) {
	_, _ = fmt.Fprintln(f.out, line)
}

// notifyCreate runs the OnCreate callback, turning a panic into a logged error.
func (f *Factory) notifyCreate(key Key) {
	if f.onCreate == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("OnCreate callback panicked", "key", key.String(),
				"error", NewErrPanicRecovered("OnCreate", r))
		}
	}()
	f.onCreate(key)
}

func keyLess(a, b Key) bool {
	if as, bs := a.String(), b.String(); as != bs {
		return as < bs
	}
	if a.StereotypeName != b.StereotypeName {
		return a.StereotypeName < b.StereotypeName
	}
	if a.Thickness != b.Thickness {
		return a.Thickness < b.Thickness
	}
	return a.Material < b.Material
}
