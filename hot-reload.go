// hot-reload.go: seed catalog watching with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package flyweight

import (
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotSeeds watches a seed catalog file and feeds new hull stereotypes into a
// running Factory. Reloads only ever add flyweights: existing entries are
// kept (first writer wins) and entries removed from the file stay in the
// factory.
type HotSeeds struct {
	factory *Factory
	watcher *argus.Watcher
	logger  Logger
	path    string

	mu   sync.RWMutex
	last ReloadResult

	// OnReload is called after each catalog reload.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(result ReloadResult)
}

// HotSeedsOptions configures seed catalog watching.
type HotSeedsOptions struct {
	// ConfigPath is the path to the catalog file to watch.
	// Supports the formats Argus understands; JSON is recommended.
	ConfigPath string

	// PollInterval is how often to check for catalog changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after each catalog reload.
	OnReload func(result ReloadResult)

	// Logger for reload operations.
	// If nil, NoOpLogger is used.
	Logger Logger
}

// ReloadResult summarizes one catalog reload.
type ReloadResult struct {
	// Offered is the number of valid hull entries in the catalog
	Offered int

	// Added is the number of flyweights the factory did not have yet
	Added int

	// Rejected holds one error per invalid entry
	Rejected []error

	// Err is set when the catalog as a whole could not be used
	Err error
}

// NewHotSeeds creates a catalog watcher for f. Call Start to begin watching.
//
// Example catalog (JSON):
//
//	{
//	  "hulls": [
//	    {"stereotype": "Ice Breaker", "thickness": "30cm", "material": "Hardened Steel"},
//	    {"stereotype": "Galleon", "thickness": "16cm", "material": "Black Oak"}
//	  ]
//	}
//
// Entries without a stereotype are rejected; thickness and material may be empty.
func NewHotSeeds(f *Factory, opts HotSeedsOptions) (*HotSeeds, error) {
	if opts.ConfigPath == "" {
		return nil, NewErrEmptyConfigPath("HotSeeds")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hs := &HotSeeds{
		factory:  f,
		logger:   opts.Logger,
		path:     opts.ConfigPath,
		OnReload: opts.OnReload,
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hs.handleConfigChange, argusConfig)
	if err != nil {
		return nil, NewErrReloadFailed(opts.ConfigPath, err)
	}
	hs.watcher = watcher

	return hs, nil
}

// Start begins watching the catalog file.
func (hs *HotSeeds) Start() error {
	if hs.watcher.IsRunning() {
		return nil
	}
	return hs.watcher.Start()
}

// Stop stops watching the catalog file.
func (hs *HotSeeds) Stop() error {
	return hs.watcher.Stop()
}

// LastReload returns the result of the most recent reload.
func (hs *HotSeeds) LastReload() ReloadResult {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	return hs.last
}

// handleConfigChange is called by Argus when the catalog changes.
func (hs *HotSeeds) handleConfigChange(configData map[string]interface{}) {
	result := hs.apply(configData)

	hs.mu.Lock()
	hs.last = result
	hs.mu.Unlock()

	if hs.OnReload != nil {
		hs.OnReload(result)
	}
}

func (hs *HotSeeds) apply(configData map[string]interface{}) ReloadResult {
	if hs.factory == nil {
		err := NewErrInternal("reload", nil)
		hs.logger.Error("seed catalog has no factory", "path", hs.path, "error", err)
		return ReloadResult{Err: err}
	}

	states, rejected, err := parseSeedCatalog(configData)
	if err != nil {
		err = NewErrReloadFailed(hs.path, err)
		hs.logger.Error("seed catalog reload failed", "path", hs.path, "error", err)
		return ReloadResult{Err: err}
	}

	for _, r := range rejected {
		hs.logger.Warn("seed entry rejected", "path", hs.path, "error", r)
	}

	added := hs.factory.Seed(states...)
	hs.logger.Info("seed catalog reloaded", "path", hs.path, "offered", len(states), "added", added)

	return ReloadResult{
		Offered:  len(states),
		Added:    added,
		Rejected: rejected,
	}
}

// parseSeedCatalog extracts hull entries from Argus config data.
// The hull list may sit under "hulls" at the top level or inside a
// "flyweight" section.
func parseSeedCatalog(data map[string]interface{}) ([]SharedState, []error, error) {
	raw, ok := data["hulls"]
	if !ok {
		section, isMap := data["flyweight"].(map[string]interface{})
		if !isMap {
			return nil, nil, NewErrInvalidSeedCatalog("missing hulls list")
		}
		raw, ok = section["hulls"]
		if !ok {
			return nil, nil, NewErrInvalidSeedCatalog("missing hulls list")
		}
	}

	entries, ok := raw.([]interface{})
	if !ok {
		return nil, nil, NewErrInvalidSeedCatalog("hulls must be a list")
	}

	states := make([]SharedState, 0, len(entries))
	var rejected []error
	for i, e := range entries {
		s, err := parseSeedEntry(i, e)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		states = append(states, s)
	}
	return states, rejected, nil
}

func parseSeedEntry(index int, entry interface{}) (SharedState, error) {
	m, ok := entry.(map[string]interface{})
	if !ok {
		return SharedState{}, NewErrInvalidSeed(index, "entry must be an object")
	}

	stereotype, ok := parseString(m["stereotype"])
	if !ok || stereotype == "" {
		return SharedState{}, NewErrInvalidSeed(index, "stereotype is required")
	}

	thickness, ok := parseString(m["thickness"])
	if !ok {
		return SharedState{}, NewErrInvalidSeed(index, "thickness must be a string")
	}

	material, ok := parseString(m["material"])
	if !ok {
		return SharedState{}, NewErrInvalidSeed(index, "material must be a string")
	}

	return NewSharedState(stereotype, thickness, material), nil
}

// parseString accepts a string or a missing value (empty string).
func parseString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	}
	return "", false
}
