package service

import (
	"os"
	"strings"
	"sync"

	"sitegate/internal/platform/logger"
)

// wellKnown are the path names that never participate in culture negotiation
var wellKnown = []string{
	"error",
	"robots",
	"robots.txt",
	"sitemap",
	"sitemap.xml",
	"favicon",
	"favicon.ico",
}

// exclusionSet answers "does this first path segment opt out of negotiation".
// The set is assembled once on first use; the asset-root listing is a one-time
// read cached for the process lifetime
type exclusionSet struct {
	once sync.Once
	cfg  Config
	log  logger.Logger
	set  map[string]struct{}
}

func newExclusionSet(cfg Config, log logger.Logger) *exclusionSet {
	return &exclusionSet{cfg: cfg, log: log}
}

func (e *exclusionSet) has(segment string) bool {
	e.once.Do(e.build)
	_, ok := e.set[strings.ToLower(segment)]
	return ok
}

func (e *exclusionSet) build() {
	e.set = make(map[string]struct{}, len(wellKnown))
	for _, n := range wellKnown {
		e.set[n] = struct{}{}
	}

	if e.cfg.ExcludePathsEnabled {
		for _, p := range e.cfg.ExcludePaths {
			p = strings.ToLower(strings.Trim(strings.TrimSpace(p), "/"))
			if p != "" {
				e.set[p] = struct{}{}
			}
		}
	}

	if e.cfg.AssetRoot == "" {
		return
	}
	entries, err := os.ReadDir(e.cfg.AssetRoot)
	if err != nil {
		e.log.Warn().Err(err).Str("asset_root", e.cfg.AssetRoot).
			Msg("asset root listing unavailable, exclusion set is config-only")
		return
	}
	for _, ent := range entries {
		e.set[strings.ToLower(ent.Name())] = struct{}{}
	}
}
