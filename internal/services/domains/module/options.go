package module

import (
	"time"

	"sitegate/internal/platform/config"
)

// Options holds configuration settings for the domains module
type Options struct {
	TTL time.Duration
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	ef := cfg.Prefix("CORE_EDGE_")
	return Options{
		TTL: ef.MayDuration("DOMAIN_TTL", 60*time.Second),
	}
}
