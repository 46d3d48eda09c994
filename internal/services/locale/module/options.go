package module

import "sitegate/internal/platform/config"

// Options holds configuration settings for the locale module
type Options struct {
	RememberLanguage    bool
	BackofficeEnabled   bool
	BackofficeHosts     []string
	ExcludePathsEnabled bool
	ExcludePaths        []string
	AssetRoot           string
	DefaultCulture      string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	lf := cfg.Prefix("CORE_EDGE_")
	return Options{
		RememberLanguage:    lf.MayBool("REMEMBER_LANGUAGE", true),
		BackofficeEnabled:   lf.MayBool("BACKOFFICE_ENABLED", false),
		BackofficeHosts:     lf.MayCSV("BACKOFFICE_HOSTS", nil),
		ExcludePathsEnabled: lf.MayBool("EXCLUDE_PATHS_ENABLED", false),
		ExcludePaths:        lf.MayCSV("EXCLUDE_PATHS", nil),
		AssetRoot:           lf.MayString("ASSET_ROOT", ""),
		DefaultCulture:      lf.MayString("DEFAULT_CULTURE", ""),
	}
}
