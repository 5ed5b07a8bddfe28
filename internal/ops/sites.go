package ops

import (
	"github.com/knagasaki/spectra/internal/config"
)

// SitesOutput contains the preset site table.
type SitesOutput struct {
	Sites []config.Site `json:"sites"`
}

// Sites returns the preset survey locations from configuration.
func Sites(cfg *config.Config) *SitesOutput {
	sites := cfg.Sites
	if sites == nil {
		sites = []config.Site{}
	}
	return &SitesOutput{Sites: sites}
}
