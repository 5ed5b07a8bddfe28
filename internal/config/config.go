package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Backend selects the row-log implementation backing the record store.
type Backend string

const (
	BackendCSV    Backend = "csv"
	BackendSQLite Backend = "sqlite"
)

// Site is a preset survey location that can be referenced by name when
// recording, so coordinates do not have to be retyped in the field.
type Site struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Thresholds control vector classification. They are policy, not algorithm:
// tuning them must never require touching the analyzer.
type Thresholds struct {
	// NegligibleMagnitude is the magnitude at or below which a displacement
	// counts as no meaningful Hard→Soft shift.
	NegligibleMagnitude float64 `json:"negligible_magnitude"`

	// AxisTolerance treats per-axis deltas with absolute value at or below
	// this as zero when deciding quadrant dominance.
	AxisTolerance float64 `json:"axis_tolerance"`
}

// Config holds application configuration.
type Config struct {
	// ScoreMin and ScoreMax bound all four observation scores (inclusive).
	// The field sliders in the original survey ran -50..+50.
	ScoreMin float64 `json:"score_min"`
	ScoreMax float64 `json:"score_max"`

	// Thresholds for qualitative vector classification.
	Thresholds Thresholds `json:"thresholds"`

	// Backend selects the persistence backend: "csv" (default) or "sqlite".
	Backend Backend `json:"backend,omitempty"`

	// Sites is the preset location table, merged across config layers.
	Sites []Site `json:"sites,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are ignored with a warning.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ScoreMin: -50,
		ScoreMax: 50,
		Thresholds: Thresholds{
			NegligibleMagnitude: 5,
			AxisTolerance:       0,
		},
		Backend: BackendCSV,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.spectra.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	merged := Merge(DefaultConfig(), cfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Validate rejects configurations that cannot bound scores.
func (c *Config) Validate() error {
	if c.ScoreMin >= c.ScoreMax {
		return errors.New("config: score_min must be less than score_max")
	}
	if c.Thresholds.NegligibleMagnitude < 0 {
		return errors.New("config: negligible_magnitude must not be negative")
	}
	if c.Thresholds.AxisTolerance < 0 {
		return errors.New("config: axis_tolerance must not be negative")
	}
	if c.Backend != BackendCSV && c.Backend != BackendSQLite {
		return errors.New("config: backend must be one of: csv, sqlite")
	}
	return nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; site lists are merged with
// overlay entries replacing base entries of the same name.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Score bounds: overlay wins only when it actually sets a range
	// (zero-valued min and max means "not configured").
	result.ScoreMin = base.ScoreMin
	result.ScoreMax = base.ScoreMax
	if overlay.ScoreMin != 0 || overlay.ScoreMax != 0 {
		result.ScoreMin = overlay.ScoreMin
		result.ScoreMax = overlay.ScoreMax
	}

	result.Thresholds = base.Thresholds
	if overlay.Thresholds.NegligibleMagnitude != 0 {
		result.Thresholds.NegligibleMagnitude = overlay.Thresholds.NegligibleMagnitude
	}
	if overlay.Thresholds.AxisTolerance != 0 {
		result.Thresholds.AxisTolerance = overlay.Thresholds.AxisTolerance
	}

	result.Backend = base.Backend
	if overlay.Backend != "" {
		result.Backend = overlay.Backend
	}

	result.Sites = mergeSites(base.Sites, overlay.Sites)
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// FindSite looks up a preset site by name (case-insensitive, trimmed).
func (c *Config) FindSite(name string) (Site, bool) {
	key := normalizeKey(name)
	for _, s := range c.Sites {
		if normalizeKey(s.Name) == key {
			return s, true
		}
	}
	return Site{}, false
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// mergeSites combines site lists; overlay entries replace base entries with
// the same normalized name, otherwise append in order.
func mergeSites(base, overlay []Site) []Site {
	if len(base) == 0 && len(overlay) == 0 {
		return nil
	}

	result := make([]Site, 0, len(base)+len(overlay))
	index := make(map[string]int)
	for _, s := range base {
		index[normalizeKey(s.Name)] = len(result)
		result = append(result, s)
	}
	for _, s := range overlay {
		if i, ok := index[normalizeKey(s.Name)]; ok {
			result[i] = s
			continue
		}
		index[normalizeKey(s.Name)] = len(result)
		result = append(result, s)
	}
	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
