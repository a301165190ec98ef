// Package config loads the tunables that parameterize map construction and
// pathfinding: the cliff/overlord height threshold, the choke search cap,
// the reaper jump length, and router/sink settings for maptool/logging.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default tunables, mirroring the constants named in spec.md.
const (
	DefaultDifference  = 16
	DefaultChokeMax     = 10
	DefaultNavCellSize  = 1.0
	DefaultReaperJumpLen = 2
)

// Analyzer captures every numeric knob the builder and pathfinder read.
// The zero value is not meant to be used directly; call Default() or Load().
type Analyzer struct {
	// Difference is the elevation threshold distinguishing true cliff
	// edges from mere terrain variation (spec.md glossary DIFFERENCE).
	Difference int `yaml:"difference"`

	// ChokeMax bounds how many walkable cells a choke-solving ray may
	// cross before the opposing border cell no longer counts as a choke.
	ChokeMax int `yaml:"chokeMax"`

	// ReaperJumpLength is the distance, in cells from the origin, of a
	// reaper jump's landing cell. It is loaded, saved and normalized, but
	// the builder does not read it: climb.Classify always looks for the
	// landing cell two steps from the origin.
	ReaperJumpLength int `yaml:"reaperJumpLength"`

	// Logging configures the telemetry router used during construction
	// and query operations.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig selects which sinks the logging router enables and at what
// severity, mirroring the shape of the teacher's logging.Config.
type LoggingConfig struct {
	EnabledSinks []string `yaml:"enabledSinks"`
	MinSeverity  string   `yaml:"minSeverity"`
	JSONPath     string   `yaml:"jsonPath"`
	ZapLogPath   string   `yaml:"zapLogPath"`
}

// Default returns the baseline tunables used when no file or override is
// supplied, matching the values spec.md and original_source/ pin.
func Default() Analyzer {
	return Analyzer{
		Difference:       DefaultDifference,
		ChokeMax:         DefaultChokeMax,
		ReaperJumpLength: DefaultReaperJumpLen,
		Logging: LoggingConfig{
			EnabledSinks: []string{"console"},
			MinSeverity:  "info",
		},
	}
}

// Load reads tunables with priority: defaults < file at path (if non-empty
// and present) < programmatic overrides. It mirrors the load ordering used
// by avatar29A-midgard-ro's internal/config package, trading its OS-specific
// search paths (not applicable to a library) for an explicit path argument.
func Load(path string, overrides ...func(*Analyzer)) (Analyzer, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		if _, err := os.Stat(path); err == nil {
			if err := loadFromFile(&cfg, path); err != nil {
				return Analyzer{}, err
			}
		}
	}

	for _, override := range overrides {
		if override != nil {
			override(&cfg)
		}
	}

	return cfg.normalized(), nil
}

func loadFromFile(cfg *Analyzer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Save writes the tunables to path as YAML, for hosts that want to persist
// an operator's overrides.
func Save(cfg Analyzer, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (cfg Analyzer) normalized() Analyzer {
	normalized := cfg
	if normalized.Difference <= 0 {
		normalized.Difference = DefaultDifference
	}
	if normalized.ChokeMax <= 0 {
		normalized.ChokeMax = DefaultChokeMax
	}
	if normalized.ReaperJumpLength <= 0 {
		normalized.ReaperJumpLength = DefaultReaperJumpLen
	}
	if len(normalized.Logging.EnabledSinks) == 0 {
		normalized.Logging.EnabledSinks = []string{"console"}
	}
	if strings.TrimSpace(normalized.Logging.MinSeverity) == "" {
		normalized.Logging.MinSeverity = "info"
	}
	return normalized
}
