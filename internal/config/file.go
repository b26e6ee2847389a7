package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileYAML is the canonical config filename.
	DefaultConfigFileYAML = ".finsight.yaml"
	// DefaultConfigFileYML is a compatible alternate config filename.
	DefaultConfigFileYML = ".finsight.yml"
)

// FileConfig represents values loaded from a .finsight.yaml file.
// Unset fields leave the corresponding default untouched.
type FileConfig struct {
	AnalysisDelay  string   `yaml:"analysis_delay"`
	LogFile        string   `yaml:"log_file"`
	LogLevel       string   `yaml:"log_level"`
	RatiosFile     string   `yaml:"ratios_file"`
	ChartWidth     *int     `yaml:"chart_width"`
	ChartHeight    *int     `yaml:"chart_height"`
	ChartThreshold *float64 `yaml:"chart_threshold"`
	WordWrap       *int     `yaml:"word_wrap"`
}

// Normalize trims string fields.
func (fc *FileConfig) Normalize() {
	if fc == nil {
		return
	}
	fc.AnalysisDelay = strings.TrimSpace(fc.AnalysisDelay)
	fc.LogFile = strings.TrimSpace(fc.LogFile)
	fc.LogLevel = strings.TrimSpace(fc.LogLevel)
	fc.RatiosFile = strings.TrimSpace(fc.RatiosFile)
}

// Apply overlays the file values on cfg.
func (fc *FileConfig) Apply(cfg Config) (Config, error) {
	if fc == nil {
		return cfg, nil
	}
	if fc.AnalysisDelay != "" {
		d, err := time.ParseDuration(fc.AnalysisDelay)
		if err != nil {
			return cfg, &ConfigError{Field: "AnalysisDelay", Message: fmt.Sprintf("invalid duration %q", fc.AnalysisDelay)}
		}
		cfg.AnalysisDelay = d
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.RatiosFile != "" {
		cfg.RatiosFile = fc.RatiosFile
	}
	if fc.ChartWidth != nil {
		cfg.ChartWidth = *fc.ChartWidth
	}
	if fc.ChartHeight != nil {
		cfg.ChartHeight = *fc.ChartHeight
	}
	if fc.ChartThreshold != nil {
		cfg.ChartThreshold = *fc.ChartThreshold
	}
	if fc.WordWrap != nil {
		cfg.WordWrap = *fc.WordWrap
	}
	return cfg, nil
}

// AutoLoadFile discovers and loads the first available config file.
func AutoLoadFile() (*FileConfig, string, error) {
	candidates := []string{
		DefaultConfigFileYAML,
		DefaultConfigFileYML,
	}

	if homeDir, err := os.UserHomeDir(); err == nil && strings.TrimSpace(homeDir) != "" {
		candidates = append(candidates,
			filepath.Join(homeDir, DefaultConfigFileYAML),
			filepath.Join(homeDir, DefaultConfigFileYML),
		)
	}

	return LoadFirstExistingFile(candidates)
}

// LoadFirstExistingFile loads the first config file that exists in paths.
func LoadFirstExistingFile(paths []string) (*FileConfig, string, error) {
	for _, path := range paths {
		candidate := strings.TrimSpace(path)
		if candidate == "" {
			continue
		}

		info, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, "", fmt.Errorf("failed to access config file %q: %w", candidate, err)
		}
		if info.IsDir() {
			return nil, "", fmt.Errorf("config path %q is a directory, expected a file", candidate)
		}

		cfg, err := LoadFile(candidate)
		if err != nil {
			return nil, "", err
		}
		return cfg, candidate, nil
	}

	return nil, "", nil
}

// LoadFile loads config values from a specific YAML file path.
func LoadFile(path string) (*FileConfig, error) {
	filename := strings.TrimSpace(path)
	if filename == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", filename, err)
	}

	cfg := &FileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", filename, err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Load resolves the effective configuration: defaults, then the file at path
// (or the first discovered file when path is empty), then validation.
func Load(path string) (Config, string, error) {
	var (
		fc     *FileConfig
		source string
		err    error
	)
	if strings.TrimSpace(path) != "" {
		fc, err = LoadFile(path)
		source = path
	} else {
		fc, source, err = AutoLoadFile()
	}
	if err != nil {
		return Config{}, "", err
	}

	cfg, err := fc.Apply(DefaultConfig())
	if err != nil {
		return Config{}, source, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, source, err
	}
	return cfg, source, nil
}
