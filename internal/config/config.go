// Package config loads addie settings from an optional YAML file and
// ADDIE_* environment variables. Environment values win over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/addie/internal/db"
	"github.com/alexanderramin/addie/internal/domain"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Format.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

var validFormats = map[string]bool{FormatAuto: true, FormatText: true, FormatJSON: true}

// Config holds all runtime settings.
type Config struct {
	DBPath      string             `yaml:"db"`
	CourseLevel domain.CourseLevel `yaml:"course_level"`
	LogRuns     bool               `yaml:"log_runs"`
	Format      string             `yaml:"format"`
}

// DefaultConfig stores reports under ~/.addie and renders for the terminal.
func DefaultConfig() Config {
	return Config{
		DBPath:      defaultDBPath(),
		CourseLevel: domain.LevelIntermediate,
		LogRuns:     false,
		Format:      FormatAuto,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".addie", "reports.db")
	}
	return filepath.Join(home, ".addie", "reports.db")
}

// LoadConfig applies ADDIE_CONFIG (a YAML file) and then the remaining
// ADDIE_* variables on top of the defaults. Unrecognized values are ignored.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("ADDIE_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv("ADDIE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ADDIE_COURSE_LEVEL"); domain.ValidCourseLevels[v] {
		cfg.CourseLevel = domain.CourseLevel(v)
	}
	if v := os.Getenv("ADDIE_LOG_RUNS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogRuns = b
		}
	}
	if v := os.Getenv("ADDIE_FORMAT"); validFormats[v] {
		cfg.Format = v
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if file.DBPath != "" {
		c.DBPath = file.DBPath
	}
	if file.CourseLevel != "" {
		if !domain.ValidCourseLevels[string(file.CourseLevel)] {
			return fmt.Errorf("config file %s: invalid course_level %q", path, file.CourseLevel)
		}
		c.CourseLevel = file.CourseLevel
	}
	if file.LogRuns {
		c.LogRuns = true
	}
	if file.Format != "" {
		if !validFormats[file.Format] {
			return fmt.Errorf("config file %s: invalid format %q", path, file.Format)
		}
		c.Format = file.Format
	}
	return nil
}

// InMemory reports whether reports are kept only for the life of the process.
func (c Config) InMemory() bool {
	return c.DBPath == db.MemoryPath
}
