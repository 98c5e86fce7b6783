package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/healthgain/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the workspace marker and configuration file name.
const ConfigFile = "healthgain.yaml"

// LoadConfig loads healthgain.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.HealthGain.Defaults.Locale != "" {
		loc, err := domain.ParseLocale(y.HealthGain.Defaults.Locale)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field defaults.locale: %w", err),
			}
		}
		cfg.Defaults.Locale = loc
	}
	if y.HealthGain.Paths.ExportsDir != "" {
		cfg.Paths.ExportsDir = y.HealthGain.Paths.ExportsDir
	}
	if y.HealthGain.Exports.Index != nil {
		cfg.Exports.Index = *y.HealthGain.Exports.Index
	}
	if y.HealthGain.Server.Addr != "" {
		cfg.Server.Addr = y.HealthGain.Server.Addr
	}

	return cfg, nil
}

type yamlConfig struct {
	HealthGain struct {
		Defaults struct {
			Locale string `yaml:"locale"`
		} `yaml:"defaults"`

		Paths struct {
			ExportsDir string `yaml:"exports_dir"`
		} `yaml:"paths"`

		Exports struct {
			Index *bool `yaml:"index"`
		} `yaml:"exports"`

		Server struct {
			Addr string `yaml:"addr"`
		} `yaml:"server"`
	} `yaml:"healthgain"`
}
