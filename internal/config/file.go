package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the keys accepted in config.toml. Pointer fields
// distinguish "absent" from a zero value so only present keys override.
type fileConfig struct {
	FFmpeg    *string `toml:"ffmpeg"`
	Language  *string `toml:"language"`
	Offset    *int    `toml:"offset"`
	Yes       *bool   `toml:"yes"`
	Verbose   *bool   `toml:"verbose"`
	KeepGoing *bool   `toml:"keep_going"`
	Color     *string `toml:"color"`
	LogFile   *string `toml:"log_file"`
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/submerge/config.toml (or the
// platform equivalent). Empty when no user config dir can be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "submerge", "config.toml")
}

// LoadFile applies the TOML file at path onto cfg. When path is empty the
// default location is tried and a missing file there is not an error; an
// explicitly named file must exist. Unknown keys are rejected.
func LoadFile(cfg *Config, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
		if path == "" {
			return nil
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var fc fileConfig
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	cfg.ConfigFile = path
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if fc.FFmpeg != nil {
		cfg.FFmpegBin = *fc.FFmpeg
	}
	if fc.Language != nil {
		cfg.Language = *fc.Language
		cfg.languageSet = true
	}
	if fc.Offset != nil {
		v := *fc.Offset
		cfg.Offset = &v
	}
	if fc.Yes != nil {
		cfg.Overwrite = *fc.Yes
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.KeepGoing != nil {
		cfg.KeepGoing = *fc.KeepGoing
	}
	if fc.Color != nil {
		cfg.ColorMode = ColorMode(*fc.Color)
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
}
