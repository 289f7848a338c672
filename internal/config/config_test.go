package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "ffmpeg", cfg.FFmpegBin)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.Nil(t, cfg.Offset)
	assert.Zero(t, cfg.StopAfter)
	assert.False(t, cfg.Overwrite)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.KeepGoing)
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/subs", "/media/subs"},
		{"single trailing slash", "/media/subs/", "/media/subs"},
		{"multiple trailing slashes", "/media/subs///", "/media/subs"},
		{"root path", "/", "/"},
		{"relative path", "videos", "videos"},
		{"relative with slash", "videos/", "videos"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestHasLanguageMetadata(t *testing.T) {
	tests := []struct {
		lang string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"eng", true},
		{" eng ", true},
		{"pt BR", true},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Language = tt.lang
		assert.Equal(t, tt.want, cfg.HasLanguageMetadata(), "language %q", tt.lang)
	}
}

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.SourceDir = "subs"
	cfg.TargetDir = "videos"
	cfg.languageSet = true
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty language is fine when given", func(c *Config) { c.Language = "" }, ""},
		{"missing source", func(c *Config) { c.SourceDir = "" }, "source-dir"},
		{"missing target", func(c *Config) { c.TargetDir = "" }, "target-dir"},
		{"missing language", func(c *Config) { c.languageSet = false }, "language"},
		{"bad color", func(c *Config) { c.ColorMode = "rainbow" }, "color mode"},
		{"negative stop", func(c *Config) { c.StopAfter = -1 }, "negative"},
		{"blank ffmpeg", func(c *Config) { c.FFmpegBin = "  " }, "ffmpeg"},
		{"check skips paths", func(c *Config) {
			c.CheckOnly = true
			c.SourceDir, c.TargetDir, c.languageSet = "", "", false
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func parseFlags(t *testing.T, args ...string) (*pflag.FlagSet, *FlagValues) {
	t.Helper()
	fs := pflag.NewFlagSet("submerge", pflag.ContinueOnError)
	v := BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs, v
}

func TestApplyFlags_AllFlags(t *testing.T) {
	fs, v := parseFlags(t,
		"-e", "3", "-l", "eng", "-o", "-3",
		"-s", "subs/", "-t", "videos/",
		"-v", "-y", "-n", "--keep-going",
		"--ffmpeg", "/opt/ffmpeg", "--color", "never", "--log", "run.log",
	)
	cfg := DefaultConfig()
	ApplyFlags(&cfg, fs, v)

	assert.Equal(t, 3, cfg.StopAfter)
	assert.Equal(t, "eng", cfg.Language)
	require.NotNil(t, cfg.Offset)
	assert.Equal(t, -3, *cfg.Offset)
	assert.Equal(t, "subs", cfg.SourceDir)
	assert.Equal(t, "videos", cfg.TargetDir)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Overwrite)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.KeepGoing)
	assert.Equal(t, "/opt/ffmpeg", cfg.FFmpegBin)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.Equal(t, "run.log", cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestApplyFlags_OffsetForms(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"short negative", []string{"-o", "-3"}, -3},
		{"long negative", []string{"--offset=-3"}, -3},
		{"long separate negative", []string{"--offset", "-12"}, -12},
		{"positive", []string{"-o", "5"}, 5},
		{"zero is still set", []string{"--offset", "0"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, v := parseFlags(t, tt.args...)
			cfg := DefaultConfig()
			ApplyFlags(&cfg, fs, v)
			require.NotNil(t, cfg.Offset)
			assert.Equal(t, tt.want, *cfg.Offset)
		})
	}
}

func TestApplyFlags_UnsetLeavesConfig(t *testing.T) {
	fs, v := parseFlags(t)
	cfg := DefaultConfig()
	cfg.Language = "ger"
	cfg.languageSet = true
	cfg.Overwrite = true

	ApplyFlags(&cfg, fs, v)

	assert.Nil(t, cfg.Offset)
	assert.Equal(t, "ger", cfg.Language)
	assert.True(t, cfg.Overwrite)
	assert.Zero(t, cfg.StopAfter)
}

func TestApplyFlags_LimitAlias(t *testing.T) {
	fs, v := parseFlags(t, "--limit", "2")
	cfg := DefaultConfig()
	ApplyFlags(&cfg, fs, v)
	assert.Equal(t, 2, cfg.StopAfter)
}

func TestApplyFlags_EmptyLanguageCountsAsSet(t *testing.T) {
	fs, v := parseFlags(t, "--language", "", "-s", "a", "-t", "b")
	cfg := DefaultConfig()
	ApplyFlags(&cfg, fs, v)
	assert.Empty(t, cfg.Language)
	assert.NoError(t, cfg.Validate())
}

func TestBindFlags_RejectsBadColor(t *testing.T) {
	fs := pflag.NewFlagSet("submerge", pflag.ContinueOnError)
	BindFlags(fs)
	assert.Error(t, fs.Parse([]string{"--color", "rainbow"}))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
ffmpeg = "/usr/local/bin/ffmpeg"
language = "jpn"
offset = 2
yes = true
keep_going = true
color = "always"
`)
	cfg := DefaultConfig()
	require.NoError(t, LoadFile(&cfg, path))

	assert.Equal(t, "/usr/local/bin/ffmpeg", cfg.FFmpegBin)
	assert.Equal(t, "jpn", cfg.Language)
	require.NotNil(t, cfg.Offset)
	assert.Equal(t, 2, *cfg.Offset)
	assert.True(t, cfg.Overwrite)
	assert.True(t, cfg.KeepGoing)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, ColorAlways, cfg.ColorMode)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.True(t, cfg.languageSet)
}

func TestLoadFile_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "language = \"jpn\"\noffset = 2\n")
	cfg := DefaultConfig()
	require.NoError(t, LoadFile(&cfg, path))

	fs, v := parseFlags(t, "-l", "eng")
	ApplyFlags(&cfg, fs, v)

	assert.Equal(t, "eng", cfg.Language)
	require.NotNil(t, cfg.Offset)
	assert.Equal(t, 2, *cfg.Offset)
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, "langauge = \"eng\"\n")
	cfg := DefaultConfig()
	assert.Error(t, LoadFile(&cfg, path))
}

func TestLoadFile_ExplicitMissing(t *testing.T) {
	cfg := DefaultConfig()
	err := LoadFile(&cfg, filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFile_DefaultMissingIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg := DefaultConfig()
	require.NoError(t, LoadFile(&cfg, ""))
	assert.Empty(t, cfg.ConfigFile)
}
