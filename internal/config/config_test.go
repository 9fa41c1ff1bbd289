package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spanforest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Output", cfg.Output, OutputTable},
		{"LogLevel", cfg.LogLevel, "info"},
		{"Watch", cfg.Watch, false},
		{"Debounce", cfg.Debounce, 200 * time.Millisecond},
		{"Root", cfg.Root, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_GlobalViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(KeyOutput, OutputTOML)
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, OutputTOML, cfg.Output)
}

func TestInit_ConfigFile(t *testing.T) {
	path := writeConfig(t, "output: toml\nlog_level: debug\nwatch: true\ndebounce: 1s\nroot: A\n")

	v := viper.New()
	require.NoError(t, Init(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Output:   OutputTOML,
		LogLevel: "debug",
		Watch:    true,
		Debounce: time.Second,
		Root:     "A",
	}, cfg)
}

func TestInit_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "output: table\nroot: A\n")

	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"output", "SPANFOREST_OUTPUT", "toml", func(c Config) any { return c.Output }, OutputTOML},
		{"log_level", "SPANFOREST_LOG_LEVEL", "warn", func(c Config) any { return c.LogLevel }, "warn"},
		{"watch", "SPANFOREST_WATCH", "true", func(c Config) any { return c.Watch }, true},
		{"debounce", "SPANFOREST_DEBOUNCE", "750ms", func(c Config) any { return c.Debounce }, 750 * time.Millisecond},
		{"root", "SPANFOREST_ROOT", "Z", func(c Config) any { return c.Root }, "Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)

			v := viper.New()
			require.NoError(t, Init(v, path))
			cfg, err := Load(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.field(cfg))
		})
	}
}

func TestInit_MalformedFile(t *testing.T) {
	path := writeConfig(t, "output: [unclosed\n")

	err := Init(viper.New(), path)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
		want error
	}{
		{"unknown output", KeyOutput, "json", ErrInvalidOutput},
		{"zero debounce", KeyDebounce, "0s", ErrInvalidDebounce},
		{"negative debounce", KeyDebounce, "-1s", ErrInvalidDebounce},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
