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

func TestViperConfigGetString(t *testing.T) {
	v := viper.New()
	v.Set("name", "test")
	cfg := New(v)

	if got := cfg.GetString("name"); got != "test" {
		t.Errorf("GetString('name') = %q, want %q", got, "test")
	}
}

func TestViperConfigGetInt(t *testing.T) {
	v := viper.New()
	v.Set("port", 8080)
	cfg := New(v)

	if got := cfg.GetInt("port"); got != 8080 {
		t.Errorf("GetInt('port') = %d, want %d", got, 8080)
	}
}

func TestViperConfigGetBool(t *testing.T) {
	v := viper.New()
	v.Set("enabled", true)
	cfg := New(v)

	if got := cfg.GetBool("enabled"); !got {
		t.Error("GetBool('enabled') = false, want true")
	}
}

func TestViperConfigGetDuration(t *testing.T) {
	v := viper.New()
	v.Set("timeout", "5s")
	cfg := New(v)

	want := 5 * time.Second
	if got := cfg.GetDuration("timeout"); got != want {
		t.Errorf("GetDuration('timeout') = %v, want %v", got, want)
	}
}

func TestViperConfigIsSet(t *testing.T) {
	v := viper.New()
	v.Set("exists", true)
	cfg := New(v)

	if !cfg.IsSet("exists") {
		t.Error("IsSet('exists') = false, want true")
	}
	if cfg.IsSet("missing") {
		t.Error("IsSet('missing') = true, want false")
	}
}

func TestViperConfigSub(t *testing.T) {
	v := viper.New()
	v.Set("server.rate_limit.enabled", true)
	v.Set("server.rate_limit.requests", 30)
	cfg := New(v)

	sub := cfg.Sub("server.rate_limit")
	if sub == nil {
		t.Fatal("Sub('server.rate_limit') = nil")
	}
	if got := sub.GetBool("enabled"); !got {
		t.Error("sub.GetBool('enabled') = false, want true")
	}
	if got := sub.GetInt("requests"); got != 30 {
		t.Errorf("sub.GetInt('requests') = %d, want %d", got, 30)
	}
}

func TestViperConfigSubMissing(t *testing.T) {
	v := viper.New()
	cfg := New(v)

	sub := cfg.Sub("nonexistent")
	if sub == nil {
		t.Fatal("Sub('nonexistent') should return empty Config, not nil")
	}
	// Should return zero values without panic.
	if got := cfg.GetString("anything"); got != "" {
		t.Errorf("empty config GetString() = %q, want empty", got)
	}
	_ = sub
}

func TestViperConfigUnmarshal(t *testing.T) {
	v := viper.New()
	v.Set("host", "localhost")
	v.Set("port", 9090)
	cfg := New(v)

	var target struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	}
	if err := cfg.Unmarshal(&target); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if target.Host != "localhost" {
		t.Errorf("Host = %q, want %q", target.Host, "localhost")
	}
	if target.Port != 9090 {
		t.Errorf("Port = %d, want %d", target.Port, 9090)
	}
}

func TestNilViper(t *testing.T) {
	cfg := New(nil)
	// Should not panic and return zero values.
	if got := cfg.GetString("key"); got != "" {
		t.Errorf("nil viper GetString() = %q, want empty", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "en", cfg.GetString("catalog.locale"))
	assert.Equal(t, 6, cfg.GetInt("catalog.featured"))
	assert.Equal(t, 3, cfg.GetInt("catalog.related_limit"))
	assert.Equal(t, 5*time.Minute, cfg.GetDuration("cache.ttl"))
	assert.True(t, cfg.GetBool("server.rate_limit.enabled"))
	assert.False(t, cfg.GetBool("catalog.strict"))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apidex.yaml")
	data := []byte("server:\n  port: \"9090\"\ncatalog:\n  strict: true\n  locale: de\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.True(t, cfg.GetBool("catalog.strict"))
	assert.Equal(t, "de", cfg.GetString("catalog.locale"))
	// Untouched keys keep their defaults.
	assert.Equal(t, 6, cfg.GetInt("catalog.featured"))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APIDEX_CATALOG_FEATURED", "4")
	t.Setenv("APIDEX_SERVER_HOST", "127.0.0.1")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.GetInt("catalog.featured"))
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestNilConfigAddr(t *testing.T) {
	var cfg *Config
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.NotNil(t, cfg.Sub("server"))
}
