package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

const testWorkDir = "/work/app"

func envMap(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func resolveWith(t *testing.T, fs afero.Fs, env map[string]string, flags Overrides) *ResolvedConfig {
	t.Helper()
	if err := fs.MkdirAll(testWorkDir, 0755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Resolve(Options{
		Fs:        fs,
		HomeDir:   testHome,
		WorkDir:   testWorkDir,
		LookupEnv: envMap(env),
		Flags:     flags,
	})
	require.NoError(t, err)
	return cfg
}

func TestResolve_Defaults(t *testing.T) {
	cfg := resolveWith(t, afero.NewMemMapFs(), nil, Overrides{})

	assert.Empty(t, cfg.Token)
	assert.Equal(t, clickup.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Workspace)
	assert.Empty(t, cfg.ProjectFile)
}

func TestResolve_Precedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, GlobalConfigPath(testHome), `
[api]
token = "pk_global"
base_url = "http://global/api/v2"
timeout = "10s"

[log]
level = "info"

[defaults]
workspace = "1"
`)

	t.Run("global over defaults", func(t *testing.T) {
		cfg := resolveWith(t, fs, nil, Overrides{})
		assert.Equal(t, "pk_global", cfg.Token)
		assert.Equal(t, "http://global/api/v2", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "1", cfg.Workspace)
	})

	writeFile(t, fs, testWorkDir+"/"+ConfigFileName, `
workspace = "2"
list = "22"

[api]
base_url = "http://project/api/v2"
`)

	t.Run("project over global", func(t *testing.T) {
		cfg := resolveWith(t, fs, nil, Overrides{})
		assert.Equal(t, "http://project/api/v2", cfg.BaseURL)
		assert.Equal(t, "2", cfg.Workspace)
		assert.Equal(t, "22", cfg.List)
		assert.Equal(t, testWorkDir+"/"+ConfigFileName, cfg.ProjectFile)
	})

	env := map[string]string{
		EnvToken:    "pk_env",
		EnvBaseURL:  "http://env/api/v2",
		EnvTimeout:  "5s",
		EnvLogLevel: "DEBUG",
	}

	t.Run("env over project", func(t *testing.T) {
		cfg := resolveWith(t, fs, env, Overrides{})
		assert.Equal(t, "pk_env", cfg.Token)
		assert.Equal(t, "http://env/api/v2", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("flags over env", func(t *testing.T) {
		cfg := resolveWith(t, fs, env, Overrides{Token: "pk_flag", BaseURL: "http://flag/api/v2", LogLevel: "trace"})
		assert.Equal(t, "pk_flag", cfg.Token)
		assert.Equal(t, "http://flag/api/v2", cfg.BaseURL)
		assert.Equal(t, "trace", cfg.LogLevel)
	})
}

func TestResolve_DotEnv(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, testWorkDir+"/.env", "CLICKUP_API_TOKEN=pk_dotenv\nCLICKUP_TIMEOUT=12s\n")

	cfg := resolveWith(t, fs, nil, Overrides{})
	assert.Equal(t, "pk_dotenv", cfg.Token)
	assert.Equal(t, 12*time.Second, cfg.Timeout)

	cfg = resolveWith(t, fs, map[string]string{EnvToken: "pk_process"}, Overrides{})
	assert.Equal(t, "pk_process", cfg.Token, "process environment wins over .env")
}

func TestResolve_InvalidEnvTimeout(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testWorkDir, 0755))

	_, err := Resolve(Options{
		Fs:        fs,
		HomeDir:   testHome,
		WorkDir:   testWorkDir,
		LookupEnv: envMap(map[string]string{EnvTimeout: "forever"}),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvTimeout)
}

func TestValidate(t *testing.T) {
	valid := ResolvedConfig{
		Token:    "pk_x",
		BaseURL:  clickup.DefaultBaseURL,
		Timeout:  DefaultTimeout,
		LogLevel: "warn",
	}
	assert.NoError(t, valid.Validate())

	noToken := valid
	noToken.Token = "  "
	assert.True(t, errors.Is(noToken.Validate(), ErrNoToken))

	badURL := valid
	badURL.BaseURL = "not a url"
	assert.Error(t, badURL.Validate())

	badLevel := valid
	badLevel.LogLevel = "loud"
	assert.Error(t, badLevel.Validate())
}
