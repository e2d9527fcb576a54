package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a zero-value config fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_DefaultsOnly verifies that defaults alone form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "stock.db", cfg.Storage.DB.DSN)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.PasswordHashCost)
	assert.Equal(t, 2, cfg.App.SearchMinLength)
	assert.Equal(t, "stock.log", cfg.Logger.File)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that the first non-zero value of a
// field is kept and later sources only fill the gaps.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "first.db"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "second.db"}}, Logger: Logger{Level: "info"}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_DB_DRIVER", "mysql")
	t.Setenv("APP_SEARCH_MIN_LENGTH", "3")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, DriverMySQL, b.configs[0].Storage.DB.Driver)
	assert.Equal(t, 3, b.configs[0].App.SearchMinLength)
}

// TestWithEnv_SetsErrorOnBadInt verifies that a non-numeric value is reported.
func TestWithEnv_SetsErrorOnBadInt(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_PASSWORD_HASH_COST", "twelve")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that parse failures land in b.err.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingDefaultFileIsIgnored verifies that the absence of the
// default .env file is not an error.
func TestWithDotEnv_MissingDefaultFileIsIgnored(t *testing.T) {
	clearEnvVars(t)
	t.Chdir(t.TempDir())

	b := newConfigBuilder()
	b.withDotEnv()

	assert.NoError(t, b.err)
}

// TestWithDotEnv_MissingExplicitFileFails verifies that a path given by flag
// must exist.
func TestWithDotEnv_MissingExplicitFileFails(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		DotEnvPath: filepath.Join(t.TempDir(), "missing.env"),
	})
	b.withDotEnv()

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.Driver = DriverPostgres
	payload.Storage.DB.DSN = "postgres://localhost/stock"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, DriverPostgres, b.configs[1].Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/stock", b.configs[1].Storage.DB.DSN)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that the first non-empty JSONFilePath
// is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Logger.Level = "warn"
	second := StructuredJSONConfig{}
	second.Logger.Level = "error"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "warn", b.configs[3].Logger.Level)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies flags > env > .env > JSON > defaults.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()

	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "json.db"
	payload.Logger.Level = "warn"
	payload.Logger.File = "json.log"
	payload.App.SearchMinLength = 4
	jsonPath := writeTempJSONConfig(t, payload)

	dotEnv := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(dotEnv, []byte("LOG_LEVEL=error\nLOG_FILE=dotenv.log\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("LOG_LEVEL")
		_ = os.Unsetenv("LOG_FILE")
	})

	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")

	cfg, err := GetStructuredConfig([]string{
		"-c", jsonPath,
		"-env-file", dotEnv,
		"-log-file", "flag.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "flag.log", cfg.Logger.File)
	assert.Equal(t, "error", cfg.Logger.Level)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 4, cfg.App.SearchMinLength)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.PasswordHashCost)
}

// TestGetStructuredConfig_InvalidDriver verifies that validation runs on the
// merged result.
func TestGetStructuredConfig_InvalidDriver(t *testing.T) {
	clearEnvVars(t)
	t.Chdir(t.TempDir())

	cfg, err := GetStructuredConfig([]string{"-driver", "oracle"})
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
