package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearSuiteEnv pins every variable the suite reads so the host environment
// cannot leak into a test
func clearSuiteEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BASE_URL", "E2E_OUTPUT_DIR", "E2E_TIMEOUT", "E2E_EXPECT_TIMEOUT",
		"E2E_NAVIGATION_TIMEOUT", "E2E_SUBMISSION_TIMEOUT", "E2E_BROWSERS",
		"E2E_HEADLESS", "E2E_SLOW_MO", "E2E_VIEWPORT_WIDTH", "E2E_VIEWPORT_HEIGHT",
		"E2E_TRACE", "E2E_SCREENSHOT", "E2E_TAGS", "E2E_FULLY_PARALLEL", "CI",
		"E2E_LOCAL_SITE", "E2E_TEMPLATES_DIR", "E2E_STATIC_DIR", "E2E_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadSuiteConfig_Defaults(t *testing.T) {
	clearSuiteEnv(t)

	cfg, err := LoadSuiteConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "reports/test-results", cfg.OutputDir)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 10*time.Second, cfg.ExpectTimeout)
	assert.Equal(t, 20*time.Second, cfg.SubmissionTimeout)
	assert.Equal(t, []string{BrowserChromium, BrowserFirefox, BrowserWebKit}, cfg.Browsers)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 1538, cfg.Viewport.Width)
	assert.Equal(t, 731, cfg.Viewport.Height)
	assert.Equal(t, ModeRetainOnFailure, cfg.Trace)
	assert.Equal(t, ModeOnlyOnFailure, cfg.Screenshot)
	assert.Empty(t, cfg.Tags)
	assert.True(t, cfg.FullyParallel)
	assert.False(t, cfg.LocalSite)
}

func TestLoadSuiteConfig_Environment(t *testing.T) {
	clearSuiteEnv(t)
	t.Setenv("BASE_URL", "http://localhost:9000/")
	t.Setenv("E2E_BROWSERS", " Chromium , webkit,")
	t.Setenv("E2E_TAGS", "@RegressionTest,smoke")
	t.Setenv("E2E_EXPECT_TIMEOUT", "2500ms")
	t.Setenv("E2E_HEADLESS", "false")

	cfg, err := LoadSuiteConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/", cfg.BaseURL)
	assert.Equal(t, []string{BrowserChromium, BrowserWebKit}, cfg.Browsers)
	assert.Equal(t, []string{"RegressionTest", "smoke"}, cfg.Tags)
	assert.Equal(t, 2500*time.Millisecond, cfg.ExpectTimeout)
	assert.False(t, cfg.Headless)
}

func TestLoadSuiteConfig_CIRunsSerially(t *testing.T) {
	clearSuiteEnv(t)
	t.Setenv("CI", "true")
	t.Setenv("E2E_FULLY_PARALLEL", "true")

	cfg, err := LoadSuiteConfig("")
	require.NoError(t, err)

	assert.True(t, cfg.CI)
	assert.False(t, cfg.FullyParallel)
}

func TestLoadSuiteConfig_YAMLFile(t *testing.T) {
	clearSuiteEnv(t)
	t.Setenv("E2E_TRACE", "on")

	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
baseURL: http://127.0.0.1:8080/
browsers: [firefox]
trace: "off"
headless: false
fullyParallel: false
viewport:
  width: 1280
  height: 720
`), 0o600))

	cfg, err := LoadSuiteConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080/", cfg.BaseURL)
	assert.Equal(t, []string{BrowserFirefox}, cfg.Browsers)
	assert.Equal(t, 1280, cfg.Viewport.Width)
	assert.Equal(t, 720, cfg.Viewport.Height)
	assert.False(t, cfg.Headless)
	assert.False(t, cfg.FullyParallel)
	// environment wins over the file
	assert.Equal(t, ModeOn, cfg.Trace)
	// unset keys keep their defaults
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestLoadSuiteConfig_YAMLFileKeepsBooleanDefaults(t *testing.T) {
	clearSuiteEnv(t)

	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("browsers: [chromium]\n"), 0o600))

	cfg, err := LoadSuiteConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Headless)
	assert.True(t, cfg.FullyParallel)
}

func TestLoadSuiteConfig_MissingFileFallsBackToEnvironment(t *testing.T) {
	clearSuiteEnv(t)
	t.Setenv("E2E_BROWSERS", "webkit")

	cfg, err := LoadSuiteConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{BrowserWebKit}, cfg.Browsers)
}

func TestLoadSuiteConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "relative base url", key: "BASE_URL", value: "/shop", wantErr: "BASE_URL"},
		{name: "unknown browser", key: "E2E_BROWSERS", value: "chromium,edge", wantErr: "edge"},
		{name: "no browser", key: "E2E_BROWSERS", value: " , ", wantErr: "at least one browser"},
		{name: "unknown trace mode", key: "E2E_TRACE", value: "sometimes", wantErr: "E2E_TRACE"},
		{name: "trace mode is not a screenshot mode", key: "E2E_SCREENSHOT", value: "retain-on-failure", wantErr: "E2E_SCREENSHOT"},
		{name: "zero expect timeout", key: "E2E_EXPECT_TIMEOUT", value: "0s", wantErr: "E2E_EXPECT_TIMEOUT"},
		{name: "negative viewport", key: "E2E_VIEWPORT_WIDTH", value: "-1", wantErr: "viewport"},
		{name: "unparsable duration", key: "E2E_TIMEOUT", value: "soon", wantErr: "environment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearSuiteEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadSuiteConfig("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearSuiteEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("E2E_BROWSERS=firefox\n"), 0o600))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	t.Cleanup(func() { os.Unsetenv("E2E_BROWSERS") })

	cfg, err := LoadSuiteConfig("")
	require.NoError(t, err)
	assert.Equal(t, []string{BrowserFirefox}, cfg.Browsers)
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, LoadDotEnv())
}
