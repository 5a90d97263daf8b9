package config

import (
	"io/fs"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Trace and screenshot modes, named as Playwright names them
const (
	ModeOff             = "off"
	ModeOn              = "on"
	ModeRetainOnFailure = "retain-on-failure"
	ModeOnlyOnFailure   = "only-on-failure"
)

// Browser projects the suite can run against
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// DefaultBaseURL is the public Jupiter Toys demo site
const DefaultBaseURL = "https://jupiter.cloud.planittesting.com/"

// SuiteConfig drives the browser suite. Every field can be set from the
// environment (or a .env file) and from an optional YAML file.
type SuiteConfig struct {
	// BaseURL is resolved against relative navigations such as Goto("/")
	BaseURL string `env:"BASE_URL" env-default:"https://jupiter.cloud.planittesting.com/" yaml:"baseURL"`
	// OutputDir receives traces and screenshots of failed tests
	OutputDir string `env:"E2E_OUTPUT_DIR" env-default:"reports/test-results" yaml:"outputDir"`

	// Timeout bounds a whole test, per browser
	Timeout time.Duration `env:"E2E_TIMEOUT" env-default:"60s" yaml:"timeout"`
	// ExpectTimeout bounds retrying assertions
	ExpectTimeout time.Duration `env:"E2E_EXPECT_TIMEOUT" env-default:"10s" yaml:"expectTimeout"`
	// NavigationTimeout bounds page loads and the responses they wait for
	NavigationTimeout time.Duration `env:"E2E_NAVIGATION_TIMEOUT" env-default:"15s" yaml:"navigationTimeout"`
	// SubmissionTimeout bounds the contact form round trip
	SubmissionTimeout time.Duration `env:"E2E_SUBMISSION_TIMEOUT" env-default:"20s" yaml:"submissionTimeout"`

	Browsers []string      `env:"E2E_BROWSERS" env-default:"chromium,firefox,webkit" env-separator:"," yaml:"browsers"`
	Headless bool          `env:"E2E_HEADLESS" yaml:"headless"`
	SlowMo   time.Duration `env:"E2E_SLOW_MO" env-default:"0s" yaml:"slowMo"`

	Viewport struct {
		Width  int `env:"E2E_VIEWPORT_WIDTH" env-default:"1538" yaml:"width"`
		Height int `env:"E2E_VIEWPORT_HEIGHT" env-default:"731" yaml:"height"`
	} `yaml:"viewport"`

	Trace      string `env:"E2E_TRACE" env-default:"retain-on-failure" yaml:"trace"`
	Screenshot string `env:"E2E_SCREENSHOT" env-default:"only-on-failure" yaml:"screenshot"`

	// Tags restricts the run to tests carrying at least one of these tags
	Tags []string `env:"E2E_TAGS" env-separator:"," yaml:"tags"`

	FullyParallel bool `env:"E2E_FULLY_PARALLEL" yaml:"fullyParallel"`
	CI            bool `env:"CI" yaml:"-"`

	// LocalSite starts the bundled replica and points BaseURL at it
	LocalSite    bool   `env:"E2E_LOCAL_SITE" env-default:"false" yaml:"localSite"`
	TemplatesDir string `env:"E2E_TEMPLATES_DIR" env-default:"../templates" yaml:"templatesDir"`
	StaticDir    string `env:"E2E_STATIC_DIR" env-default:"../static" yaml:"staticDir"`

	LogLevel string `env:"E2E_LOG_LEVEL" env-default:"info" yaml:"logLevel"`
}

// LoadDotEnv loads the first of the given .env files that exists. A missing
// file is not an error.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		err := godotenv.Load(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, "load %s", path)
		}
	}
	return nil
}

// LoadSuiteConfig reads the suite configuration. When path names an existing
// YAML file its values are used and the environment overrides them; otherwise
// only the environment is read.
func LoadSuiteConfig(path string) (*SuiteConfig, error) {
	// cleanenv applies env-default to any zero field, which would turn an
	// explicit "false" back into true, so these defaults are set here
	cfg := SuiteConfig{
		Headless:      true,
		FullyParallel: true,
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, errors.Wrapf(err, "read suite config %s", path)
			}
			return finish(&cfg)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read suite config from environment")
	}
	return finish(&cfg)
}

func finish(cfg *SuiteConfig) (*SuiteConfig, error) {
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SuiteConfig) normalize() {
	browsers := c.Browsers[:0]
	for _, b := range c.Browsers {
		if b = strings.ToLower(strings.TrimSpace(b)); b != "" {
			browsers = append(browsers, b)
		}
	}
	c.Browsers = browsers

	tags := c.Tags[:0]
	for _, tag := range c.Tags {
		if tag = strings.TrimPrefix(strings.TrimSpace(tag), "@"); tag != "" {
			tags = append(tags, tag)
		}
	}
	c.Tags = tags

	// one worker on CI
	if c.CI {
		c.FullyParallel = false
	}
}

// Validate reports the first invalid setting, naming its environment key
func (c *SuiteConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Errorf("BASE_URL must be an absolute URL, got %q", c.BaseURL)
	}

	for _, d := range []struct {
		key   string
		value time.Duration
	}{
		{"E2E_TIMEOUT", c.Timeout},
		{"E2E_EXPECT_TIMEOUT", c.ExpectTimeout},
		{"E2E_NAVIGATION_TIMEOUT", c.NavigationTimeout},
		{"E2E_SUBMISSION_TIMEOUT", c.SubmissionTimeout},
	} {
		if d.value <= 0 {
			return errors.Errorf("%s must be positive, got %s", d.key, d.value)
		}
	}

	if len(c.Browsers) == 0 {
		return errors.New("E2E_BROWSERS must name at least one browser")
	}
	for _, b := range c.Browsers {
		if !slices.Contains([]string{BrowserChromium, BrowserFirefox, BrowserWebKit}, b) {
			return errors.Errorf("E2E_BROWSERS: unknown browser %q", b)
		}
	}

	if !slices.Contains([]string{ModeOff, ModeOn, ModeRetainOnFailure}, c.Trace) {
		return errors.Errorf("E2E_TRACE: unknown mode %q", c.Trace)
	}
	if !slices.Contains([]string{ModeOff, ModeOn, ModeOnlyOnFailure}, c.Screenshot) {
		return errors.Errorf("E2E_SCREENSHOT: unknown mode %q", c.Screenshot)
	}

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return errors.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height)
	}

	return nil
}
