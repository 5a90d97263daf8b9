// Package suite runs page object tests across the configured browsers. It
// owns the Playwright driver and the launched browsers, and hands every test
// a Fixture: an isolated browser context with the page objects wired to it.
package suite

import (
	"io"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/planittesting/jupiter-e2e/internal/config"
)

// devices maps a browser project to the Playwright device it emulates
var devices = map[string]string{
	config.BrowserChromium: "Desktop Chrome",
	config.BrowserFirefox:  "Desktop Firefox",
	config.BrowserWebKit:   "Desktop Safari",
}

type project struct {
	name    string
	browser playwright.Browser
	device  *playwright.DeviceDescriptor
}

// Suite holds the browsers shared by every test of a package
type Suite struct {
	// BeforeEach runs on every fresh fixture before the test body
	BeforeEach func(f *Fixture) error

	cfg      *config.SuiteConfig
	log      *zap.Logger
	out      io.Writer
	pw       *playwright.Playwright
	projects []project
}

// New creates a suite. Start must be called before running tests.
func New(cfg *config.SuiteConfig, log *zap.Logger) *Suite {
	if log == nil {
		log = zap.NewNop()
	}
	return &Suite{
		cfg: cfg,
		log: log,
		out: os.Stdout,
	}
}

// Config returns the suite configuration
func (s *Suite) Config() *config.SuiteConfig {
	return s.cfg
}

// Start runs the Playwright driver and launches one browser per project
func (s *Suite) Start() error {
	pw, err := playwright.Run()
	if err != nil {
		return errors.Wrap(err, "start playwright")
	}
	s.pw = pw

	for _, name := range s.cfg.Browsers {
		bt, err := s.browserType(name)
		if err != nil {
			s.Close()
			return err
		}

		browser, err := bt.Launch(playwright.BrowserTypeLaunchOptions{
			Headless: playwright.Bool(s.cfg.Headless),
			SlowMo:   playwright.Float(float64(s.cfg.SlowMo.Milliseconds())),
		})
		if err != nil {
			s.Close()
			return errors.Wrapf(err, "launch %s", name)
		}

		s.projects = append(s.projects, project{
			name:    name,
			browser: browser,
			device:  pw.Devices[devices[name]],
		})
		s.log.Info("browser launched",
			zap.String("browser", name),
			zap.String("version", browser.Version()),
		)
	}
	return nil
}

func (s *Suite) browserType(name string) (playwright.BrowserType, error) {
	switch name {
	case config.BrowserChromium:
		return s.pw.Chromium, nil
	case config.BrowserFirefox:
		return s.pw.Firefox, nil
	case config.BrowserWebKit:
		return s.pw.WebKit, nil
	}
	return nil, errors.Errorf("unknown browser %q", name)
}

// Close closes the browsers and stops the driver
func (s *Suite) Close() error {
	var err error
	for _, p := range s.projects {
		if cerr := p.browser.Close(); cerr != nil {
			err = multierr.Append(err, errors.Wrapf(cerr, "close %s", p.name))
		}
	}
	s.projects = nil

	if s.pw != nil {
		if serr := s.pw.Stop(); serr != nil {
			err = multierr.Append(err, errors.Wrap(serr, "stop playwright"))
		}
		s.pw = nil
	}
	return err
}

// contextOptions builds the browser context options of a project: the
// device's identity with the configured base URL and viewport
func contextOptions(cfg *config.SuiteConfig, device *playwright.DeviceDescriptor) playwright.BrowserNewContextOptions {
	opts := playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(cfg.BaseURL),
		Viewport: &playwright.Size{
			Width:  cfg.Viewport.Width,
			Height: cfg.Viewport.Height,
		},
	}
	if device != nil {
		opts.UserAgent = playwright.String(device.UserAgent)
		opts.DeviceScaleFactor = playwright.Float(device.DeviceScaleFactor)
		opts.IsMobile = playwright.Bool(device.IsMobile)
		opts.HasTouch = playwright.Bool(device.HasTouch)
	}
	return opts
}

func ms(d time.Duration) float64 {
	return float64(d.Milliseconds())
}
