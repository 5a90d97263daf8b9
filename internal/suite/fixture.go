package suite

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sync/atomic"

	"github.com/go-faster/errors"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/planittesting/jupiter-e2e/internal/config"
	"github.com/planittesting/jupiter-e2e/internal/logger"
	"github.com/planittesting/jupiter-e2e/internal/pages"
)

// Fixture is what a test body receives: one page in its own browser context
// and the page objects bound to it
type Fixture struct {
	// Ctx is cancelled when the test times out
	Ctx     context.Context
	Browser string
	Context playwright.BrowserContext
	Page    playwright.Page
	Expect  playwright.PlaywrightAssertions
	Log     *zap.Logger

	MainPage    *pages.MainPage
	ContactPage *pages.ContactPage
	ShopPage    *pages.ShopPage
	CartPage    *pages.CartPage
}

func (s *Suite) newFixture(t tb, p project, title string) *Fixture {
	t.Helper()

	bctx, err := p.browser.NewContext(contextOptions(s.cfg, p.device))
	if err != nil {
		t.Fatalf("new %s context: %v", p.name, err)
	}
	bctx.SetDefaultTimeout(ms(s.cfg.Timeout))
	bctx.SetDefaultNavigationTimeout(ms(s.cfg.NavigationTimeout))

	tracing := s.cfg.Trace != config.ModeOff
	if tracing {
		if err := bctx.Tracing().Start(playwright.TracingStartOptions{
			Screenshots: playwright.Bool(true),
			Snapshots:   playwright.Bool(true),
			Title:       playwright.String(t.Name()),
		}); err != nil {
			bctx.Close()
			t.Fatalf("start tracing: %v", err)
		}
	}

	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		t.Fatalf("new %s page: %v", p.name, err)
	}

	ctx := logger.WithFields(logger.WithLogger(context.Background(), s.log),
		zap.String("test", title),
		zap.String("browser", p.name),
	)
	log := logger.Get(ctx)
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)

	// closing the page fails whatever action the test is blocked on
	var timedOut atomic.Bool
	stop := context.AfterFunc(ctx, func() {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			timedOut.Store(true)
			page.Close()
		}
	})

	expect := playwright.NewPlaywrightAssertions(ms(s.cfg.ExpectTimeout))
	timeouts := pages.Timeouts{
		Navigation: s.cfg.NavigationTimeout,
		Submission: s.cfg.SubmissionTimeout,
	}

	f := &Fixture{
		Ctx:         ctx,
		Browser:     p.name,
		Context:     bctx,
		Page:        page,
		Expect:      expect,
		Log:         log,
		MainPage:    pages.NewMainPage(page, expect, timeouts),
		ContactPage: pages.NewContactPage(page, expect, timeouts),
		ShopPage:    pages.NewShopPage(page, expect),
		CartPage:    pages.NewCartPage(page, expect),
	}

	t.Cleanup(func() {
		stop()
		cancel()

		if timedOut.Load() {
			t.Errorf("test timed out after %s", s.cfg.Timeout)
		}
		failed := t.Failed()

		fmt.Fprintln(s.out, statusLine(title, failed))
		log.Info("test finished", zap.Bool("failed", failed))

		dir := filepath.Join(s.cfg.OutputDir, artifactDir(t.Name()))
		if keepScreenshot(s.cfg.Screenshot, failed) && !timedOut.Load() {
			path := filepath.Join(dir, "screenshot.png")
			if _, err := page.Screenshot(playwright.PageScreenshotOptions{
				Path:     playwright.String(path),
				FullPage: playwright.Bool(true),
			}); err != nil {
				log.Warn("screenshot failed", zap.Error(err))
			} else {
				t.Logf("screenshot: %s", path)
			}
		}

		if tracing {
			var err error
			if keepTrace(s.cfg.Trace, failed) {
				path := filepath.Join(dir, "trace.zip")
				if err = bctx.Tracing().Stop(path); err == nil {
					t.Logf("trace: %s (open with: go run github.com/playwright-community/playwright-go/cmd/playwright show-trace %s)", path, path)
				}
			} else {
				err = bctx.Tracing().Stop()
			}
			if err != nil {
				log.Warn("stop tracing", zap.Error(err))
			}
		}

		page.Close()
		if err := bctx.Close(); err != nil {
			log.Warn("close context", zap.Error(err))
		}
	})

	return f
}

// statusLine is the coloured one line summary printed after each test
func statusLine(title string, failed bool) string {
	if failed {
		return "   \x1b[31m< FAILED >\x1b[0m " + title
	}
	return "   \x1b[32m< PASSED >\x1b[0m " + title
}

func keepTrace(mode string, failed bool) bool {
	return mode == config.ModeOn || (mode == config.ModeRetainOnFailure && failed)
}

func keepScreenshot(mode string, failed bool) bool {
	return mode == config.ModeOn || (mode == config.ModeOnlyOnFailure && failed)
}

var unsafePath = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// artifactDir turns a test name into a single directory name
func artifactDir(testName string) string {
	return unsafePath.ReplaceAllString(testName, "-")
}
