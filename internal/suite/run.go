package suite

import (
	"strings"
	"testing"
)

// Option customises a single test
type Option func(*testOptions)

type testOptions struct {
	tags []string
}

// Tag marks the test with tags such as "RegressionTest". A leading "@" is
// ignored.
func Tag(tags ...string) Option {
	return func(o *testOptions) {
		for _, tag := range tags {
			o.tags = append(o.tags, strings.TrimPrefix(tag, "@"))
		}
	}
}

// Test runs fn once per browser project as subtests of a subtest named
// name. The test is skipped when the configured tag filter excludes it.
func (s *Suite) Test(t *testing.T, name string, fn func(t *testing.T, f *Fixture), opts ...Option) {
	t.Helper()

	var o testOptions
	for _, opt := range opts {
		opt(&o)
	}

	t.Run(name, func(t *testing.T) {
		if !matchesTags(o.tags, s.cfg.Tags) {
			t.Skipf("tags %v do not match filter %v", o.tags, s.cfg.Tags)
		}
		if len(s.projects) == 0 {
			t.Fatal("suite has no browsers; was Start called?")
		}
		if s.cfg.FullyParallel {
			t.Parallel()
		}

		for _, p := range s.projects {
			t.Run(p.name, func(t *testing.T) {
				if s.cfg.FullyParallel {
					t.Parallel()
				}

				s.runProject(t, p, name, func(f *Fixture) {
					fn(t, f)
				})
			})
		}
	})
}

// tb is the part of testing.T a fixture needs
type tb interface {
	Helper()
	Name() string
	Failed() bool
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
	Cleanup(f func())
}

// runProject runs body on a fresh fixture of project p, after BeforeEach
func (s *Suite) runProject(t tb, p project, title string, body func(f *Fixture)) {
	t.Helper()

	f := s.newFixture(t, p, title)
	if s.BeforeEach != nil {
		if err := s.BeforeEach(f); err != nil {
			t.Fatalf("before each: %v", err)
		}
	}
	body(f)
}

// Step runs fn as a named step of the test. A failed step stops the test.
func Step(t *testing.T, name string, fn func(t *testing.T)) {
	t.Helper()
	if !t.Run(name, fn) {
		t.FailNow()
	}
}

// matchesTags reports whether a test with tags runs under filter. An empty
// filter runs everything.
func matchesTags(tags, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, want := range filter {
		for _, tag := range tags {
			if strings.EqualFold(tag, want) {
				return true
			}
		}
	}
	return false
}
