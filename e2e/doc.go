//go:build e2e

// Package e2e holds the Jupiter Toys user journeys.
//
// These tests drive real browsers and are kept out of the standard test run
// by a build tag:
//
//	go run ./cmd/jupiter install
//	go test -tags=e2e ./e2e/...
//
// By default they run against the public demo site in Chromium, Firefox and
// WebKit. Settings come from the environment, an optional .env file and the
// YAML file named by E2E_CONFIG (see suite.example.yaml). Useful knobs:
//
//	E2E_LOCAL_SITE=true      serve the bundled replica on a random port
//	E2E_BROWSERS=chromium    run a single browser project
//	E2E_TAGS=RegressionTest  run only tagged tests
//	CI=true                  run tests one at a time
//
// Failed tests leave a Playwright trace and a screenshot under
// reports/test-results. Retries and reports are left to the runner, e.g.
// gotestsum --rerun-fails --junitfile.
package e2e
