//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "demo-user-api"
	ConsumerName = "qa-portal"

	StateUsersBaseline = "users baseline"
	StateUserExists    = "user with id 1 exists"
	StateUserMissing   = "no user with id 404"
)

const (
	ExistingUserID int64 = 1
	MissingUserID  int64 = 404

	DemoEmail    = "eve.holt@reqres.in"
	DemoPassword = "cityslicka"
	DemoToken    = "demo-token-123"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the QA portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleUserPayload provides stable test data for user interactions. The
// values mirror the first seed record so provider verification passes against
// a freshly reset store.
func ExampleUserPayload() map[string]any {
	return map[string]any{
		"id":         ExistingUserID,
		"email":      "george.bluth@reqres.in",
		"first_name": "George",
		"last_name":  "Bluth",
	}
}

// ExampleSupportPayload provides the support block attached to read responses.
func ExampleSupportPayload() map[string]any {
	return map[string]any{
		"url":  "https://reqres.in/#support-heading",
		"text": "Demo API for exercising HTTP clients and test tooling",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
