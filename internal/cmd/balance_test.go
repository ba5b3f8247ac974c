package cmd

import (
	"net/http"
	"strings"
	"testing"
)

func TestBalanceText(t *testing.T) {
	apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != apiPrefix+"/pocket/balance" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"gold": 10, "sweets": 3.5, "donate_score": 7}`))
	})

	out, _, err := runCLI(t, "balance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Gold:", "10", "Sweets:", "3.5", "Donate score:", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBalanceJSONWithFilter(t *testing.T) {
	apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"gold": 10, "sweets": 3.5, "donate_score": 7}`))
	})

	out, _, err := runCLI(t, "-o", "json", "--jq", ".gold", "balance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "10" {
		t.Errorf("filtered output = %q, want 10", out)
	}
}

func TestBalanceRemoteFailure(t *testing.T) {
	apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, _, err := runCLI(t, "balance")
	if err == nil {
		t.Fatal("expected an error when the balance call fails")
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
}
