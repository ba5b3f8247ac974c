package cmd

import (
	"net/http"
	"strings"
	"testing"
)

func TestTradeBuy(t *testing.T) {
	apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != apiPrefix+"/trade/buy" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.RawQuery != "price=2.5&volume=10" {
			t.Errorf("RawQuery = %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"done_volume": 10, "sweets_spent": 25}`))
	})

	out, _, err := runCLI(t, "trade", "buy", "2.5", "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Filled volume: 10") || !strings.Contains(out, "Sweets spent: 25") {
		t.Errorf("output = %q", out)
	}
}

func TestTradeBuyPriceOutOfRange(t *testing.T) {
	apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("out-of-range price should not reach the network")
	})

	_, _, err := runCLI(t, "trade", "buy", "0.001", "10")
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if ExitCode(err) != 2 {
		t.Errorf("ExitCode = %d, want 2", ExitCode(err))
	}
}

func TestTradeOrders(t *testing.T) {
	apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != apiPrefix+"/trade/my_orders" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"buy": [{"id": 1, "volume": 5, "price": 2}], "sell": []}`))
	})

	out, _, err := runCLI(t, "trade", "orders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "buy") || !strings.Contains(out, "SIDE") {
		t.Errorf("output = %q", out)
	}
}

func TestTradeCancelSelectors(t *testing.T) {
	apiServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cancelled_orders": [1], "cancelled_volume": 5}`))
	})

	t.Run("no selector", func(t *testing.T) {
		_, _, err := runCLI(t, "trade", "cancel")
		if ExitCode(err) != 2 {
			t.Errorf("ExitCode = %d, want 2 (%v)", ExitCode(err), err)
		}
	})

	t.Run("two selectors", func(t *testing.T) {
		_, _, err := runCLI(t, "trade", "cancel", "--all", "--price", "2.5")
		if ExitCode(err) != 2 {
			t.Errorf("ExitCode = %d, want 2 (%v)", ExitCode(err), err)
		}
	})

	t.Run("id without volume", func(t *testing.T) {
		_, _, err := runCLI(t, "trade", "cancel", "--id", "9")
		if ExitCode(err) != 2 {
			t.Errorf("ExitCode = %d, want 2 (%v)", ExitCode(err), err)
		}
	})

	t.Run("all", func(t *testing.T) {
		out, _, err := runCLI(t, "trade", "cancel", "--all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Cancelled 1 order(s), volume 5") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("id and volume", func(t *testing.T) {
		if _, _, err := runCLI(t, "trade", "cancel", "--id", "9", "--volume", "5"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
