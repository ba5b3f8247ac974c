package api

import (
	"context"
	"net/http"
	"testing"
)

func TestUpdatesList(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		limit     int
		wantQuery string
	}{
		{"no pagination", 0, 0, ""},
		{"offset only", 5, 0, "offset=5"},
		{"limit only", 0, 20, "limit=20"},
		{"both", 5, 20, "offset=5&limit=20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/getUpdates" {
					t.Errorf("path = %q, want /getUpdates", r.URL.Path)
				}
				if r.Method != http.MethodPost {
					t.Errorf("method = %q, want POST", r.Method)
				}
				if r.URL.RawQuery != tt.wantQuery {
					t.Errorf("RawQuery = %q, want %q", r.URL.RawQuery, tt.wantQuery)
				}
				_, _ = w.Write([]byte(`[
					{"update_id": 11, "type": "sweets_log", "user_id": 1, "amount": 2, "timestamp": 1},
					{"update_id": 12, "type": "gold_log", "user_id": 2, "amount": 3, "comment": "hi", "timestamp": 2}
				]`))
			})

			client := newTestClient(t, server.URL)
			updates := client.Updates().List(context.Background(), tt.offset, tt.limit)
			if len(updates) != 2 {
				t.Fatalf("len = %d, want 2", len(updates))
			}
			if updates[0].UpdateID != 11 || updates[1].UpdateID != 12 {
				t.Errorf("updates out of order: %+v", updates)
			}
			if updates[0].Comment != nil {
				t.Error("first update comment should be absent")
			}
			if updates[1].Comment == nil || *updates[1].Comment != "hi" {
				t.Error("second update comment should be present")
			}
		})
	}
}

func TestUpdatesListFailureYieldsNil(t *testing.T) {
	server, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := newTestClient(t, server.URL)
	if updates := client.Updates().List(context.Background(), 0, 0); updates != nil {
		t.Errorf("expected nil, got %+v", updates)
	}
}

func TestAgentsList(t *testing.T) {
	server, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/iris_agents" {
			t.Errorf("path = %q, want /iris_agents", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want GET", r.Method)
		}
		_, _ = w.Write([]byte(`[111, 222, 333]`))
	})

	client := newTestClient(t, server.URL)
	agents := client.Agents().List(context.Background())
	if len(agents) != 3 || agents[0] != 111 {
		t.Errorf("agents = %v", agents)
	}
}

func TestAgentsListMalformedYieldsNil(t *testing.T) {
	server, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	})

	client := newTestClient(t, server.URL)
	if agents := client.Agents().List(context.Background()); agents != nil {
		t.Errorf("expected nil, got %v", agents)
	}
}
