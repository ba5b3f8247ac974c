package api

import (
	"context"
	"net/http"
	"testing"
)

func TestUserInfoEndpoints(t *testing.T) {
	tests := []struct {
		name     string
		wantPath string
		body     string
		call     func(ctx context.Context, c *Client) any
		check    func(t *testing.T, got any)
	}{
		{
			name:     "reg",
			wantPath: "/user_info/reg",
			body:     `{"timestamp": 1600000000}`,
			call: func(ctx context.Context, c *Client) any {
				return c.UserInfo().Reg(ctx, 99)
			},
			check: func(t *testing.T, got any) {
				info := got.(*UserRegInfo)
				if info == nil || info.Timestamp != 1600000000 {
					t.Errorf("info = %+v", info)
				}
			},
		},
		{
			name:     "spam",
			wantPath: "/user_info/spam",
			body:     `{"spam": true, "ignore": false, "scam": true}`,
			call: func(ctx context.Context, c *Client) any {
				return c.UserInfo().Spam(ctx, 99)
			},
			check: func(t *testing.T, got any) {
				info := got.(*UserSpamInfo)
				if info == nil || !info.Spam || info.Ignore || !info.Scam {
					t.Errorf("info = %+v", info)
				}
			},
		},
		{
			name:     "activity",
			wantPath: "/user_info/activity",
			body:     `{"messages": 10, "characters": 200, "forwarded": 1, "replies": 2, "mentions": 3}`,
			call: func(ctx context.Context, c *Client) any {
				return c.UserInfo().Activity(ctx, 99)
			},
			check: func(t *testing.T, got any) {
				info := got.(*UserActivityInfo)
				if info == nil || info.Messages != 10 || info.Mentions != 3 {
					t.Errorf("info = %+v", info)
				}
			},
		},
		{
			name:     "stars",
			wantPath: "/user_info/stars",
			body:     `{"stars": 5, "rank": "knight"}`,
			call: func(ctx context.Context, c *Client) any {
				return c.UserInfo().Stars(ctx, 99)
			},
			check: func(t *testing.T, got any) {
				info := got.(*UserStarsInfo)
				if info == nil || info.Stars != 5 || info.Rank != "knight" {
					t.Errorf("info = %+v", info)
				}
			},
		},
		{
			name:     "pocket",
			wantPath: "/user_info/pocket",
			body:     `{"gold": 3, "sweets": 1.25, "donate_score": 0}`,
			call: func(ctx context.Context, c *Client) any {
				return c.UserInfo().Pocket(ctx, 99)
			},
			check: func(t *testing.T, got any) {
				info := got.(*UserPocketInfo)
				if info == nil || info.Gold != 3 {
					t.Errorf("info = %+v", info)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.wantPath {
					t.Errorf("path = %q, want %q", r.URL.Path, tt.wantPath)
				}
				if r.Method != http.MethodPost {
					t.Errorf("method = %q, want POST", r.Method)
				}
				if r.URL.RawQuery != "user_id=99" {
					t.Errorf("RawQuery = %q, want user_id=99", r.URL.RawQuery)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			client := newTestClient(t, server.URL)
			tt.check(t, tt.call(context.Background(), client))
		})
	}
}

func TestUserInfoFailureYieldsNil(t *testing.T) {
	server, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "no rights"}`))
	})

	client := newTestClient(t, server.URL)
	ctx := context.Background()

	if client.UserInfo().Reg(ctx, 1) != nil {
		t.Error("Reg should be nil on failure")
	}
	if client.UserInfo().Spam(ctx, 1) != nil {
		t.Error("Spam should be nil on failure")
	}
	if client.UserInfo().Stars(ctx, 1) != nil {
		t.Error("Stars should be nil on failure")
	}
}
