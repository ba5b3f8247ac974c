package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ErrorDetail is the structured error object some endpoints return inside an
// otherwise-200 body.
type ErrorDetail struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// GenericResult is the response shape of mutation endpoints (transfers,
// pocket visibility toggles). Either Result is set, or Error carries a
// structured API error.
type GenericResult struct {
	Result int          `json:"result"`
	Error  *ErrorDetail `json:"error,omitempty"`
}

// UnmarshalJSON checks for an error object before reading the result field.
// An error object wins: Result stays 0 and missing subfields default to
// code 0 / "Unknown error". Without one, a missing result defaults to 0.
func (r *GenericResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Result *int            `json:"result"`
		Error  json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw.Error) > 0 && string(raw.Error) != "null" {
		var sub struct {
			Code        *int    `json:"code"`
			Description *string `json:"description"`
		}
		if err := json.Unmarshal(raw.Error, &sub); err != nil {
			return err
		}
		detail := ErrorDetail{Description: "Unknown error"}
		if sub.Code != nil {
			detail.Code = *sub.Code
		}
		if sub.Description != nil {
			detail.Description = *sub.Description
		}
		r.Result = 0
		r.Error = &detail
		return nil
	}

	if raw.Result != nil {
		r.Result = *raw.Result
	} else {
		r.Result = 0
	}
	r.Error = nil
	return nil
}

// BalanceSnapshot is the bot's own pocket balance.
type BalanceSnapshot struct {
	Gold        int             `json:"gold"`
	Sweets      decimal.Decimal `json:"sweets"`
	DonateScore int             `json:"donate_score"`
}

// HistoryEntry is one row of a per-currency transfer history.
type HistoryEntry struct {
	UserID    int64   `json:"user_id"`
	Type      string  `json:"type"`
	Amount    int     `json:"amount"`
	Comment   *string `json:"comment,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// Time returns Timestamp as time.Time.
func (h *HistoryEntry) Time() time.Time {
	return time.Unix(h.Timestamp, 0)
}

// UpdateEntry is one row of the paginated update feed.
type UpdateEntry struct {
	UpdateID  int64   `json:"update_id"`
	Type      string  `json:"type"`
	UserID    int64   `json:"user_id"`
	Amount    int     `json:"amount"`
	Comment   *string `json:"comment,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// Time returns Timestamp as time.Time.
func (u *UpdateEntry) Time() time.Time {
	return time.Unix(u.Timestamp, 0)
}

// UserRegInfo holds a user's registration timestamp.
type UserRegInfo struct {
	Timestamp int64 `json:"timestamp"`
}

// Time returns Timestamp as time.Time.
func (u *UserRegInfo) Time() time.Time {
	return time.Unix(u.Timestamp, 0)
}

// UserSpamInfo holds a user's spam/ignore/scam flags.
type UserSpamInfo struct {
	Spam   bool `json:"spam"`
	Ignore bool `json:"ignore"`
	Scam   bool `json:"scam"`
}

// UserActivityInfo holds a user's chat activity counters.
type UserActivityInfo struct {
	Messages   int `json:"messages"`
	Characters int `json:"characters"`
	Forwarded  int `json:"forwarded"`
	Replies    int `json:"replies"`
	Mentions   int `json:"mentions"`
}

// UserStarsInfo holds a user's star count and rank.
type UserStarsInfo struct {
	Stars int    `json:"stars"`
	Rank  string `json:"rank"`
}

// UserPocketInfo holds another user's pocket balance.
type UserPocketInfo struct {
	Gold        int             `json:"gold"`
	Sweets      decimal.Decimal `json:"sweets"`
	DonateScore int             `json:"donate_score"`
}

// TradeOrder is an order fragment in trade responses. All fields are optional
// because partially-filled responses omit what does not apply.
type TradeOrder struct {
	ID     *int64           `json:"id,omitempty"`
	Volume *int             `json:"volume,omitempty"`
	Price  *decimal.Decimal `json:"price,omitempty"`
}

// BuyTradeResult is the response of trade/buy.
type BuyTradeResult struct {
	DoneVolume  int             `json:"done_volume"`
	SweetsSpent decimal.Decimal `json:"sweets_spent"`
	NewOrder    *TradeOrder     `json:"new_order,omitempty"`
}

// SellTradeResult is the response of trade/sell.
type SellTradeResult struct {
	DoneVolume   int             `json:"done_volume"`
	SweetsEarned decimal.Decimal `json:"sweets_earned"`
	NewOrder     *TradeOrder     `json:"new_order,omitempty"`
}

// OpenOrders lists the bot's open buy and sell orders.
type OpenOrders struct {
	Buy  []TradeOrder `json:"buy"`
	Sell []TradeOrder `json:"sell"`
}

// CancelResult reports which orders a cancel operation removed.
type CancelResult struct {
	CancelledOrders []int64 `json:"cancelled_orders"`
	CancelledVolume int     `json:"cancelled_volume"`
}
