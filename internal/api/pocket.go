package api

import (
	"context"
	"strconv"

	"github.com/iris-tg/iris-cli/internal/validation"
)

// GiveSweets transfers sweets to a user. A non-positive count or an
// over-long comment fails validation before any request is made; a remote or
// decode failure yields a nil result with a nil error.
func (s PocketService) GiveSweets(ctx context.Context, count int, userID int64, comment string, withoutDonateScore bool) (*GenericResult, error) {
	if err := validation.Count(count); err != nil {
		return nil, err
	}
	if err := validation.Comment(comment); err != nil {
		return nil, err
	}

	params := []Param{
		{Key: "sweets", Value: strconv.Itoa(count)},
		{Key: "user_id", Value: strconv.FormatInt(userID, 10)},
		{Key: "without_donate_score", Value: strconv.FormatBool(withoutDonateScore)},
	}
	if comment != "" {
		params = append(params, Param{Key: "comment", Value: comment})
	}
	return fetch[GenericResult](ctx, s.Client, "pocket/sweets/give", params, true), nil
}

// GiveGold transfers gold to a user.
func (s PocketService) GiveGold(ctx context.Context, count int, userID int64, comment string, withoutDonateScore bool) (*GenericResult, error) {
	if err := validation.Count(count); err != nil {
		return nil, err
	}
	if err := validation.Comment(comment); err != nil {
		return nil, err
	}

	params := []Param{
		{Key: "gold", Value: strconv.Itoa(count)},
		{Key: "user_id", Value: strconv.FormatInt(userID, 10)},
		{Key: "without_donate_score", Value: strconv.FormatBool(withoutDonateScore)},
	}
	if comment != "" {
		params = append(params, Param{Key: "comment", Value: comment})
	}
	return fetch[GenericResult](ctx, s.Client, "pocket/gold/give", params, true), nil
}

// GiveDonateScore transfers donate score to a user. The endpoint names its
// count parameter "amount", unlike the sweets/gold transfers.
func (s PocketService) GiveDonateScore(ctx context.Context, count int, userID int64, comment string) (*GenericResult, error) {
	if err := validation.Count(count); err != nil {
		return nil, err
	}
	if err := validation.Comment(comment); err != nil {
		return nil, err
	}

	params := []Param{
		{Key: "amount", Value: strconv.Itoa(count)},
		{Key: "user_id", Value: strconv.FormatInt(userID, 10)},
	}
	if comment != "" {
		params = append(params, Param{Key: "comment", Value: comment})
	}
	return fetch[GenericResult](ctx, s.Client, "pocket/donate_score/give", params, true), nil
}

// Balance retrieves the bot's own pocket balance. Nil means the call did not
// succeed.
func (s PocketService) Balance(ctx context.Context) *BalanceSnapshot {
	return fetch[BalanceSnapshot](ctx, s.Client, "pocket/balance", nil, false)
}

// History retrieves the transfer history for one currency, newest first.
// Offset paginates; zero requests from the start. An unknown currency is a
// validation error.
func (s PocketService) History(ctx context.Context, currency Currency, offset int) ([]HistoryEntry, error) {
	path, err := currency.historyPath()
	if err != nil {
		return nil, err
	}
	var params []Param
	if offset > 0 {
		params = append(params, Param{Key: "offset", Value: strconv.Itoa(offset)})
	}
	return fetchList[HistoryEntry](ctx, s.Client, path, params, false), nil
}

// Enable opens the bot's pocket for incoming transfers.
func (s PocketService) Enable(ctx context.Context) *GenericResult {
	return fetch[GenericResult](ctx, s.Client, "pocket/enable", nil, true)
}

// Disable closes the bot's pocket.
func (s PocketService) Disable(ctx context.Context) *GenericResult {
	return fetch[GenericResult](ctx, s.Client, "pocket/disable", nil, true)
}

// AllowAll lifts per-user pocket restrictions for everyone.
func (s PocketService) AllowAll(ctx context.Context) *GenericResult {
	return fetch[GenericResult](ctx, s.Client, "pocket/allow_all", nil, true)
}

// DenyAll blocks pocket access for everyone.
func (s PocketService) DenyAll(ctx context.Context) *GenericResult {
	return fetch[GenericResult](ctx, s.Client, "pocket/deny_all", nil, true)
}

// AllowUser grants one user pocket access.
func (s PocketService) AllowUser(ctx context.Context, userID int64) *GenericResult {
	params := []Param{{Key: "user_id", Value: strconv.FormatInt(userID, 10)}}
	return fetch[GenericResult](ctx, s.Client, "pocket/allow_user", params, true)
}

// DenyUser revokes one user's pocket access.
func (s PocketService) DenyUser(ctx context.Context, userID int64) *GenericResult {
	params := []Param{{Key: "user_id", Value: strconv.FormatInt(userID, 10)}}
	return fetch[GenericResult](ctx, s.Client, "pocket/deny_user", params, true)
}
