package api

import (
	"context"
	"strconv"
)

// The user_info endpoints are POSTs keyed by user_id. Each requires the
// matching bot permission to have been granted via a rights deep link.

func userParams(userID int64) []Param {
	return []Param{{Key: "user_id", Value: strconv.FormatInt(userID, 10)}}
}

// Reg retrieves a user's registration timestamp.
func (s UserInfoService) Reg(ctx context.Context, userID int64) *UserRegInfo {
	return fetch[UserRegInfo](ctx, s.Client, "user_info/reg", userParams(userID), true)
}

// Spam retrieves a user's spam/ignore/scam flags.
func (s UserInfoService) Spam(ctx context.Context, userID int64) *UserSpamInfo {
	return fetch[UserSpamInfo](ctx, s.Client, "user_info/spam", userParams(userID), true)
}

// Activity retrieves a user's chat activity counters.
func (s UserInfoService) Activity(ctx context.Context, userID int64) *UserActivityInfo {
	return fetch[UserActivityInfo](ctx, s.Client, "user_info/activity", userParams(userID), true)
}

// Stars retrieves a user's star count and rank.
func (s UserInfoService) Stars(ctx context.Context, userID int64) *UserStarsInfo {
	return fetch[UserStarsInfo](ctx, s.Client, "user_info/stars", userParams(userID), true)
}

// Pocket retrieves a user's pocket balance.
func (s UserInfoService) Pocket(ctx context.Context, userID int64) *UserPocketInfo {
	return fetch[UserPocketInfo](ctx, s.Client, "user_info/pocket", userParams(userID), true)
}
