package api

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iris-tg/iris-cli/internal/validation"
)

// The trade endpoints are GETs even though they mutate server state; the
// client layer treats them as read/compute calls per the remote contract.

// Buy places a buy order at the given price. Matching happens server-side;
// the result reports the immediately-filled volume and any remaining order.
func (s TradeService) Buy(ctx context.Context, price decimal.Decimal, volume int) (*BuyTradeResult, error) {
	if err := validation.Price(price); err != nil {
		return nil, err
	}
	params := []Param{
		{Key: "price", Value: price.String()},
		{Key: "volume", Value: strconv.Itoa(volume)},
	}
	return fetch[BuyTradeResult](ctx, s.Client, "trade/buy", params, false), nil
}

// Sell places a sell order at the given price.
func (s TradeService) Sell(ctx context.Context, price decimal.Decimal, volume int) (*SellTradeResult, error) {
	if err := validation.Price(price); err != nil {
		return nil, err
	}
	params := []Param{
		{Key: "price", Value: price.String()},
		{Key: "volume", Value: strconv.Itoa(volume)},
	}
	return fetch[SellTradeResult](ctx, s.Client, "trade/sell", params, false), nil
}

// MyOrders lists the bot's open orders on both sides of the book.
func (s TradeService) MyOrders(ctx context.Context) *OpenOrders {
	return fetch[OpenOrders](ctx, s.Client, "trade/my_orders", nil, false)
}

// CancelPrice cancels every open order at the given price.
func (s TradeService) CancelPrice(ctx context.Context, price decimal.Decimal) (*CancelResult, error) {
	if err := validation.Price(price); err != nil {
		return nil, err
	}
	params := []Param{{Key: "price", Value: price.String()}}
	return fetch[CancelResult](ctx, s.Client, "trade/cancel_price", params, false), nil
}

// CancelAll cancels every open order.
func (s TradeService) CancelAll(ctx context.Context) *CancelResult {
	return fetch[CancelResult](ctx, s.Client, "trade/cancel_all", nil, false)
}

// CancelPart cancels part of one order by id and volume.
func (s TradeService) CancelPart(ctx context.Context, id int64, volume int) *CancelResult {
	params := []Param{
		{Key: "id", Value: strconv.FormatInt(id, 10)},
		{Key: "volume", Value: strconv.Itoa(volume)},
	}
	return fetch[CancelResult](ctx, s.Client, "trade/cancel_part", params, false)
}
