package api

import (
	"context"
	"strconv"
)

// List retrieves the paginated update feed. Offset and limit are sent only
// when positive; the server applies its own defaults otherwise.
func (s UpdatesService) List(ctx context.Context, offset, limit int) []UpdateEntry {
	var params []Param
	if offset > 0 {
		params = append(params, Param{Key: "offset", Value: strconv.Itoa(offset)})
	}
	if limit > 0 {
		params = append(params, Param{Key: "limit", Value: strconv.Itoa(limit)})
	}
	return fetchList[UpdateEntry](ctx, s.Client, "getUpdates", params, true)
}

// List retrieves the ids of all registered Iris agents.
func (s AgentsService) List(ctx context.Context) []int64 {
	return fetchList[int64](ctx, s.Client, "iris_agents", nil, false)
}
