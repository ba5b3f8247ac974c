package outfmt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// normalizeExpression fixes shell-escaped operators in jq expressions. Zsh
// escapes ! to \! even in single quotes, breaking operators like !=.
func normalizeExpression(expr string) string {
	return strings.ReplaceAll(expr, `\!`, `!`)
}

// ApplyQuery runs a jq expression over a value and returns the filtered
// result. The value is round-tripped through encoding/json first so gojq
// sees plain maps and slices.
func ApplyQuery(v any, expression string) (any, error) {
	if expression == "" {
		return v, nil
	}

	query, err := gojq.Parse(normalizeExpression(expression))
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}

	iter := query.Run(input)
	var results []any
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := out.(error); ok {
			return nil, fmt.Errorf("filter error: %w", err)
		}
		results = append(results, out)
	}

	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}
