// Package resolve maps loosely-typed CLI arguments onto currency and
// permission selectors, with fuzzy fallback for near-misses.
package resolve

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/iris-tg/iris-cli/internal/api"
)

// Aliases accepted before fuzzy matching kicks in.
var currencyAliases = map[string]api.Currency{
	"gold":         api.CurrencyGold,
	"sweets":       api.CurrencySweets,
	"donate_score": api.CurrencyDonateScore,
	"donate-score": api.CurrencyDonateScore,
	"donate":       api.CurrencyDonateScore,
	"score":        api.CurrencyDonateScore,
}

// AmbiguousError indicates multiple candidates matched equally well.
type AmbiguousError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous match for %q, candidates: %s", e.Query, strings.Join(e.Candidates, ", "))
}

type stringSource []string

func (s stringSource) String(i int) string { return s[i] }
func (s stringSource) Len() int            { return len(s) }

// matchOne resolves a query against candidates: exact case-insensitive match
// wins, then a unique best fuzzy match; a tie between the top two scores is
// an ambiguity error.
func matchOne(query string, candidates []string) (string, error) {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return "", fmt.Errorf("empty selector")
	}

	for _, c := range candidates {
		if c == query {
			return c, nil
		}
	}

	results := fuzzy.FindFrom(query, stringSource(candidates))
	if len(results) == 0 {
		return "", fmt.Errorf("no match found for %q (expected one of %s)", query, strings.Join(candidates, ", "))
	}
	if len(results) > 1 && results[0].Score == results[1].Score {
		names := make([]string, 0, len(results))
		for _, r := range results {
			names = append(names, candidates[r.Index])
		}
		return "", &AmbiguousError{Query: query, Candidates: names}
	}
	return candidates[results[0].Index], nil
}

// Currency resolves a currency name or alias.
func Currency(query string) (api.Currency, error) {
	normalized := strings.TrimSpace(strings.ToLower(query))
	if c, ok := currencyAliases[normalized]; ok {
		return c, nil
	}

	names := make([]string, 0, 3)
	for _, c := range api.Currencies() {
		names = append(names, string(c))
	}
	match, err := matchOne(query, names)
	if err != nil {
		return "", err
	}
	return api.Currency(match), nil
}

// Permissions resolves a list of permission names, preserving the caller's
// order and multiplicity.
func Permissions(queries []string) ([]api.BotPermission, error) {
	names := make([]string, 0, 5)
	for _, p := range api.BotPermissions() {
		names = append(names, string(p))
	}

	out := make([]api.BotPermission, 0, len(queries))
	for _, q := range queries {
		match, err := matchOne(q, names)
		if err != nil {
			return nil, err
		}
		out = append(out, api.BotPermission(match))
	}
	return out, nil
}
