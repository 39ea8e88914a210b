// Package search ranks cases against a free-text query by token overlap.
package search

import (
	"math"
	"sort"
	"strings"

	"casexpert/models"
)

// Tokenize lower-cases s and splits it on every run of characters outside
// [a-z0-9]. Empty tokens are dropped, so non-ASCII letters act as separators.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(s) {
		set[tok] = struct{}{}
	}
	return set
}

// Score is |Q ∩ D| / sqrt(max(|D|, 1)) over the distinct tokens of query and doc.
func Score(query, doc string) float64 {
	return score(tokenSet(query), tokenSet(doc))
}

func score(q, d map[string]struct{}) float64 {
	inter := 0
	for tok := range q {
		if _, ok := d[tok]; ok {
			inter++
		}
	}
	return float64(inter) / math.Sqrt(math.Max(float64(len(d)), 1))
}

// document is the searchable text of a case.
func document(c models.Case) string {
	return c.Title + " " + c.Description
}

// Match returns the cases with a positive score, highest first. Ties keep
// their input order. A blank query matches nothing.
func Match(query string, cases []models.Case) []models.ScoredCase {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.ScoredCase{}
	}

	q := tokenSet(query)
	hits := make([]models.ScoredCase, 0)
	for _, c := range cases {
		if s := score(q, tokenSet(document(c))); s > 0 {
			hits = append(hits, models.ScoredCase{Case: c, Score: s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	return hits
}
