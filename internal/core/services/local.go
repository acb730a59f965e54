package services

import (
	"sort"
	"strings"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

// Per-term score contributions for the local engine.
const (
	titleWeight   = 3
	tagWeight     = 2
	contentWeight = 1
)

type scoredItem struct {
	item  domain.KnowledgeItem
	score int
}

// RankLocal scores every item in the collection against the query and
// returns the top matches, capped at domain.MaxResults. It is a pure
// function of its inputs: identical calls produce identical output,
// and items with equal score keep their collection order.
func RankLocal(
	query string, items []domain.KnowledgeItem, target domain.DataSource,
) []domain.KnowledgeItem {
	terms := queryTerms(query, 1)
	queryLower := strings.ToLower(query)

	var scored []scoredItem
	for _, item := range items {
		s := scoreItem(&item, terms, queryLower, target)
		if s > 0 {
			scored = append(scored, scoredItem{item: item, score: s})
		}
	}

	// Stable: equal scores preserve encounter order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > domain.MaxResults {
		scored = scored[:domain.MaxResults]
	}

	results := make([]domain.KnowledgeItem, len(scored))
	for i, s := range scored {
		results[i] = s.item
	}
	return results
}

// scoreItem sums per-term hits: +3 title, +2 any tag, +1 content;
// plus +1 once when the parent title contains the whole query and
// +1 once when the item's corpus matches the effective target.
func scoreItem(
	item *domain.KnowledgeItem, terms []string, queryLower string, target domain.DataSource,
) int {
	titleLower := strings.ToLower(item.Title)
	contentLower := strings.ToLower(item.Content)

	score := 0
	for _, term := range terms {
		if strings.Contains(titleLower, term) {
			score += titleWeight
		}
		if tagContains(item.Tags, term) {
			score += tagWeight
		}
		if strings.Contains(contentLower, term) {
			score += contentWeight
		}
	}

	if item.ParentTitle != "" &&
		strings.Contains(strings.ToLower(item.ParentTitle), queryLower) {
		score++
	}
	if target != "" && item.DataSource == target {
		score++
	}

	return score
}

func tagContains(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(tag, term) {
			return true
		}
	}
	return false
}

// queryTerms lowercases and whitespace-splits the query, keeping
// terms longer than minLen.
func queryTerms(query string, minLen int) []string {
	var terms []string
	for _, t := range strings.Fields(strings.ToLower(query)) {
		if len(t) > minLen {
			terms = append(terms, t)
		}
	}
	return terms
}
