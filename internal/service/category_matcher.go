package service

import (
	"fmt"
	"sort"
	"strings"

	"backoffice/internal/model"
)

// Category match modes.
const (
	MatchExact      = "exact"
	MatchNormalized = "normalized"
)

// CategoryMatcher resolves free-text category values to names in the
// categories table. There is no foreign key; the matcher is the join rule.
type CategoryMatcher interface {
	// Resolve returns the canonical category name for raw, or false when raw
	// matches no category.
	Resolve(raw string) (string, bool)
}

type categoryMatcher struct {
	key   func(string) string
	names map[string]string
}

// NewCategoryMatcher builds a matcher over categories using mode. When two
// categories collapse to the same key the first one (by slice order) wins.
func NewCategoryMatcher(mode string, categories []model.Category) (CategoryMatcher, error) {
	var key func(string) string
	switch mode {
	case "", MatchExact:
		key = func(s string) string { return s }
	case MatchNormalized:
		key = normalizeCategory
	default:
		return nil, fmt.Errorf("unknown category match mode %q", mode)
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		k := key(c.Name)
		if _, ok := names[k]; !ok {
			names[k] = c.Name
		}
	}
	return &categoryMatcher{key: key, names: names}, nil
}

func (m *categoryMatcher) Resolve(raw string) (string, bool) {
	name, ok := m.names[m.key(raw)]
	return name, ok
}

func normalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// matchCategoryUsage folds raw per-source counts into per-category usage.
// Raw values that resolve to no category are dropped.
func matchCategoryUsage(matcher CategoryMatcher, raw []model.RawCategoryCount) []model.CategoryUsage {
	type usageKey struct{ source, name string }
	totals := make(map[usageKey]int64)
	for _, rc := range raw {
		name, ok := matcher.Resolve(rc.Category)
		if !ok {
			continue
		}
		totals[usageKey{rc.Source, name}] += rc.Count
	}

	sourceOrder := make(map[string]int, len(model.CategorySources))
	for i, s := range model.CategorySources {
		sourceOrder[s] = i
	}

	usage := make([]model.CategoryUsage, 0, len(totals))
	for k, count := range totals {
		usage = append(usage, model.CategoryUsage{Name: k.name, Count: count, Source: k.source})
	}
	sort.Slice(usage, func(i, j int) bool {
		a, b := usage[i], usage[j]
		if a.Source != b.Source {
			return sourceOrder[a.Source] < sourceOrder[b.Source]
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})
	return usage
}
