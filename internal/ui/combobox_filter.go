package ui

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"quickpick/internal/domain"
)

// MatchMode selects how typed text is matched against item content.
type MatchMode string

const (
	// MatchSubstring keeps items whose content contains the text, ignoring case.
	MatchSubstring MatchMode = "substring"
	// MatchFuzzy keeps items whose content contains the text's characters in order.
	MatchFuzzy MatchMode = "fuzzy"
)

// ParseMatchMode maps a config value to a MatchMode, defaulting to substring.
func ParseMatchMode(s string) MatchMode {
	if MatchMode(strings.ToLower(strings.TrimSpace(s))) == MatchFuzzy {
		return MatchFuzzy
	}
	return MatchSubstring
}

// filterBaseItems returns the items matching text, in base order.
func filterBaseItems(items []*domain.BaseItem, text string, mode MatchMode) []*domain.BaseItem {
	query := strings.ToLower(text)
	if mode == MatchFuzzy && query != "" {
		return fuzzyFilter(items, query)
	}
	return lo.Filter(items, func(item *domain.BaseItem, _ int) bool {
		return strings.Contains(strings.ToLower(item.Content()), query)
	})
}

// fuzzyFilter keeps fuzzy matches but leaves them in base order so both
// modes narrow the same list the same way.
func fuzzyFilter(items []*domain.BaseItem, query string) []*domain.BaseItem {
	targets := lo.Map(items, func(item *domain.BaseItem, _ int) string {
		return strings.ToLower(item.Content())
	})
	matched := make([]bool, len(items))
	for _, m := range fuzzy.Find(query, targets) {
		if m.Index >= 0 && m.Index < len(items) {
			matched[m.Index] = true
		}
	}
	return lo.Filter(items, func(_ *domain.BaseItem, i int) bool {
		return matched[i]
	})
}

// newCollator returns a collator for locale, falling back to English when the
// tag cannot be parsed.
func newCollator(locale string) *collate.Collator {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	return collate.New(tag)
}

// sortByField returns a copy of items ordered by the field at index.
// An index outside fields leaves the order unchanged. Items that are not
// records or lack the field keep their positions; the items holding the
// field are sorted among themselves into the remaining slots.
func sortByField(items []*domain.BaseItem, fields []string, index int, col *collate.Collator) []*domain.BaseItem {
	out := append([]*domain.BaseItem(nil), items...)
	if index < 0 || index >= len(fields) || len(out) < 2 {
		return out
	}
	name := fields[index]

	type keyed struct {
		item *domain.BaseItem
		key  string
	}
	var slots []int
	var sortable []keyed
	for i, item := range out {
		if key, ok := item.FieldString(name); ok {
			slots = append(slots, i)
			sortable = append(sortable, keyed{item: item, key: key})
		}
	}
	sort.SliceStable(sortable, func(i, j int) bool {
		return col.CompareString(sortable[i].key, sortable[j].key) < 0
	})
	for n, slot := range slots {
		out[slot] = sortable[n].item
	}
	return out
}
