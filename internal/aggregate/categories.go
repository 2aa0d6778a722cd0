package aggregate

import (
	"sort"

	"keyword-dashboard/internal/domain"
)

// OtherCategory labels records that carry no category.
const OtherCategory = "その他"

// SummaryCategoryLimit is how many categories the summary page ranks.
const SummaryCategoryLimit = 8

type CategoryTotal struct {
	Name   string
	Icon   string
	Count  int
	Volume int64
}

// CategoryTotals groups records by category in the order categories are
// first seen.
func CategoryTotals(records []domain.KeywordRecord) []CategoryTotal {
	idx := map[string]int{}
	var out []CategoryTotal
	for _, r := range records {
		name := r.Category
		if name == "" {
			name = OtherCategory
		}
		i, ok := idx[name]
		if !ok {
			i = len(out)
			idx[name] = i
			out = append(out, CategoryTotal{Name: name, Icon: r.CategoryIcon})
		}
		out[i].Count++
		out[i].Volume += r.Volume
	}
	return out
}

// RankCategories orders totals by descending volume, keeping encounter
// order for ties, and keeps at most n entries. The input is not modified.
func RankCategories(totals []CategoryTotal, n int) []CategoryTotal {
	out := append([]CategoryTotal(nil), totals...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Volume > out[j].Volume })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
