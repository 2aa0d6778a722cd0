package aggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"keyword-dashboard/internal/domain"
)

func rec(cat string, vol int64) domain.KeywordRecord {
	return domain.KeywordRecord{Term: cat + "-kw", Volume: vol, SourceID: "self", Category: cat, CategoryIcon: "#" + cat}
}

func TestCategoryTotalsEncounterOrder(t *testing.T) {
	got := CategoryTotals([]domain.KeywordRecord{
		rec("b", 10), rec("a", 5), rec("b", 1), {Term: "loose", Volume: 7},
	})
	want := []CategoryTotal{
		{Name: "b", Icon: "#b", Count: 2, Volume: 11},
		{Name: "a", Icon: "#a", Count: 1, Volume: 5},
		{Name: OtherCategory, Count: 1, Volume: 7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CategoryTotals mismatch (-want +got):\n%s", diff)
	}
}

func TestRankCategoriesTopEightStable(t *testing.T) {
	var totals []CategoryTotal
	for i, v := range []int64{5, 50, 5, 80, 1, 50, 9, 3, 5, 7, 2} {
		totals = append(totals, CategoryTotal{Name: string(rune('a' + i)), Volume: v})
	}

	got := RankCategories(totals, SummaryCategoryLimit)
	var names []string
	for _, c := range got {
		names = append(names, c.Name)
	}
	// ties (50: b,f) and (5: a,c,i) keep encounter order
	assert.Equal(t, []string{"d", "b", "f", "g", "j", "a", "c", "i"}, names)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Volume, got[i].Volume)
	}
	assert.Equal(t, "a", totals[0].Name, "input must not be reordered")
}

func TestRankCategoriesFewerThanLimit(t *testing.T) {
	got := RankCategories([]CategoryTotal{{Name: "x", Volume: 1}, {Name: "y", Volume: 2}}, SummaryCategoryLimit)
	assert.Equal(t, []CategoryTotal{{Name: "y", Volume: 2}, {Name: "x", Volume: 1}}, got)
	assert.Empty(t, RankCategories(nil, SummaryCategoryLimit))
}
