package analytics

import (
	"sort"

	"github.com/filzarahma/commerce-insights/internal/dataset"
	"github.com/go-gota/gota/dataframe"
)

// CategoryRanking counts line items per product category over every row of
// the filtered frame (no order dedup: each item sold counts) and returns
// the full ranking, highest quantity first. Ties keep first-seen order.
func CategoryRanking(df dataframe.DataFrame) []CategorySales {
	result := []CategorySales{}
	if df.Nrow() == 0 {
		return result
	}

	counts := make(map[string]int)
	order := []string{}
	for _, category := range df.Col(dataset.ColProductCategory).Records() {
		if _, exists := counts[category]; !exists {
			order = append(order, category)
		}
		counts[category]++
	}

	for _, category := range order {
		result = append(result, CategorySales{Category: category, Quantity: counts[category]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Quantity > result[j].Quantity
	})

	return result
}

// TopCategories returns the best-selling n categories of a ranking.
func TopCategories(ranking []CategorySales, n int) []CategorySales {
	if n > len(ranking) {
		n = len(ranking)
	}
	return ranking[:n]
}

// BottomCategories returns the worst-selling n categories, lowest first.
func BottomCategories(ranking []CategorySales, n int) []CategorySales {
	if n > len(ranking) {
		n = len(ranking)
	}
	result := make([]CategorySales, 0, n)
	for i := len(ranking) - 1; i >= len(ranking)-n; i-- {
		result = append(result, ranking[i])
	}
	return result
}
