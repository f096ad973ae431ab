package usecase

import (
	"sort"
	"strconv"

	"github.com/shopsearch/backend/internal/domain"
)

// maxCategoryFacets caps the category facet at the top entries by count.
const maxCategoryFacets = 10

// priceBucketBounds are the ascending boundaries of the price histogram.
// Each pair of adjacent boundaries forms a half-open bucket [lo, hi); prices
// at or above the last boundary land in the "Other" catch-all.
var priceBucketBounds = []float64{0, 25, 50, 100, 250, 500, 1000}

// otherBucket labels the catch-all histogram bucket.
const otherBucket = "Other"

// AggregateFacets computes the category counts and price histogram over the
// filtered, pre-pagination candidate set. Category counts are sorted by count
// descending then category ascending and truncated to the top ten. The
// histogram lists non-empty buckets in ascending boundary order with the
// catch-all last; bucket counts always sum to len(products).
func AggregateFacets(products []domain.Product) ([]domain.CategoryCount, []domain.PriceBucket) {
	byCategory := make(map[string]int)
	bucketCounts := make([]int, len(priceBucketBounds))

	for i := range products {
		byCategory[products[i].Category]++
		bucketCounts[priceBucketIndex(products[i].Price)]++
	}

	categories := make([]domain.CategoryCount, 0, len(byCategory))
	for category, count := range byCategory {
		categories = append(categories, domain.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Category < categories[j].Category
	})
	if len(categories) > maxCategoryFacets {
		categories = categories[:maxCategoryFacets]
	}

	histogram := make([]domain.PriceBucket, 0, len(bucketCounts))
	for i, count := range bucketCounts {
		if count == 0 {
			continue
		}
		label := otherBucket
		if i < len(priceBucketBounds)-1 {
			label = strconv.FormatFloat(priceBucketBounds[i], 'f', -1, 64)
		}
		histogram = append(histogram, domain.PriceBucket{Bucket: label, Count: count})
	}

	return categories, histogram
}

// priceBucketIndex maps a price to its histogram slot. The last slot is the
// catch-all for prices at or above the top boundary, and for anything that
// falls outside the boundaries entirely.
func priceBucketIndex(price float64) int {
	last := len(priceBucketBounds) - 1
	for i := 0; i < last; i++ {
		if price >= priceBucketBounds[i] && price < priceBucketBounds[i+1] {
			return i
		}
	}
	return last
}
