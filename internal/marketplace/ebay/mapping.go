package ebay

import (
	"strings"

	domain "github.com/Katos24/crosslist-pro/pkg/types"
)

// Category and condition mapping. An unmapped value never fails a
// publish; it falls back to the documented default.

const (
	defaultCategoryID = "99" // Other
	defaultCondition  = "USED_GOOD"
)

// categoryIDs maps the app's category names to eBay category ids.
var categoryIDs = map[string]string{
	"Clothing":            "11450",
	"Electronics":         "293",
	"Guitar Parts":        "33034",
	"Musical Instruments": "619",
	"Other":               "99",
}

// conditions maps the normalized condition enum to the Sell Inventory
// API's condition vocabulary.
var conditions = map[domain.Condition]string{
	domain.ConditionNew:           "NEW",
	domain.ConditionLikeNew:       "LIKE_NEW",
	domain.ConditionUsedExcellent: "USED_EXCELLENT",
	domain.ConditionUsedGood:      "USED_GOOD",
	domain.ConditionAcceptable:    "USED_ACCEPTABLE",
}

// CategoryID translates a category name to an eBay category id.
// Numeric values are assumed to already be eBay ids and pass through.
func CategoryID(category string) string {
	if id, ok := categoryIDs[category]; ok {
		return id
	}
	if category != "" && isDigits(category) {
		return category
	}
	return defaultCategoryID
}

// ConditionID translates a normalized condition to eBay's vocabulary.
func ConditionID(c domain.Condition) string {
	if v, ok := conditions[c]; ok {
		return v
	}
	return defaultCondition
}

func isDigits(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	}) == -1
}
