package ofx

import (
	"sort"
	"strings"

	"github.com/Veraticus/fintrack/internal/model"
)

// Categorizer assigns an expense category to an imported transaction.
type Categorizer interface {
	Categorize(description string) model.Category
}

// DefaultKeywords maps expense categories to lowercase description fragments.
var DefaultKeywords = map[model.Category][]string{
	model.CategoryFood:          {"grocer", "market", "shoprite", "restaurant", "cafe", "coffee", "starbucks", "whole foods", "bakery", "pizza"},
	model.CategoryTransport:     {"taxi", "uber", "bolt", "bus", "minibus", "fuel", "petrol", "gas station", "parking", "airline"},
	model.CategoryHousing:       {"rent", "mortgage", "landlord", "property"},
	model.CategoryUtilities:     {"electric", "water board", "airtime", "internet", "phone", "telecom", "escom", "airtel", "tnm"},
	model.CategoryShopping:      {"amazon", "clothes", "store", "mall", "boutique", "hardware"},
	model.CategoryEntertainment: {"netflix", "spotify", "cinema", "theatre", "concert", "steam"},
	model.CategoryHealthcare:    {"pharmacy", "clinic", "hospital", "doctor", "dental", "chemist"},
}

type keywordRule struct {
	keyword  string
	category model.Category
}

// KeywordCategorizer matches descriptions against keyword lists. Descriptions
// that match nothing fall back to Other.
type KeywordCategorizer struct {
	rules []keywordRule
}

// NewKeywordCategorizer builds a categorizer from DefaultKeywords merged with
// extra. A keyword in extra replaces the same default keyword. Categories
// outside the expense set are ignored.
func NewKeywordCategorizer(extra map[model.Category][]string) *KeywordCategorizer {
	var rules []keywordRule
	seen := make(map[string]bool)
	add := func(source map[model.Category][]string) {
		for category, keywords := range source {
			if !category.IsExpense() {
				continue
			}
			for _, kw := range keywords {
				kw = strings.ToLower(strings.TrimSpace(kw))
				if kw == "" || seen[kw] {
					continue
				}
				seen[kw] = true
				rules = append(rules, keywordRule{keyword: kw, category: category})
			}
		}
	}
	add(extra)
	add(DefaultKeywords)

	// Longest keyword wins so "whole foods" beats "foods" style overlaps.
	sort.SliceStable(rules, func(i, j int) bool {
		if len(rules[i].keyword) != len(rules[j].keyword) {
			return len(rules[i].keyword) > len(rules[j].keyword)
		}
		return rules[i].keyword < rules[j].keyword
	})

	return &KeywordCategorizer{rules: rules}
}

// Categorize returns the category of the longest keyword found in description.
func (c *KeywordCategorizer) Categorize(description string) model.Category {
	lower := strings.ToLower(description)
	for _, rule := range c.rules {
		if strings.Contains(lower, rule.keyword) {
			return rule.category
		}
	}
	return model.CategoryOther
}
