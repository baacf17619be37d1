package store

import "strings"

// QueryCondition filters items; every supplied predicate must hold and
// absent fields impose no constraint.
type QueryCondition struct {
	Name      string   `json:"name,omitempty" jsonschema_description:"Substring of the item name."`
	Category  Category `json:"category,omitempty" jsonschema:"enum=food,enum=daily-necessity,enum=electronics,enum=clothing,enum=medicine,enum=other" jsonschema_description:"Exact category."`
	Location  string   `json:"location,omitempty" jsonschema_description:"Substring of the storage location."`
	Status    Status   `json:"status,omitempty" jsonschema:"enum=in-use,enum=finished,enum=expired,enum=stored" jsonschema_description:"Exact status."`
	StartDate string   `json:"startDate,omitempty" jsonschema_description:"Earliest purchase date, inclusive."`
	EndDate   string   `json:"endDate,omitempty" jsonschema_description:"Latest purchase date, inclusive."`
	MinPrice  *float64 `json:"minPrice,omitempty" jsonschema_description:"Lowest price, inclusive."`
	MaxPrice  *float64 `json:"maxPrice,omitempty" jsonschema_description:"Highest price, inclusive."`
}

// matches applies the conjunctive filter. Name and location are substring
// matches; category and status are exact; the price range is inclusive;
// the date range compares purchase dates chronologically. An unparsable
// date on either side never rejects an item.
func (c QueryCondition) matches(it Item) bool {
	if c.Name != "" && !strings.Contains(it.Name, c.Name) {
		return false
	}
	if c.Category != "" && it.Category != c.Category {
		return false
	}
	if c.Location != "" && !strings.Contains(it.Location, c.Location) {
		return false
	}
	if c.Status != "" && it.Status != c.Status {
		return false
	}

	if c.StartDate != "" {
		if start, ok := parseWhen(c.StartDate); ok {
			if bought, ok := parseWhen(it.PurchaseDate); ok && bought.Before(start) {
				return false
			}
		}
	}
	if c.EndDate != "" {
		if end, ok := parseWhen(c.EndDate); ok {
			if bought, ok := parseWhen(it.PurchaseDate); ok && bought.After(end) {
				return false
			}
		}
	}

	if c.MinPrice != nil && it.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && it.Price > *c.MaxPrice {
		return false
	}
	return true
}
