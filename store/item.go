package store

import "time"

// Category classifies a household item.
type Category = string

// Item categories.
const (
	CategoryFood           Category = "food"
	CategoryDailyNecessity Category = "daily-necessity"
	CategoryElectronics    Category = "electronics"
	CategoryClothing       Category = "clothing"
	CategoryMedicine       Category = "medicine"
	CategoryOther          Category = "other"
)

// Status tracks where an item is in its lifecycle.
type Status = string

// Item statuses.
const (
	StatusInUse    Status = "in-use"
	StatusFinished Status = "finished"
	StatusExpired  Status = "expired"
	StatusStored   Status = "stored"
)

// Item is one tracked household item. ID, CreateDate and UpdateDate are
// stamped by the store and never accepted from callers.
type Item struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Location       string   `json:"location"`
	Price          float64  `json:"price"`
	PurchaseDate   string   `json:"purchaseDate"`
	ProductionDate string   `json:"productionDate,omitempty"`
	ExpiryDate     string   `json:"expiryDate,omitempty"`
	CreateDate     string   `json:"createDate"`
	UpdateDate     string   `json:"updateDate"`
	Description    string   `json:"description,omitempty"`
	Quantity       int      `json:"quantity"`
	Unit           string   `json:"unit"`
	Status         Status   `json:"status"`
	Brand          string   `json:"brand,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// ItemInput carries the caller-supplied fields for a new item. It has no
// id or timestamp fields, so client-supplied values for those are dropped
// during decoding rather than checked.
type ItemInput struct {
	Name           string   `json:"name" jsonschema_description:"Item name."`
	Category       Category `json:"category" jsonschema:"enum=food,enum=daily-necessity,enum=electronics,enum=clothing,enum=medicine,enum=other" jsonschema_description:"Item category."`
	Location       string   `json:"location" jsonschema_description:"Where the item is kept."`
	Price          float64  `json:"price" jsonschema_description:"Purchase price, non-negative."`
	PurchaseDate   string   `json:"purchaseDate" jsonschema_description:"Purchase date, e.g. 2024-01-02."`
	ProductionDate string   `json:"productionDate,omitempty" jsonschema_description:"Production date."`
	ExpiryDate     string   `json:"expiryDate,omitempty" jsonschema_description:"Expiry date."`
	Description    string   `json:"description,omitempty" jsonschema_description:"Free-form description."`
	Quantity       int      `json:"quantity" jsonschema_description:"Quantity on hand, integer >= 0."`
	Unit           string   `json:"unit" jsonschema_description:"Counting unit, e.g. bottle, box."`
	Status         Status   `json:"status" jsonschema:"enum=in-use,enum=finished,enum=expired,enum=stored" jsonschema_description:"Item status."`
	Brand          string   `json:"brand,omitempty" jsonschema_description:"Brand."`
	Notes          string   `json:"notes,omitempty" jsonschema_description:"Notes."`
}

// ItemPatch is a partial update; nil fields leave the stored value alone.
type ItemPatch struct {
	Name           *string   `json:"name,omitempty" jsonschema_description:"Item name."`
	Category       *Category `json:"category,omitempty" jsonschema:"enum=food,enum=daily-necessity,enum=electronics,enum=clothing,enum=medicine,enum=other" jsonschema_description:"Item category."`
	Location       *string   `json:"location,omitempty" jsonschema_description:"Where the item is kept."`
	Price          *float64  `json:"price,omitempty" jsonschema_description:"Purchase price."`
	PurchaseDate   *string   `json:"purchaseDate,omitempty" jsonschema_description:"Purchase date."`
	ProductionDate *string   `json:"productionDate,omitempty" jsonschema_description:"Production date."`
	ExpiryDate     *string   `json:"expiryDate,omitempty" jsonschema_description:"Expiry date."`
	Description    *string   `json:"description,omitempty" jsonschema_description:"Free-form description."`
	Quantity       *int      `json:"quantity,omitempty" jsonschema_description:"Quantity on hand."`
	Unit           *string   `json:"unit,omitempty" jsonschema_description:"Counting unit."`
	Status         *Status   `json:"status,omitempty" jsonschema:"enum=in-use,enum=finished,enum=expired,enum=stored" jsonschema_description:"Item status."`
	Brand          *string   `json:"brand,omitempty" jsonschema_description:"Brand."`
	Notes          *string   `json:"notes,omitempty" jsonschema_description:"Notes."`
}

func (p ItemPatch) apply(it *Item) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Location != nil {
		it.Location = *p.Location
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.PurchaseDate != nil {
		it.PurchaseDate = *p.PurchaseDate
	}
	if p.ProductionDate != nil {
		it.ProductionDate = *p.ProductionDate
	}
	if p.ExpiryDate != nil {
		it.ExpiryDate = *p.ExpiryDate
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		it.Unit = *p.Unit
	}
	if p.Status != nil {
		it.Status = *p.Status
	}
	if p.Brand != nil {
		it.Brand = *p.Brand
	}
	if p.Notes != nil {
		it.Notes = *p.Notes
	}
}

// TimestampLayout is the format used for all stamped and stored dates.
const TimestampLayout = "2006-01-02 15:04:05"

// dateLayout is accepted for caller-supplied day-precision dates.
const dateLayout = "2006-01-02"

// parseWhen parses a stored date string. Day-precision and RFC 3339 inputs
// are accepted alongside the full timestamp layout.
func parseWhen(s string) (time.Time, bool) {
	for _, layout := range []string{TimestampLayout, dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
