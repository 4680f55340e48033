package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog item.
// ID is assigned by the store on insert and never changed by an update.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric" json:"price"`
	ImageUrl    *string         `gorm:"size:1024" json:"imageUrl"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "product"
}

// Overwrite replaces every mutable field with the values from src.
// The ID is left untouched.
func (p *Product) Overwrite(src *Product) {
	p.Name = cloneString(src.Name)
	p.Description = cloneString(src.Description)
	p.Price = src.Price
	p.ImageUrl = cloneString(src.ImageUrl)
}

// Clone returns a deep copy of the product
func (p *Product) Clone() *Product {
	c := &Product{ID: p.ID}
	c.Overwrite(p)
	return c
}

// Equal reports whether both products hold the same values
func (p *Product) Equal(o *Product) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.ID == o.ID &&
		equalString(p.Name, o.Name) &&
		equalString(p.Description, o.Description) &&
		p.Price.Equal(o.Price) &&
		equalString(p.ImageUrl, o.ImageUrl)
}

// String returns a pointer to s, for populating nullable fields
func String(s string) *string {
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
