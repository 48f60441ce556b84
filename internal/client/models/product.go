package models

// Product is a catalogue item.
type Product struct {
	ID                 int     `json:"id,omitempty"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	StockCount         int     `json:"stock"`
	Category           string  `json:"category"`
	Brand              string  `json:"brand,omitempty"`
	Thumbnail          string  `json:"thumbnail,omitempty"`
}

func (p Product) GetID() int       { return p.ID }
func (p Product) GetTitle() string { return p.Title }

// WithID returns a copy carrying id.
func (p Product) WithID(id int) Product {
	p.ID = id
	return p
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool { return p.StockCount > 0 }

// Validate requires a title and a non-negative price.
func (p Product) Validate() error {
	if err := required("title", p.Title); err != nil {
		return err
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}
