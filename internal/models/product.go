package models

// PriceTier is one (duration, price) option of a product. A cart line always
// refers to exactly one tier.
type PriceTier struct {
	Duration string `json:"duration" validate:"required"`
	Price    int64  `json:"price" validate:"required,gt=0"`
}

// Product is a sellable catalog item. Built-in products are immutable; admin
// authored products live in a separate overlay store and are unioned with the
// built-in catalog at listing time.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Color       string      `json:"color"`
	Pricing     []PriceTier `json:"pricing"`
}
