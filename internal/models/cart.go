package models

// CartLine is one selected (product, tier) pair in a cart. ID is the composite
// of product id and tier label, e.g. "wave-7 Hari".
type CartLine struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"required,gt=0"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// Cart is the process-scoped collection of selected lines. It carries no
/// persistence guarantee: dropping it on expiry is legitimate.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Total returns the sum of price times quantity over all lines.
func (c Cart) Total() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.Price * int64(l.Quantity)
	}
	return sum
}
