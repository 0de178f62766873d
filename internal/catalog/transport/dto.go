package transport

// Product is a storefront catalog entry.
type Product struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Category  string `json:"category" yaml:"category"`
	Storage   string `json:"storage" yaml:"storage"`
	Condition string `json:"condition" yaml:"condition"`
	Price     string `json:"price" yaml:"price"`
	Image     string `json:"image" yaml:"image"`
}

// RepairService is an advertised repair offering.
type RepairService struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	PriceFrom   string `json:"price_from" yaml:"price_from"`
	Icon        string `json:"icon" yaml:"icon"`
}

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Text   string `json:"text" yaml:"text"`
	Rating int    `json:"rating" yaml:"rating"`
	Device string `json:"device" yaml:"device"`
}

// ListProductsRequest holds the optional category filter.
type ListProductsRequest struct {
	Category string `form:"category"`
}
