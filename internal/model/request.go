package model

// ProductRequest is the body of product create and update calls. Update is a
// full replace of the mutable fields, there is no partial patching.
type ProductRequest struct {
	EAN          string  `json:"ean"`
	Name         string  `json:"name" validate:"required"`
	ExpiryDate   string  `json:"expiry_date"`
	PurchaseDate string  `json:"purchase_date"`
	Location     string  `json:"location"`
	Quantity     *int    `json:"quantity" validate:"omitempty,min=1,max=9999"`
	WeightVolume string  `json:"weight_volume"`
	Notes        string  `json:"notes"`
	IsVegetarian bool    `json:"is_vegetarian"`
	IsVegan      bool    `json:"is_vegan"`
	Price        float64 `json:"price" validate:"min=0"`
	ImageURL     string  `json:"image_url"`
	Category     string  `json:"category"`
	Tags         string  `json:"tags"`
}

type BatchRequest struct {
	Operation  string `json:"operation"`
	ProductIDs []uint `json:"product_ids"`
	Location   string `json:"location"`
}

type DuplicateCheckRequest struct {
	EAN  string `json:"ean"`
	Name string `json:"name"`
}

type ShoppingItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity *int   `json:"quantity" validate:"omitempty,min=1"`
	Category string `json:"category"`
	Checked  bool   `json:"checked"`
	Notes    string `json:"notes"`
}

// ScanResult is the mapped response of an external barcode lookup.
type ScanResult struct {
	Found    bool   `json:"found"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Quantity string `json:"quantity"`
	Brands   string `json:"brands"`
	Category string `json:"category"`
}
