package models

import "time"

// Product is a catalog item. The backend embeds the owning category and,
// optionally, the attached images.
type Product struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	ProductCategoryID string          `json:"productCategoryId"`
	ProductCategory   ProductCategory `json:"productCategory"`
	ProductImages     []ProductImage  `json:"productImages,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ProductCategory groups products and may carry a cover image.
type ProductCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Products  []Product `json:"products,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductImage is a single image attached to a product.
type ProductImage struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
