package api

// CreateProductRequest is the body of POST /product.
type CreateProductRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	ProductCategoryID string `json:"productCategoryId"`
}

// UpdateProductRequest is the body of PUT /product/{id}.
// Zero-value fields are omitted so the backend treats them as unchanged.
type UpdateProductRequest struct {
	Name              string `json:"name,omitempty"`
	Description       string `json:"description,omitempty"`
	ProductCategoryID string `json:"productCategoryId,omitempty"`
}
