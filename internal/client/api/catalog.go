package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/akulikov/stockpile/internal/models"
	"github.com/akulikov/stockpile/pkg/api"
)

// Products lists the whole catalog.
func (c *Client) Products(ctx context.Context, token string) ([]models.Product, error) {
	var products []models.Product
	_, err := c.doJSON(ctx, http.MethodGet, "/product", token, nil, &products)
	if err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	return products, nil
}

// Product fetches a single product with its category and images.
func (c *Client) Product(ctx context.Context, token, id string) (*models.Product, error) {
	var product models.Product
	_, err := c.doJSON(ctx, http.MethodGet, "/product/"+id, token, nil, &product)
	if err != nil {
		return nil, fmt.Errorf("get product request failed: %w", err)
	}
	return &product, nil
}

// CreateProduct adds a catalog item.
func (c *Client) CreateProduct(ctx context.Context, token string, req api.CreateProductRequest) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/product", token, req, nil)
	if err != nil {
		return fmt.Errorf("create product request failed: %w", err)
	}
	return nil
}

// UpdateProduct modifies a catalog item and returns the updated record.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, req api.UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	_, err := c.doJSON(ctx, http.MethodPut, "/product/"+id, token, req, &product)
	if err != nil {
		return nil, fmt.Errorf("update product request failed: %w", err)
	}
	return &product, nil
}

// DeleteProduct removes a catalog item and its images.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/product/"+id, token, nil, nil)
	if err != nil {
		return fmt.Errorf("delete product request failed: %w", err)
	}
	return nil
}

// Categories lists all product categories.
func (c *Client) Categories(ctx context.Context, token string) ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	_, err := c.doJSON(ctx, http.MethodGet, "/product-category", token, nil, &categories)
	if err != nil {
		return nil, fmt.Errorf("list categories request failed: %w", err)
	}
	return categories, nil
}

// Category fetches a single category with its products.
func (c *Client) Category(ctx context.Context, token, id string) (*models.ProductCategory, error) {
	var category models.ProductCategory
	_, err := c.doJSON(ctx, http.MethodGet, "/product-category/"+id, token, nil, &category)
	if err != nil {
		return nil, fmt.Errorf("get category request failed: %w", err)
	}
	return &category, nil
}

// CreateCategory adds a category. The backend accepts multipart here so a
// cover image can ride along; image may be nil.
func (c *Client) CreateCategory(ctx context.Context, token, name string, imageName string, image io.Reader) error {
	fields := map[string]string{"name": name}
	err := c.doMultipart(ctx, http.MethodPost, "/product-category", token, fields, "image", imageName, image, nil)
	if err != nil {
		return fmt.Errorf("create category request failed: %w", err)
	}
	return nil
}

// UpdateCategory modifies a category, optionally replacing its cover image.
func (c *Client) UpdateCategory(ctx context.Context, token, id, name string, imageName string, image io.Reader) (*models.ProductCategory, error) {
	fields := map[string]string{"name": name}
	var category models.ProductCategory
	err := c.doMultipart(ctx, http.MethodPut, "/product-category/"+id, token, fields, "image", imageName, image, &category)
	if err != nil {
		return nil, fmt.Errorf("update category request failed: %w", err)
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/product-category/"+id, token, nil, nil)
	if err != nil {
		return fmt.Errorf("delete category request failed: %w", err)
	}
	return nil
}

// DeleteCategoryImage removes only the category's cover image and returns
// the updated category.
func (c *Client) DeleteCategoryImage(ctx context.Context, token, id string) (*models.ProductCategory, error) {
	var category models.ProductCategory
	_, err := c.doJSON(ctx, http.MethodDelete, "/product-category/i/"+id, token, nil, &category)
	if err != nil {
		return nil, fmt.Errorf("delete category image request failed: %w", err)
	}
	return &category, nil
}

// CreateProductImage uploads an image and attaches it to a product.
func (c *Client) CreateProductImage(ctx context.Context, token, productID, imageName string, image io.Reader) error {
	err := c.doMultipart(ctx, http.MethodPost, "/product-image/p/"+productID, token, nil, "image", imageName, image, nil)
	if err != nil {
		return fmt.Errorf("create product image request failed: %w", err)
	}
	return nil
}

// DeleteProductImage detaches and deletes a product image.
func (c *Client) DeleteProductImage(ctx context.Context, token, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/product-image/"+id, token, nil, nil)
	if err != nil {
		return fmt.Errorf("delete product image request failed: %w", err)
	}
	return nil
}
