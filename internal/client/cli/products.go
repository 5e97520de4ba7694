package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akulikov/stockpile/internal/validation"
	"github.com/akulikov/stockpile/pkg/api"
)

func (c *Cli) runProducts(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: stockpile products <list|get|add|update|delete|add-image|delete-image>")
	}

	switch args[0] {
	case "list":
		return c.productsList(ctx)
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: stockpile products get <id>")
		}
		return c.productsGet(ctx, args[1])
	case "add":
		return c.productsAdd(ctx, args[1:])
	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: stockpile products update <id> [flags]")
		}
		return c.productsUpdate(ctx, args[1], args[2:])
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: stockpile products delete <id>")
		}
		return c.productsDelete(ctx, args[1])
	case "add-image":
		if len(args) != 3 {
			return fmt.Errorf("usage: stockpile products add-image <product-id> <file>")
		}
		return c.productsAddImage(ctx, args[1], args[2])
	case "delete-image":
		if len(args) != 2 {
			return fmt.Errorf("usage: stockpile products delete-image <image-id>")
		}
		return c.productsDeleteImage(ctx, args[1])
	default:
		return fmt.Errorf("unknown products subcommand: %s", args[0])
	}
}

func (c *Cli) productsList(ctx context.Context) error {
	products, err := c.apiClient.Products(ctx, c.token())
	if err != nil {
		return displayErr(err)
	}

	if len(products) == 0 {
		c.io.Println("No products yet.")
		return nil
	}

	for _, p := range products {
		c.io.Printf("%s  %-24s  %s\n", p.ID, p.Name, p.ProductCategory.Name)
	}
	c.io.Printf("\n%d product(s)\n", len(products))

	return nil
}

func (c *Cli) productsGet(ctx context.Context, id string) error {
	product, err := c.apiClient.Product(ctx, c.token(), id)
	if err != nil {
		return displayErr(err)
	}

	c.printField("ID", product.ID)
	c.printField("Name", product.Name)
	c.printField("Description", product.Description)
	c.printField("Category", product.ProductCategory.Name)
	for _, img := range product.ProductImages {
		c.io.Printf("%-12s %s (%s)\n", "Image:", img.ImageURL, img.ID)
	}

	return nil
}

func (c *Cli) productsAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products add", flag.ContinueOnError)
	name := fs.String("name", "", "product name")
	description := fs.String("description", "", "product description")
	category := fs.String("category", "", "product category id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validation.ValidateProductForm(*name, *category); err != nil {
		return err
	}

	req := api.CreateProductRequest{
		Name:              *name,
		Description:       *description,
		ProductCategoryID: *category,
	}
	if err := c.apiClient.CreateProduct(ctx, c.token(), req); err != nil {
		return displayErr(err)
	}

	c.io.Printf("Product %q created.\n", *name)

	return nil
}

func (c *Cli) productsUpdate(ctx context.Context, id string, args []string) error {
	fs := flag.NewFlagSet("products update", flag.ContinueOnError)
	name := fs.String("name", "", "product name")
	description := fs.String("description", "", "product description")
	category := fs.String("category", "", "product category id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := api.UpdateProductRequest{
		Name:              *name,
		Description:       *description,
		ProductCategoryID: *category,
	}
	product, err := c.apiClient.UpdateProduct(ctx, c.token(), id, req)
	if err != nil {
		return displayErr(err)
	}

	c.io.Printf("Product %q updated.\n", product.Name)

	return nil
}

func (c *Cli) productsDelete(ctx context.Context, id string) error {
	if err := c.apiClient.DeleteProduct(ctx, c.token(), id); err != nil {
		return displayErr(err)
	}

	c.io.Println("Product deleted.")

	return nil
}

func (c *Cli) productsAddImage(ctx context.Context, productID, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	err = c.apiClient.CreateProductImage(ctx, c.token(), productID, filepath.Base(path), file)
	if err != nil {
		return displayErr(err)
	}

	c.io.Println("Image uploaded.")

	return nil
}

func (c *Cli) productsDeleteImage(ctx context.Context, imageID string) error {
	if err := c.apiClient.DeleteProductImage(ctx, c.token(), imageID); err != nil {
		return displayErr(err)
	}

	c.io.Println("Image deleted.")

	return nil
}
