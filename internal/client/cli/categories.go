package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akulikov/stockpile/internal/validation"
)

func (c *Cli) runCategories(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: stockpile categories <list|get|add|update|delete|delete-image>")
	}

	switch args[0] {
	case "list":
		return c.categoriesList(ctx)
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: stockpile categories get <id>")
		}
		return c.categoriesGet(ctx, args[1])
	case "add":
		return c.categoriesAdd(ctx, args[1:])
	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: stockpile categories update <id> [flags]")
		}
		return c.categoriesUpdate(ctx, args[1], args[2:])
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: stockpile categories delete <id>")
		}
		return c.categoriesDelete(ctx, args[1])
	case "delete-image":
		if len(args) != 2 {
			return fmt.Errorf("usage: stockpile categories delete-image <id>")
		}
		return c.categoriesDeleteImage(ctx, args[1])
	default:
		return fmt.Errorf("unknown categories subcommand: %s", args[0])
	}
}

func (c *Cli) categoriesList(ctx context.Context) error {
	categories, err := c.apiClient.Categories(ctx, c.token())
	if err != nil {
		return displayErr(err)
	}

	if len(categories) == 0 {
		c.io.Println("No categories yet.")
		return nil
	}

	for _, cat := range categories {
		c.io.Printf("%s  %-24s  %d product(s)\n", cat.ID, cat.Name, len(cat.Products))
	}

	return nil
}

func (c *Cli) categoriesGet(ctx context.Context, id string) error {
	category, err := c.apiClient.Category(ctx, c.token(), id)
	if err != nil {
		return displayErr(err)
	}

	c.printField("ID", category.ID)
	c.printField("Name", category.Name)
	c.printField("Image", category.ImageURL)
	for _, p := range category.Products {
		c.io.Printf("%-12s %s (%s)\n", "Product:", p.Name, p.ID)
	}

	return nil
}

// openOptionalImage returns a nil reader when no path was given.
func openOptionalImage(path string) (io.ReadCloser, string, error) {
	if path == "" {
		return nil, "", nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image file: %w", err)
	}
	return file, filepath.Base(path), nil
}

func (c *Cli) categoriesAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("categories add", flag.ContinueOnError)
	name := fs.String("name", "", "category name")
	imagePath := fs.String("image", "", "cover image file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validation.ValidateCategoryForm(*name); err != nil {
		return err
	}

	image, imageName, err := openOptionalImage(*imagePath)
	if err != nil {
		return err
	}
	if image != nil {
		defer func() {
			_ = image.Close()
		}()
	}

	if err := c.apiClient.CreateCategory(ctx, c.token(), *name, imageName, image); err != nil {
		return displayErr(err)
	}

	c.io.Printf("Category %q created.\n", *name)

	return nil
}

func (c *Cli) categoriesUpdate(ctx context.Context, id string, args []string) error {
	fs := flag.NewFlagSet("categories update", flag.ContinueOnError)
	name := fs.String("name", "", "category name")
	imagePath := fs.String("image", "", "cover image file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validation.ValidateCategoryForm(*name); err != nil {
		return err
	}

	image, imageName, err := openOptionalImage(*imagePath)
	if err != nil {
		return err
	}
	if image != nil {
		defer func() {
			_ = image.Close()
		}()
	}

	category, err := c.apiClient.UpdateCategory(ctx, c.token(), id, *name, imageName, image)
	if err != nil {
		return displayErr(err)
	}

	c.io.Printf("Category %q updated.\n", category.Name)

	return nil
}

func (c *Cli) categoriesDelete(ctx context.Context, id string) error {
	if err := c.apiClient.DeleteCategory(ctx, c.token(), id); err != nil {
		return displayErr(err)
	}

	c.io.Println("Category deleted.")

	return nil
}

func (c *Cli) categoriesDeleteImage(ctx context.Context, id string) error {
	if _, err := c.apiClient.DeleteCategoryImage(ctx, c.token(), id); err != nil {
		return displayErr(err)
	}

	c.io.Println("Category image deleted.")

	return nil
}
