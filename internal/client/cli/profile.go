package cli

import (
	"context"
	"flag"
	"fmt"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		return c.profileShow()
	case "update":
		return c.profileUpdate(ctx, args[1:])
	case "delete-image":
		return c.profileDeleteImage(ctx)
	default:
		return fmt.Errorf("unknown profile subcommand: %s", args[0])
	}
}

func (c *Cli) profileShow() error {
	user := c.machine.CurrentUser()

	c.printField("Name", user.FullName())
	c.printField("Email", user.Email)
	c.printField("Image", user.ImageURL)
	c.printField("Member since", user.CreatedAt.Format("2006-01-02"))

	return nil
}

func (c *Cli) profileUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
	firstName := fs.String("first", "", "first name")
	lastName := fs.String("last", "", "last name")
	email := fs.String("email", "", "email address")
	imagePath := fs.String("image", "", "profile image file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	current := c.machine.CurrentUser()

	// Blank flags keep the current value, like leaving a form field as-is
	fields := map[string]string{
		"firstName": current.FirstName,
		"lastName":  current.LastName,
		"email":     current.Email,
	}
	if *firstName != "" {
		fields["firstName"] = *firstName
	}
	if *lastName != "" {
		fields["lastName"] = *lastName
	}
	if *email != "" {
		fields["email"] = *email
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

	updated, err := c.apiClient.UpdateUser(ctx, c.token(), current.ID, fields, imageName, image)
	if err != nil {
		return displayErr(err)
	}

	// The server's record replaces the cached one and lands in storage
	c.machine.SetUser(ctx, updated)

	c.io.Println("Profile updated.")

	return nil
}

func (c *Cli) profileDeleteImage(ctx context.Context) error {
	current := c.machine.CurrentUser()

	updated, err := c.apiClient.DeleteUserImage(ctx, c.token(), current.ID)
	if err != nil {
		return displayErr(err)
	}

	c.machine.SetUser(ctx, updated)

	c.io.Println("Profile image deleted.")

	return nil
}
