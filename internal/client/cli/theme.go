package cli

import (
	"context"
	"fmt"
)

// Theme names accepted by the settings screen.
var themes = map[string]bool{
	"light":  true,
	"dark":   true,
	"system": true,
}

func (c *Cli) runTheme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		theme := c.sessions.Theme(ctx)
		if theme == "" {
			theme = "system"
		}
		c.io.Printf("Current theme: %s\n", theme)
		return nil
	}

	theme := args[0]
	if !themes[theme] {
		return fmt.Errorf("unknown theme %q (want light, dark or system)", theme)
	}

	c.sessions.SetTheme(ctx, theme)
	c.io.Printf("Theme set to %s.\n", theme)

	return nil
}
