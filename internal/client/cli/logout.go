package cli

import "context"

func (c *Cli) runLogout(ctx context.Context) error {
	// Never fails: the server call is best effort, the local session is
	// cleared regardless.
	c.machine.Logout(ctx)

	c.io.Println("Signed out. Your local session has been deleted.")

	return nil
}
