package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	result := c.auth.Logout(ctx)
	if !result.Success {
		// Local state is cleared regardless; report the unclean purge.
		c.io.Println("⚠️  " + result.Err)
		return fmt.Errorf("logout finished with errors")
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
