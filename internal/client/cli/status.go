package cli

import (
	"context"
	"time"

	"github.com/petcare-cl/petcare-cli/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	result := c.auth.Bootstrap(ctx)
	snapshot := c.auth.Snapshot()

	if !snapshot.Authenticated {
		c.io.Println("Status: Not authenticated")
		if result.Err != "" {
			c.io.Printf("Reason: %s\n", result.Err)
		}
		c.io.Println()
		c.io.Println("Run 'petcare login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("User: %s %s <%s>\n", snapshot.User.FirstName, snapshot.User.LastName, snapshot.User.Email)
	c.io.Printf("Session epoch: %d\n", snapshot.Epoch)
	if deviceID := c.auth.EnsureDeviceID(ctx); deviceID != "" {
		c.io.Printf("Device ID: %s\n", deviceID)
	}

	// Best-effort expiry display; the token may not be a decodable JWT.
	if expiresAt, ok := auth.TokenExpiry(c.auth.Token()); ok {
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining := time.Until(expiresAt); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	return nil
}
