package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	result := c.auth.Login(ctx, email, password)
	if !result.Success {
		return fmt.Errorf("login failed: %s", result.Err)
	}

	c.auth.EnsureDeviceID(ctx)

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Welcome back, %s %s\n", result.User.FirstName, result.User.LastName)
	c.io.Println("Your session has been saved on this device.")

	return nil
}
