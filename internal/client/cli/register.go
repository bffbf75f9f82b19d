package cli

import (
	"context"
	"fmt"

	"github.com/petcare-cl/petcare-cli/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	req := api.RegisterRequest{}
	var err error

	if req.Email, err = c.io.ReadInput("Email: "); err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if req.FirstName, err = c.io.ReadInput("First name: "); err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}
	if req.LastName, err = c.io.ReadInput("Last name: "); err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}
	if req.Phone, err = c.io.ReadInput("Phone (optional, +56...): "); err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}

	if req.Password, err = c.io.ReadPassword("Password: "); err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if req.Password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Creating account...")

	result := c.auth.Register(ctx, req)
	if !result.Success {
		return fmt.Errorf("registration failed: %s", result.Err)
	}

	c.auth.EnsureDeviceID(ctx)

	c.io.Println()
	c.io.Println("✓ Account created!")
	c.io.Printf("You are now signed in as %s\n", result.User.Email)

	return nil
}
