package cli

import (
	"context"
	"fmt"

	"github.com/petcare-cl/petcare-cli/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "edit" {
		return c.editProfile(ctx)
	}
	return c.showProfile(ctx)
}

func (c *Cli) showProfile(ctx context.Context) error {
	result := c.auth.RefreshProfile(ctx)
	if !result.Success {
		return fmt.Errorf("failed to load profile: %s", result.Err)
	}

	user := result.User
	c.io.Println("=== Profile ===")
	c.io.Printf("Name:  %s %s\n", user.FirstName, user.LastName)
	c.io.Printf("Email: %s\n", user.Email)
	if user.Phone != "" {
		c.io.Printf("Phone: %s\n", user.Phone)
	}

	return nil
}

func (c *Cli) editProfile(ctx context.Context) error {
	c.io.Println("=== Edit Profile ===")
	c.io.Println("Leave a field empty to keep the current value.")
	c.io.Println()

	req := api.UpdateProfileRequest{}
	var err error

	if req.FirstName, err = c.io.ReadInput("First name: "); err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}
	if req.LastName, err = c.io.ReadInput("Last name: "); err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}
	if req.Phone, err = c.io.ReadInput("Phone: "); err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}

	result := c.auth.UpdateUser(ctx, req)
	if !result.Success {
		return fmt.Errorf("failed to update profile: %s", result.Err)
	}

	c.io.Println()
	c.io.Println("✓ Profile updated!")
	return nil
}
