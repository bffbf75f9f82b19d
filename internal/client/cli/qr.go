package cli

import (
	"context"
	"fmt"

	"github.com/petcare-cl/petcare-cli/pkg/api"
)

func (c *Cli) runQR(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: petcare qr show <petId> | petcare qr scan <code>")
	}

	switch args[0] {
	case "scan":
		// Public endpoint: works without a session so a finder can reach
		// the owner of a lost pet.
		if len(args) < 2 {
			return fmt.Errorf("usage: petcare qr scan <code>")
		}
		return c.scanQR(ctx, args[1])
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: petcare qr show <petId>")
		}
		if err := c.requireAuth(ctx); err != nil {
			return err
		}
		return c.showQR(ctx, args[1])
	default:
		return fmt.Errorf("unknown qr subcommand: %s", args[0])
	}
}

func (c *Cli) scanQR(ctx context.Context, code string) error {
	resp := c.qr.Scan(ctx, code)
	if !resp.Success {
		return fmt.Errorf("scan failed: %s", resp.ErrorText())
	}

	var pet api.Pet
	if err := resp.DecodeData(&pet); err != nil {
		return fmt.Errorf("failed to decode scan result: %w", err)
	}

	c.io.Printf("=== %s ===\n", pet.Name)
	c.io.Printf("Species: %s\n", pet.Species)
	if pet.IsLost {
		c.io.Println("⚠️  This pet is reported LOST — please contact the owner.")
	}
	return nil
}

func (c *Cli) showQR(ctx context.Context, arg string) error {
	petID, err := parseID(arg, "pet")
	if err != nil {
		return err
	}

	resp := c.qr.Generate(ctx, petID)
	if !resp.Success {
		return fmt.Errorf("failed to generate QR: %s", resp.ErrorText())
	}

	var code api.QRCode
	if err := resp.DecodeData(&code); err != nil {
		return fmt.Errorf("failed to decode QR: %w", err)
	}

	c.io.Printf("QR code: %s\n", code.Code)
	if code.URL != "" {
		c.io.Printf("Public URL: %s\n", code.URL)
	}
	return nil
}

func (c *Cli) runLegal(ctx context.Context, which string) error {
	var resp *api.Response
	if which == "terms" {
		resp = c.legal.Terms(ctx)
	} else {
		resp = c.legal.Privacy(ctx)
	}
	if !resp.Success {
		return fmt.Errorf("failed to load document: %s", resp.ErrorText())
	}

	var doc api.LegalContent
	if err := resp.DecodeData(&doc); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	c.io.Printf("=== %s ===\n", doc.Title)
	c.io.Println()
	c.io.Println(doc.Content)
	return nil
}
