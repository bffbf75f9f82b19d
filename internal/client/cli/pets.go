package cli

import (
	"context"
	"fmt"

	"github.com/petcare-cl/petcare-cli/internal/client/services"
	"github.com/petcare-cl/petcare-cli/pkg/api"
)

func (c *Cli) runPets(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		return c.listPets(ctx)
	case "show":
		if len(args) < 1 {
			return fmt.Errorf("usage: petcare pets show <id>")
		}
		return c.showPet(ctx, args[0])
	case "add":
		return c.addPet(ctx)
	case "delete":
		if len(args) < 1 {
			return fmt.Errorf("usage: petcare pets delete <id>")
		}
		return c.deletePet(ctx, args[0])
	case "lost":
		if len(args) < 1 {
			return fmt.Errorf("usage: petcare pets lost <id>")
		}
		return c.reportLost(ctx, args[0])
	case "found":
		if len(args) < 1 {
			return fmt.Errorf("usage: petcare pets found <id>")
		}
		return c.reportFound(ctx, args[0])
	default:
		return fmt.Errorf("unknown pets subcommand: %s", sub)
	}
}

func (c *Cli) listPets(ctx context.Context) error {
	resp := c.pets.List(ctx, services.PetListOptions{})
	if !resp.Success {
		return fmt.Errorf("failed to list pets: %s", resp.ErrorText())
	}

	var pets []api.Pet
	if err := resp.DecodeData(&pets); err != nil {
		return fmt.Errorf("failed to decode pets: %w", err)
	}

	if len(pets) == 0 {
		c.io.Println("No pets registered yet. Run 'petcare pets add'.")
		return nil
	}

	c.io.Printf("=== Pets (%d) ===\n", len(pets))
	for _, pet := range pets {
		lost := ""
		if pet.IsLost {
			lost = "  [LOST]"
		}
		c.io.Printf("%4d  %-20s %s%s\n", pet.ID, pet.Name, pet.Species, lost)
	}
	return nil
}

func (c *Cli) showPet(ctx context.Context, arg string) error {
	petID, err := parseID(arg, "pet")
	if err != nil {
		return err
	}

	resp := c.pets.Get(ctx, petID)
	if !resp.Success {
		return fmt.Errorf("failed to load pet: %s", resp.ErrorText())
	}

	var pet api.Pet
	if err := resp.DecodeData(&pet); err != nil {
		return fmt.Errorf("failed to decode pet: %w", err)
	}

	c.io.Printf("=== %s ===\n", pet.Name)
	c.io.Printf("Species:   %s\n", pet.Species)
	if pet.Breed != "" {
		c.io.Printf("Breed:     %s\n", pet.Breed)
	}
	if pet.BirthDate != "" {
		c.io.Printf("Born:      %s\n", pet.BirthDate)
	}
	if pet.WeightKg > 0 {
		c.io.Printf("Weight:    %.1f kg\n", pet.WeightKg)
	}
	if pet.IsLost {
		c.io.Println("⚠️  This pet is reported LOST")
	}
	return nil
}

func (c *Cli) addPet(ctx context.Context) error {
	c.io.Println("=== Add Pet ===")
	c.io.Println()

	req := api.PetRequest{}
	var err error

	if req.Name, err = c.io.ReadInput("Name: "); err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if req.Species, err = c.io.ReadInput("Species (dog/cat/bird/rabbit/fish/reptile/other): "); err != nil {
		return fmt.Errorf("failed to read species: %w", err)
	}
	if req.Breed, err = c.io.ReadInput("Breed (optional): "); err != nil {
		return fmt.Errorf("failed to read breed: %w", err)
	}
	if req.BirthDate, err = c.io.ReadInput("Birth date (YYYY-MM-DD, optional): "); err != nil {
		return fmt.Errorf("failed to read birth date: %w", err)
	}

	resp := c.pets.Create(ctx, req)
	if !resp.Success {
		return fmt.Errorf("failed to create pet: %s", resp.ErrorText())
	}

	c.io.Println()
	c.io.Printf("✓ %s registered!\n", req.Name)
	return nil
}

func (c *Cli) deletePet(ctx context.Context, arg string) error {
	petID, err := parseID(arg, "pet")
	if err != nil {
		return err
	}

	ok, err := c.io.Confirm("Delete this pet and all of its records?")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	resp := c.pets.Delete(ctx, petID)
	if !resp.Success {
		return fmt.Errorf("failed to delete pet: %s", resp.ErrorText())
	}

	c.io.Println("✓ Pet deleted.")
	return nil
}

func (c *Cli) reportLost(ctx context.Context, arg string) error {
	petID, err := parseID(arg, "pet")
	if err != nil {
		return err
	}

	report := api.LostReport{}
	if report.Location, err = c.io.ReadInput("Last seen location (optional): "); err != nil {
		return fmt.Errorf("failed to read location: %w", err)
	}
	if report.Description, err = c.io.ReadInput("Description (optional): "); err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	resp := c.pets.ReportLost(ctx, petID, report)
	if !resp.Success {
		return fmt.Errorf("failed to report pet lost: %s", resp.ErrorText())
	}

	c.io.Println("✓ Pet reported lost. Anyone scanning its QR code will see your contact info.")
	return nil
}

func (c *Cli) reportFound(ctx context.Context, arg string) error {
	petID, err := parseID(arg, "pet")
	if err != nil {
		return err
	}

	resp := c.pets.ReportFound(ctx, petID)
	if !resp.Success {
		return fmt.Errorf("failed to report pet found: %s", resp.ErrorText())
	}

	c.io.Println("✓ Welcome home! The lost report has been cleared.")
	return nil
}
