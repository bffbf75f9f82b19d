package cli

import (
	"context"
	"fmt"

	"github.com/petcare-cl/petcare-cli/pkg/api"
)

func (c *Cli) runMedical(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if len(args) < 1 {
		return fmt.Errorf("usage: petcare medical <petId> | petcare medical show <recordId>")
	}

	if args[0] == "show" {
		if len(args) < 2 {
			return fmt.Errorf("usage: petcare medical show <recordId>")
		}
		return c.showRecord(ctx, args[1])
	}
	return c.listRecords(ctx, args[0])
}

func (c *Cli) listRecords(ctx context.Context, arg string) error {
	petID, err := parseID(arg, "pet")
	if err != nil {
		return err
	}

	resp := c.medical.RecordsForPet(ctx, petID)
	if !resp.Success {
		return fmt.Errorf("failed to list medical records: %s", resp.ErrorText())
	}

	var records []api.MedicalRecord
	if err := resp.DecodeData(&records); err != nil {
		return fmt.Errorf("failed to decode medical records: %w", err)
	}

	if len(records) == 0 {
		c.io.Println("No medical records for this pet.")
		return nil
	}

	c.io.Printf("=== Medical Records (%d) ===\n", len(records))
	for _, record := range records {
		c.io.Printf("%4d  %s  %-12s %s\n",
			record.ID,
			record.Date.Format("2006-01-02"),
			record.Type,
			record.Title,
		)
	}
	return nil
}

func (c *Cli) showRecord(ctx context.Context, arg string) error {
	recordID, err := parseID(arg, "record")
	if err != nil {
		return err
	}

	resp := c.medical.Record(ctx, recordID)
	if !resp.Success {
		return fmt.Errorf("failed to load medical record: %s", resp.ErrorText())
	}

	var record api.MedicalRecord
	if err := resp.DecodeData(&record); err != nil {
		return fmt.Errorf("failed to decode medical record: %w", err)
	}

	c.io.Printf("=== %s ===\n", record.Title)
	c.io.Printf("Date: %s\n", record.Date.Format("2006-01-02"))
	c.io.Printf("Type: %s\n", record.Type)
	if record.VetName != "" {
		c.io.Printf("Vet:  %s\n", record.VetName)
	}
	if record.Description != "" {
		c.io.Println()
		c.io.Println(record.Description)
	}
	if len(record.Photos) > 0 {
		c.io.Printf("\nPhotos: %d attached\n", len(record.Photos))
	}
	return nil
}
