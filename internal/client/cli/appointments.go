package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/petcare-cl/petcare-cli/internal/validation"
	"github.com/petcare-cl/petcare-cli/pkg/api"
)

func (c *Cli) runAppointments(ctx context.Context, args []string) error {
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
		return c.listAppointments(ctx)
	case "book":
		return c.bookAppointment(ctx)
	case "cancel":
		if len(args) < 1 {
			return fmt.Errorf("usage: petcare appointments cancel <id>")
		}
		return c.cancelAppointment(ctx, args[0])
	default:
		return fmt.Errorf("unknown appointments subcommand: %s", sub)
	}
}

func (c *Cli) listAppointments(ctx context.Context) error {
	resp := c.appointments.List(ctx, nil)
	if !resp.Success {
		return fmt.Errorf("failed to list appointments: %s", resp.ErrorText())
	}

	var appointments []api.Appointment
	if err := resp.DecodeData(&appointments); err != nil {
		return fmt.Errorf("failed to decode appointments: %w", err)
	}

	if len(appointments) == 0 {
		c.io.Println("No appointments scheduled.")
		return nil
	}

	c.io.Printf("=== Appointments (%d) ===\n", len(appointments))
	for _, appt := range appointments {
		c.io.Printf("%4d  %s  %-10s %s (%s)\n",
			appt.ID,
			appt.ScheduledAt.Format("2006-01-02 15:04"),
			appt.Status,
			appt.Reason,
			appt.PetName,
		)
	}
	return nil
}

func (c *Cli) bookAppointment(ctx context.Context) error {
	c.io.Println("=== Book Appointment ===")
	c.io.Println()

	req := api.AppointmentRequest{}

	petArg, err := c.io.ReadInput("Pet ID: ")
	if err != nil {
		return fmt.Errorf("failed to read pet ID: %w", err)
	}
	if req.PetID, err = parseID(petArg, "pet"); err != nil {
		return err
	}

	vetArg, err := c.io.ReadInput("Veterinary ID (see 'petcare appointments' docs): ")
	if err != nil {
		return fmt.Errorf("failed to read veterinary ID: %w", err)
	}
	if req.VeterinaryID, err = parseID(vetArg, "veterinary"); err != nil {
		return err
	}

	when, err := c.io.ReadInput("Date and time (2006-01-02 15:04): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}
	req.ScheduledAt, err = time.ParseInLocation("2006-01-02 15:04", when, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", when, err)
	}

	if req.Reason, err = c.io.ReadInput("Reason: "); err != nil {
		return fmt.Errorf("failed to read reason: %w", err)
	}

	if err := validation.Appointment(req); err != nil {
		return err
	}

	resp := c.appointments.Create(ctx, req)
	if !resp.Success {
		return fmt.Errorf("failed to book appointment: %s", resp.ErrorText())
	}

	c.io.Println()
	c.io.Println("✓ Appointment booked!")
	return nil
}

func (c *Cli) cancelAppointment(ctx context.Context, arg string) error {
	appointmentID, err := parseID(arg, "appointment")
	if err != nil {
		return err
	}

	resp := c.appointments.Cancel(ctx, appointmentID)
	if !resp.Success {
		return fmt.Errorf("failed to cancel appointment: %s", resp.ErrorText())
	}

	c.io.Println("✓ Appointment cancelled.")
	return nil
}
