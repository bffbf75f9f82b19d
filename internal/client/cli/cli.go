// Package cli implements the command front end over the session core and
// the domain services. Each command maps onto one screen-level flow of the
// mobile client.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/petcare-cl/petcare-cli/internal/client/auth"
	"github.com/petcare-cl/petcare-cli/internal/client/iocli"
	"github.com/petcare-cl/petcare-cli/internal/client/services"
)

// Cli wires the commands to the session controller and domain services.
type Cli struct {
	io            iocli.IO
	auth          *auth.Controller
	pets          *services.Pets
	appointments  *services.Appointments
	veterinaries  *services.Veterinaries
	medical       *services.Medical
	notifications *services.Notifications
	users         *services.Users
	qr            *services.QR
	legal         *services.Legal
}

// New creates the CLI front end.
func New(
	io iocli.IO,
	authController *auth.Controller,
	pets *services.Pets,
	appointments *services.Appointments,
	veterinaries *services.Veterinaries,
	medical *services.Medical,
	notifications *services.Notifications,
	users *services.Users,
	qr *services.QR,
	legal *services.Legal,
) *Cli {
	return &Cli{
		io:            io,
		auth:          authController,
		pets:          pets,
		appointments:  appointments,
		veterinaries:  veterinaries,
		medical:       medical,
		notifications: notifications,
		users:         users,
		qr:            qr,
		legal:         legal,
	}
}

// Run dispatches one command.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "register":
		return c.runRegister(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx, args)
	case "pets":
		return c.runPets(ctx, args)
	case "appointments":
		return c.runAppointments(ctx, args)
	case "medical":
		return c.runMedical(ctx, args)
	case "notifications":
		return c.runNotifications(ctx, args)
	case "qr":
		return c.runQR(ctx, args)
	case "terms":
		return c.runLegal(ctx, "terms")
	case "privacy":
		return c.runLegal(ctx, "privacy")
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints the command overview.
func PrintUsage(io iocli.IO) {
	io.Println("PetCare client")
	io.Println()
	io.Println("Usage: petcare [flags] <command> [args]")
	io.Println()
	io.Println("Session:")
	io.Println("  login                      Sign in and save the session")
	io.Println("  register                   Create an account")
	io.Println("  logout                     Delete the local session")
	io.Println("  status                     Show the session state")
	io.Println()
	io.Println("Account:")
	io.Println("  profile [edit]             Show or edit the profile")
	io.Println()
	io.Println("Pets:")
	io.Println("  pets [list]                List pets")
	io.Println("  pets show|add|delete       Manage pets")
	io.Println("  pets lost|found <id>       Report a pet lost / found")
	io.Println()
	io.Println("Care:")
	io.Println("  appointments [list|book|cancel]")
	io.Println("  medical <petId> | medical show <recordId>")
	io.Println("  notifications [list|read <id>|read-all]")
	io.Println("  qr show <petId> | qr scan <code>")
	io.Println()
	io.Println("  terms, privacy             Legal documents (public)")
}

// requireAuth resolves the startup validation before any protected command
// runs. Protected flows never execute while the state is undetermined.
func (c *Cli) requireAuth(ctx context.Context) error {
	snapshot := c.auth.Snapshot()
	if snapshot.Loading {
		c.auth.Bootstrap(ctx)
		snapshot = c.auth.Snapshot()
	}
	if !snapshot.Authenticated {
		return fmt.Errorf("not authenticated. Run 'petcare login' first")
	}
	return nil
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID: %q", what, arg)
	}
	return id, nil
}
