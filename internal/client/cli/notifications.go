package cli

import (
	"context"
	"fmt"

	"github.com/petcare-cl/petcare-cli/pkg/api"
)

func (c *Cli) runNotifications(ctx context.Context, args []string) error {
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
		return c.listNotifications(ctx)
	case "read":
		if len(args) < 1 {
			return fmt.Errorf("usage: petcare notifications read <id>")
		}
		id, err := parseID(args[0], "notification")
		if err != nil {
			return err
		}
		resp := c.notifications.MarkRead(ctx, id)
		if !resp.Success {
			return fmt.Errorf("failed to mark notification read: %s", resp.ErrorText())
		}
		c.io.Println("✓ Marked as read.")
		return nil
	case "read-all":
		resp := c.notifications.MarkAllRead(ctx)
		if !resp.Success {
			return fmt.Errorf("failed to mark notifications read: %s", resp.ErrorText())
		}
		c.io.Println("✓ All notifications marked as read.")
		return nil
	default:
		return fmt.Errorf("unknown notifications subcommand: %s", sub)
	}
}

func (c *Cli) listNotifications(ctx context.Context) error {
	resp := c.notifications.List(ctx, nil)
	if !resp.Success {
		return fmt.Errorf("failed to list notifications: %s", resp.ErrorText())
	}

	var notifications []api.Notification
	if err := resp.DecodeData(&notifications); err != nil {
		return fmt.Errorf("failed to decode notifications: %w", err)
	}

	if len(notifications) == 0 {
		c.io.Println("No notifications.")
		return nil
	}

	c.io.Printf("=== Notifications (%d) ===\n", len(notifications))
	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		c.io.Printf("%s %4d  %s  %s\n", marker, n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Title)
	}
	return nil
}
