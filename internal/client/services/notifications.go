package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/petcare-cl/petcare-cli/internal/client/api"
	pkgapi "github.com/petcare-cl/petcare-cli/pkg/api"
)

// Notifications covers the /notifications endpoints.
type Notifications struct {
	client *api.Client
}

// NewNotifications creates the notifications service.
func NewNotifications(client *api.Client) *Notifications {
	return &Notifications{client: client}
}

// List returns the owner's notifications.
func (s *Notifications) List(ctx context.Context, query url.Values) *pkgapi.Response {
	return s.client.Get(ctx, "/notifications", query)
}

// UnreadCount returns the number of unread notifications.
func (s *Notifications) UnreadCount(ctx context.Context) *pkgapi.Response {
	return s.client.Get(ctx, "/notifications/unread-count", nil)
}

// Create registers a reminder-style notification.
func (s *Notifications) Create(ctx context.Context, req pkgapi.NotificationRequest) *pkgapi.Response {
	return s.client.Post(ctx, "/notifications", req)
}

// MarkRead marks one notification as read.
func (s *Notifications) MarkRead(ctx context.Context, notificationID int64) *pkgapi.Response {
	return s.client.Put(ctx, fmt.Sprintf("/notifications/%d/read", notificationID), nil)
}

// MarkAllRead marks every notification as read.
func (s *Notifications) MarkAllRead(ctx context.Context) *pkgapi.Response {
	return s.client.Post(ctx, "/notifications/mark-all-read", nil)
}

// Delete removes one notification.
func (s *Notifications) Delete(ctx context.Context, notificationID int64) *pkgapi.Response {
	return s.client.Delete(ctx, fmt.Sprintf("/notifications/%d", notificationID))
}
