package services

import (
	"context"

	"github.com/petcare-cl/petcare-cli/internal/client/api"
	pkgapi "github.com/petcare-cl/petcare-cli/pkg/api"
)

// Users covers the /users profile and settings endpoints. Profile get and
// update also exist on the auth controller, which additionally refreshes
// the session cache; screens that only display data use this service.
type Users struct {
	client *api.Client
}

// NewUsers creates the users service.
func NewUsers(client *api.Client) *Users {
	return &Users{client: client}
}

// Profile returns the authenticated user's profile.
func (s *Users) Profile(ctx context.Context) *pkgapi.Response {
	return s.client.Get(ctx, "/users/me", nil)
}

// UpdateProfile applies a partial profile update.
func (s *Users) UpdateProfile(ctx context.Context, req pkgapi.UpdateProfileRequest) *pkgapi.Response {
	return s.client.Post(ctx, "/users/me", req)
}

// UploadAvatar replaces the profile picture.
func (s *Users) UploadAvatar(ctx context.Context, image api.File, onProgress func(int)) *pkgapi.Response {
	return s.client.Upload(ctx, "/users/me/image", nil, []api.File{image}, onProgress)
}

// DeleteProfileImage removes the profile picture. The backend interprets a
// POST with an empty object as the removal.
func (s *Users) DeleteProfileImage(ctx context.Context) *pkgapi.Response {
	return s.client.Post(ctx, "/users/me/image", struct{}{})
}

// NotificationSettings returns the notification preferences.
func (s *Users) NotificationSettings(ctx context.Context) *pkgapi.Response {
	return s.client.Get(ctx, "/users/settings/notifications", nil)
}

// UpdateNotificationSettings replaces the notification preferences.
func (s *Users) UpdateNotificationSettings(ctx context.Context, req pkgapi.NotificationSettings) *pkgapi.Response {
	return s.client.Put(ctx, "/users/settings/notifications", req)
}

// Preferences returns the account preferences.
func (s *Users) Preferences(ctx context.Context) *pkgapi.Response {
	return s.client.Get(ctx, "/users/settings/preferences", nil)
}

// UpdatePreferences replaces the account preferences.
func (s *Users) UpdatePreferences(ctx context.Context, req pkgapi.Preferences) *pkgapi.Response {
	return s.client.Put(ctx, "/users/settings/preferences", req)
}

// SetLanguage changes the account language.
func (s *Users) SetLanguage(ctx context.Context, language string) *pkgapi.Response {
	return s.client.Put(ctx, "/users/settings/language", pkgapi.LanguageRequest{Language: language})
}
