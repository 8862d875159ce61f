package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/starford/tubetrack/internal/apperr"
	"github.com/starford/tubetrack/internal/models"
)

// ProfileInput is the editable part of the profile.
type ProfileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks the profile form.
func (in ProfileInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
	)
}

// PasswordInput is the change-password form.
type PasswordInput struct {
	Current string `json:"currentPassword"`
	New     string `json:"newPassword"`
	Confirm string `json:"confirmPassword"`
}

// Validate checks the form. The new password must be typed twice.
func (in PasswordInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Current, validation.Required),
		validation.Field(&in.New, validation.Required),
		validation.Field(&in.Confirm, validation.Required, validation.By(func(any) error {
			if in.Confirm != in.New {
				return errPasswordMismatch
			}
			return nil
		})),
	)
}

var errPasswordMismatch = errors.New("new passwords don't match")

// ProfileStats are the learning totals shown on the profile page.
type ProfileStats struct {
	TotalVideos     int    `json:"totalVideos"`
	CompletedVideos int    `json:"completedVideos"`
	TotalWatchTime  string `json:"totalWatchTime"`
	Streak          int    `json:"streak"`
	GoalsCompleted  int    `json:"goalsCompleted"`
}

// ProfileView is the profile page.
type ProfileView struct {
	models.UserProfile
	Stats ProfileStats `json:"stats"`
}

// GetProfile returns the profile with its learning totals.
func (s *Service) GetProfile(_ context.Context) ProfileView {
	t := s.totals()
	goalsDone := 0
	for _, g := range s.goals.All() {
		if g.Status == models.GoalStatusCompleted {
			goalsDone++
		}
	}
	return ProfileView{
		UserProfile: s.profile.Get(),
		Stats: ProfileStats{
			TotalVideos:     t.videos,
			CompletedVideos: t.completed,
			TotalWatchTime:  t.watchTime(),
			Streak:          s.streak(),
			GoalsCompleted:  goalsDone,
		},
	}
}

// UpdateProfile saves the name and email.
func (s *Service) UpdateProfile(ctx context.Context, in ProfileInput) (models.UserProfile, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := in.Validate(); err != nil {
		return models.UserProfile{}, s.invalid("Invalid profile", err.Error(), err)
	}
	p, _ := s.profile.Update(func(p models.UserProfile) (models.UserProfile, error) {
		p.Name = in.Name
		p.Email = in.Email
		return p, nil
	})
	s.record(ctx, models.ActivityProfile, "Profile updated", "")
	s.success("Profile updated", "Your profile information has been saved successfully.")
	return p, nil
}

// ChangePassword checks the form and reports success. No password is kept.
func (s *Service) ChangePassword(_ context.Context, in PasswordInput) error {
	if err := in.Validate(); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) && errors.Is(verrs["confirmPassword"], errPasswordMismatch) {
			return s.invalid("Error", "New passwords don't match.", err)
		}
		return s.invalid("Missing Information", "Please fill in all password fields.", err)
	}
	s.success("Password changed", "Your password has been updated successfully.")
	return nil
}

// TogglePreference flips one notification preference.
func (s *Service) TogglePreference(_ context.Context, name string) (models.Preferences, error) {
	p, err := s.profile.Update(func(p models.UserProfile) (models.UserProfile, error) {
		if !p.Preferences.Toggle(name) {
			return p, fmt.Errorf("preference %q: %w", name, apperr.ErrNotFound)
		}
		return p, nil
	})
	if err != nil {
		return models.Preferences{}, s.fail("toggle preference", err)
	}
	s.success("Preferences updated", "Your notification preferences have been saved.")
	return p.Preferences, nil
}

// ConnectYouTube marks the YouTube account as connected under email.
// Nothing is contacted.
func (s *Service) ConnectYouTube(_ context.Context, email string) (models.YouTubeAccount, error) {
	email = strings.TrimSpace(email)
	err := validation.Validate(email, validation.Required, is.EmailFormat)
	if err != nil {
		return models.YouTubeAccount{}, s.invalid("Missing Information", "Please enter your YouTube account email.",
			validation.Errors{"email": err})
	}
	p, _ := s.profile.Update(func(p models.UserProfile) (models.UserProfile, error) {
		p.ConnectedAccounts.YouTube = models.YouTubeAccount{Connected: true, Email: email}
		return p, nil
	})
	s.success("YouTube connected", "You can now import playlists from your YouTube account.")
	return p.ConnectedAccounts.YouTube, nil
}

// DisconnectYouTube clears the YouTube connection.
func (s *Service) DisconnectYouTube(_ context.Context) models.YouTubeAccount {
	p, _ := s.profile.Update(func(p models.UserProfile) (models.UserProfile, error) {
		p.ConnectedAccounts.YouTube = models.YouTubeAccount{}
		return p, nil
	})
	s.success("YouTube disconnected", "Your YouTube account has been disconnected.")
	return p.ConnectedAccounts.YouTube
}
