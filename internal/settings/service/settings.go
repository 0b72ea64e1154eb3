package service

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"careconnect/internal/settings/repository"
	"careconnect/pkg/config"
	apperrors "careconnect/pkg/errors"
	"careconnect/pkg/model"
	"careconnect/pkg/sanitizer"
)

const (
	KeyRole        = "careconnect-role"
	KeyThemeMode   = "careconnect-theme-mode"
	KeyVisionTheme = "careconnect-vision-theme"
	KeyTextScale   = "careconnect-text-scale"

	maxOwnerLength = 254
)

type SettingsService interface {
	GetRole(ctx context.Context, owner string) (*model.UserRole, error)
	SetRole(ctx context.Context, owner string, role *model.UserRole) error
	GetThemeMode(ctx context.Context, owner string) (model.ThemeMode, error)
	SetThemeMode(ctx context.Context, owner string, mode model.ThemeMode) error
	GetVisionTheme(ctx context.Context, owner string) (model.VisionTheme, error)
	SetVisionTheme(ctx context.Context, owner string, theme model.VisionTheme) error
	GetTextScale(ctx context.Context, owner string) (float64, error)
	SetTextScale(ctx context.Context, owner string, scale float64) (float64, error)

	Get(ctx context.Context, owner string) (*model.Settings, error)
	Update(ctx context.Context, owner string, update model.SettingsUpdate) (*model.Settings, error)
}

type settingsService struct {
	store repository.KeyValueStore
	cfg   *config.Config
}

func NewSettingsService(store repository.KeyValueStore, cfg *config.Config) SettingsService {
	return &settingsService{
		store: store,
		cfg:   cfg,
	}
}

func normalizeOwner(owner string) (string, error) {
	owner = strings.TrimSpace(sanitizer.RemoveControlCharacters(owner))
	if owner == "" {
		return "", apperrors.InvalidInput("Owner cannot be empty")
	}
	if utf8.RuneCountInString(owner) > maxOwnerLength {
		return "", apperrors.InvalidInput("Owner is too long")
	}
	return owner, nil
}

func (s *settingsService) read(ctx context.Context, owner, key string) (string, bool, error) {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return "", false, err
	}
	value, ok, err := s.store.GetItem(ctx, owner, key)
	if err != nil {
		s.cfg.Log.Error("Failed to read setting", "key", key, "error", err)
		return "", false, apperrors.Internal("Failed to read settings", err)
	}
	return value, ok, nil
}

func (s *settingsService) write(ctx context.Context, owner, key, value string) error {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return err
	}
	if err := s.store.SetItem(ctx, owner, key, value); err != nil {
		s.cfg.Log.Error("Failed to write setting", "key", key, "error", err)
		return apperrors.Internal("Failed to save settings", err)
	}
	return nil
}

func (s *settingsService) GetRole(ctx context.Context, owner string) (*model.UserRole, error) {
	value, ok, err := s.read(ctx, owner, KeyRole)
	if err != nil || !ok {
		return nil, err
	}
	role := model.UserRole(value)
	if !role.Valid() {
		return nil, nil
	}
	return &role, nil
}

// SetRole stores role, or removes the stored role when role is nil or empty.
func (s *settingsService) SetRole(ctx context.Context, owner string, role *model.UserRole) error {
	if role == nil || *role == "" {
		normalized, err := normalizeOwner(owner)
		if err != nil {
			return err
		}
		if err := s.store.RemoveItem(ctx, normalized, KeyRole); err != nil {
			s.cfg.Log.Error("Failed to remove setting", "key", KeyRole, "error", err)
			return apperrors.Internal("Failed to save settings", err)
		}
		return nil
	}
	if !role.Valid() {
		return apperrors.InvalidInput("Unknown role: " + string(*role))
	}
	return s.write(ctx, owner, KeyRole, string(*role))
}

func (s *settingsService) GetThemeMode(ctx context.Context, owner string) (model.ThemeMode, error) {
	value, _, err := s.read(ctx, owner, KeyThemeMode)
	if err != nil {
		return "", err
	}
	if mode := model.ThemeMode(value); mode.Valid() {
		return mode, nil
	}
	return model.ThemeSystem, nil
}

func (s *settingsService) SetThemeMode(ctx context.Context, owner string, mode model.ThemeMode) error {
	if !mode.Valid() {
		return apperrors.InvalidInput("Unknown theme mode: " + string(mode))
	}
	return s.write(ctx, owner, KeyThemeMode, string(mode))
}

func (s *settingsService) GetVisionTheme(ctx context.Context, owner string) (model.VisionTheme, error) {
	value, _, err := s.read(ctx, owner, KeyVisionTheme)
	if err != nil {
		return "", err
	}
	if theme := model.VisionTheme(value); theme.Valid() {
		return theme, nil
	}
	return model.VisionNormal, nil
}

func (s *settingsService) SetVisionTheme(ctx context.Context, owner string, theme model.VisionTheme) error {
	if !theme.Valid() {
		return apperrors.InvalidInput("Unknown vision theme: " + string(theme))
	}
	return s.write(ctx, owner, KeyVisionTheme, string(theme))
}

// GetTextScale returns the stored scale clamped to the supported range.
// Missing or unparsable values yield the default.
func (s *settingsService) GetTextScale(ctx context.Context, owner string) (float64, error) {
	value, ok, err := s.read(ctx, owner, KeyTextScale)
	if err != nil {
		return 0, err
	}
	if !ok {
		return model.DefaultTextScale, nil
	}
	scale, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return model.DefaultTextScale, nil
	}
	return clampTextScale(scale), nil
}

// SetTextScale clamps scale, stores its shortest decimal form and returns the stored value.
func (s *settingsService) SetTextScale(ctx context.Context, owner string, scale float64) (float64, error) {
	scale = clampTextScale(scale)
	if err := s.write(ctx, owner, KeyTextScale, strconv.FormatFloat(scale, 'f', -1, 64)); err != nil {
		return 0, err
	}
	return scale, nil
}

func clampTextScale(v float64) float64 {
	return sanitizer.ClampFloat(v, model.MinTextScale, model.MaxTextScale, model.DefaultTextScale)
}

func (s *settingsService) Get(ctx context.Context, owner string) (*model.Settings, error) {
	normalized, err := normalizeOwner(owner)
	if err != nil {
		return nil, err
	}

	settings := &model.Settings{Owner: normalized}

	if settings.Role, err = s.GetRole(ctx, normalized); err != nil {
		return nil, err
	}
	if settings.ThemeMode, err = s.GetThemeMode(ctx, normalized); err != nil {
		return nil, err
	}
	if settings.VisionTheme, err = s.GetVisionTheme(ctx, normalized); err != nil {
		return nil, err
	}
	if settings.TextScale, err = s.GetTextScale(ctx, normalized); err != nil {
		return nil, err
	}

	return settings, nil
}

// Update validates every present field, then writes them in one transaction.
// A failed write leaves the stored settings unchanged.
func (s *settingsService) Update(ctx context.Context, owner string, update model.SettingsUpdate) (*model.Settings, error) {
	if _, err := normalizeOwner(owner); err != nil {
		return nil, err
	}

	if update.Role != nil && *update.Role != "" && !update.Role.Valid() {
		return nil, apperrors.InvalidInput("Unknown role: " + string(*update.Role))
	}
	if update.ThemeMode != nil && !update.ThemeMode.Valid() {
		return nil, apperrors.InvalidInput("Unknown theme mode: " + string(*update.ThemeMode))
	}
	if update.VisionTheme != nil && !update.VisionTheme.Valid() {
		return nil, apperrors.InvalidInput("Unknown vision theme: " + string(*update.VisionTheme))
	}

	err := s.store.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		if update.Role != nil {
			if err := s.SetRole(txCtx, owner, update.Role); err != nil {
				return err
			}
		}
		if update.ThemeMode != nil {
			if err := s.SetThemeMode(txCtx, owner, *update.ThemeMode); err != nil {
				return err
			}
		}
		if update.VisionTheme != nil {
			if err := s.SetVisionTheme(txCtx, owner, *update.VisionTheme); err != nil {
				return err
			}
		}
		if update.TextScale != nil {
			if _, err := s.SetTextScale(txCtx, owner, *update.TextScale); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		s.cfg.Log.Error("Failed to update settings", "error", err)
		return nil, apperrors.Internal("Failed to save settings", err)
	}

	s.cfg.Log.Info("Settings updated",
		"role", update.Role != nil,
		"theme_mode", update.ThemeMode != nil,
		"vision_theme", update.VisionTheme != nil,
		"text_scale", update.TextScale != nil,
	)

	return s.Get(ctx, owner)
}
