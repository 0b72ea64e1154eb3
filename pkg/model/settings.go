package model

type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark || m == ThemeSystem
}

type VisionTheme string

const (
	VisionNormal       VisionTheme = "normal"
	VisionSepia        VisionTheme = "sepia"
	VisionHighContrast VisionTheme = "highContrast"
)

func (v VisionTheme) Valid() bool {
	return v == VisionNormal || v == VisionSepia || v == VisionHighContrast
}

func (r UserRole) Valid() bool {
	return r == RoleCaregiver || r == RolePatient
}

const (
	MinTextScale     = 0.85
	MaxTextScale     = 1.6
	DefaultTextScale = 1.0
)

// Settings is the resolved view of an owner's preferences with defaults applied.
// Role is nil when no valid role is stored.
type Settings struct {
	Owner       string      `json:"owner"`
	Role        *UserRole   `json:"role"`
	ThemeMode   ThemeMode   `json:"themeMode"`
	VisionTheme VisionTheme `json:"visionTheme"`
	TextScale   float64     `json:"textScale"`
}

// SettingsUpdate carries a partial update. An empty Role clears it.
type SettingsUpdate struct {
	Role        *UserRole    `json:"role,omitempty"`
	ThemeMode   *ThemeMode   `json:"themeMode,omitempty"`
	VisionTheme *VisionTheme `json:"visionTheme,omitempty"`
	TextScale   *float64     `json:"textScale,omitempty"`
}
