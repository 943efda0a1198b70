package prefs

import (
	"context"

	"github.com/ifti227i/RideShareX/internal/client/store"
	"github.com/ifti227i/RideShareX/internal/common"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const themeVersion = 1

type ThemeStore struct {
	st store.Store
}

// Get returns the stored theme, light when none is set.
func (t *ThemeStore) Get(ctx context.Context) (Theme, error) {
	theme, ok, err := store.Load[Theme](ctx, t.st, store.KeyTheme, themeVersion)
	if err != nil {
		return "", err
	}
	if !ok || (theme != ThemeLight && theme != ThemeDark) {
		return ThemeLight, nil
	}
	return theme, nil
}

func (t *ThemeStore) Set(ctx context.Context, theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return common.NewValidationError("theme", common.RuleOneOf, "theme must be light or dark")
	}
	return store.Save(ctx, t.st, store.KeyTheme, themeVersion, theme)
}

// Toggle flips the theme and returns the new value.
func (t *ThemeStore) Toggle(ctx context.Context) (Theme, error) {
	cur, err := t.Get(ctx)
	if err != nil {
		return "", err
	}
	next := ThemeDark
	if cur == ThemeDark {
		next = ThemeLight
	}
	return next, t.Set(ctx, next)
}
