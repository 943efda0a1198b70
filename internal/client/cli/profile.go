package cli

import (
	"context"
	"fmt"

	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/services"
)

// clearValue, entered at an edit prompt, empties an optional field.
const clearValue = "-"

// Profile shows the current user, refreshed from the API when possible.
func (a *App) Profile(ctx context.Context) error {
	u, src, err := a.profile.Refresh(ctx)
	if err != nil {
		return err
	}
	_, hasPicture, err := a.profile.Picture(ctx)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	fmt.Fprintf(tw, "ID:\t%s\n", u.ID)
	fmt.Fprintf(tw, "Username:\t%s\n", u.Username)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Phone:\t%s\n", orDash(u.Phone))
	fmt.Fprintf(tw, "Address:\t%s\n", orDash(u.Address))
	fmt.Fprintf(tw, "Bio:\t%s\n", orDash(u.Bio))
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(tw, "Member since:\t%s\n", u.CreatedAt.Format("2006-01-02"))
	}
	if hasPicture {
		fmt.Fprintf(tw, "Picture:\tset\n")
	} else {
		fmt.Fprintf(tw, "Picture:\tnot set\n")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if src == services.SourceLocalFallback {
		fmt.Fprintln(a.out, "(saved profile, the server was not asked)")
	}
	return nil
}

// EditProfile prompts for each field. An empty answer keeps the current
// value; "-" clears an optional field.
func (a *App) EditProfile(ctx context.Context) error {
	u, err := a.profile.Get(ctx)
	if err != nil {
		return err
	}

	var update models.ProfileUpdate
	fields := []struct {
		label    string
		current  string
		optional bool
		dst      **string
	}{
		{"Username", u.Username, false, &update.Username},
		{"Email", u.Email, false, &update.Email},
		{"Phone", u.Phone, true, &update.Phone},
		{"Address", u.Address, true, &update.Address},
		{"Bio", u.Bio, true, &update.Bio},
	}

	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, f.current), a.out)
		if err != nil {
			return err
		}
		switch {
		case v == "":
			continue
		case v == clearValue && f.optional:
			v = ""
		}
		if v != f.current {
			*f.dst = &v
		}
	}

	if update.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing to change")
		return nil
	}

	updated, src, err := a.profile.Update(ctx, update)
	if err != nil {
		return err
	}
	a.setUser(updated.Username)

	if src == services.SourceRemote {
		fmt.Fprintln(a.out, "Profile updated")
	} else {
		fmt.Fprintln(a.out, "Profile updated on this device only")
	}
	return nil
}

// SetPicture stores the image at path as the profile picture.
func (a *App) SetPicture(ctx context.Context, path string) error {
	if err := a.profile.SetPictureFile(ctx, path); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile picture updated")
	return nil
}

func (a *App) ClearPicture(ctx context.Context) error {
	if err := a.profile.ClearPicture(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile picture removed")
	return nil
}
