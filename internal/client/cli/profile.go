package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/insula/internal/client/models"
	"github.com/dmitrijs2005/insula/internal/client/session"
)

// Status prints whether a session is active, when it was last saved and,
// for JWT tokens, when it was issued and expires.
func (a *App) Status(ctx context.Context) error {
	st := a.store.State()
	if !st.IsAuthenticated || st.User == nil {
		a.printf("Not logged in\n")
		return nil
	}

	a.printf("Logged in as %s <%s>\n", st.User.FullName(), st.User.Email)
	if at, ok := a.store.SavedAt(ctx); ok {
		a.printf("Session saved %s\n", at.Local().Format(time.DateTime))
	}
	claims, ok := session.ParseTokenClaims(st.Token)
	if !ok {
		return nil
	}
	if !claims.IssuedAt.IsZero() {
		a.printf("Session started %s\n", claims.IssuedAt.Local().Format(time.DateTime))
	}
	if !claims.ExpiresAt.IsZero() {
		if claims.Expired(time.Now()) {
			a.printf("Session expired %s, log in again\n", claims.ExpiresAt.Local().Format(time.DateTime))
		} else {
			a.printf("Session expires %s\n", claims.ExpiresAt.Local().Format(time.DateTime))
		}
	}
	return nil
}

// Profile shows the profile, or edits it with "profile edit".
func (a *App) Profile(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return session.ErrNotAuthenticated
	}
	if len(args) > 0 && args[0] == "edit" {
		return a.editProfile(ctx)
	}
	a.printProfile(a.store.State().User)
	return nil
}

func (a *App) printProfile(u *models.User) {
	if u == nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Name:            %s\n", u.FullName())
	fmt.Fprintf(&b, "Email:           %s\n", u.Email)
	fmt.Fprintf(&b, "Birth date:      %04d-%02d-%02d\n", u.BirthYear, u.BirthMonth, u.BirthDay)
	fmt.Fprintf(&b, "Weight:          %g kg\n", u.Weight)
	fmt.Fprintf(&b, "Height:          %g cm\n", u.Height)
	fmt.Fprintf(&b, "Glucose profile: %s\n", u.GlucoseProfile)
	if u.GlucoseTarget != nil {
		fmt.Fprintf(&b, "Target range:    %g-%g mg/dL\n", u.GlucoseTarget.MinTarget, u.GlucoseTarget.MaxTarget)
	}
	fmt.Fprintf(&b, "Diabetes type:   %s\n", u.DiabetesType())
	if d := u.DiagnosisDate(); d != "" {
		fmt.Fprintf(&b, "Diagnosed:       %s\n", d)
	}
	if d := u.TreatingDoctor(); d != "" {
		fmt.Fprintf(&b, "Doctor:          %s\n", d)
	}
	if u.ImageURL != "" {
		fmt.Fprintf(&b, "Image:           %s\n", u.ImageURL)
	}
	a.printf("%s", b.String())
}

// editProfile prompts for each editable field; empty answers keep the
// current value and only changed fields are sent.
func (a *App) editProfile(ctx context.Context) error {
	a.printf("Press Enter to keep the current value.\n")
	u := a.store.State().User
	var in models.UpdateProfileInput
	changed := false

	text := func(label, current string, dst **string) error {
		s, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), a.out)
		if err != nil {
			return err
		}
		if s != "" && s != current {
			*dst = &s
			changed = true
		}
		return nil
	}
	integer := func(label string, current int, dst **int) error {
		v, ok, err := getInt(a.reader, fmt.Sprintf("%s [%d]", label, current), a.out)
		if err != nil {
			return err
		}
		if ok && v != current {
			*dst = &v
			changed = true
		}
		return nil
	}
	decimal := func(label string, current float64, dst **float64) error {
		v, ok, err := getFloat(a.reader, fmt.Sprintf("%s [%g]", label, current), a.out)
		if err != nil {
			return err
		}
		if ok && v != current {
			*dst = &v
			changed = true
		}
		return nil
	}

	steps := []func() error{
		func() error { return text("First name", u.FirstName, &in.FirstName) },
		func() error { return text("Last name", u.LastName, &in.LastName) },
		func() error { return integer("Birth day", u.BirthDay, &in.BirthDay) },
		func() error { return integer("Birth month", u.BirthMonth, &in.BirthMonth) },
		func() error { return integer("Birth year", u.BirthYear, &in.BirthYear) },
		func() error { return decimal("Weight (kg)", u.Weight, &in.Weight) },
		func() error { return decimal("Height (cm)", u.Height, &in.Height) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	s, err := getSimpleText(a.reader, fmt.Sprintf("Glucose profile [%s]", u.GlucoseProfile), a.out)
	if err != nil {
		return err
	}
	if s != "" {
		p, ok := models.ParseGlucoseProfile(s)
		if !ok {
			return fmt.Errorf("unknown glucose profile %q", s)
		}
		if p != u.GlucoseProfile {
			in.GlucoseProfile = &p
			changed = true
		}
	}

	medical, err := a.editMedicalInfo(u)
	if err != nil {
		return err
	}
	if medical != nil {
		in.MedicalInfo = medical
		changed = true
	}

	if !changed {
		a.printf("Nothing to update\n")
		return nil
	}
	if err := a.store.UpdateProfile(ctx, in); err != nil {
		return err
	}
	a.printf("Profile updated\n")
	return nil
}

// editMedicalInfo returns the full medical info when any part changed.
func (a *App) editMedicalInfo(u *models.User) (*models.MedicalInfo, error) {
	current := models.MedicalInfo{
		DiabetesType:   u.DiabetesType(),
		DiagnosisDate:  u.DiagnosisDate(),
		TreatingDoctor: u.TreatingDoctor(),
	}
	next := current

	date, err := getSimpleText(a.reader, fmt.Sprintf("Diagnosis date (YYYY-MM-DD) [%s]", current.DiagnosisDate), a.out)
	if err != nil {
		return nil, err
	}
	if date != "" {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return nil, fmt.Errorf("diagnosis date: expected YYYY-MM-DD, got %q", date)
		}
		next.DiagnosisDate = date
	}

	doctor, err := getSimpleText(a.reader, fmt.Sprintf("Treating doctor [%s]", current.TreatingDoctor), a.out)
	if err != nil {
		return nil, err
	}
	if doctor != "" {
		next.TreatingDoctor = doctor
	}

	if next == current {
		return nil, nil
	}
	return &next, nil
}

// Target sets the glucose target range.
func (a *App) Target(ctx context.Context) error {
	if !a.isLoggedIn() {
		return session.ErrNotAuthenticated
	}
	lo, err := a.requiredFloat("Minimum target (mg/dL)")
	if err != nil {
		return err
	}
	hi, err := a.requiredFloat("Maximum target (mg/dL)")
	if err != nil {
		return err
	}
	if err := a.store.UpdateGlucoseTarget(ctx, models.GlucoseTarget{MinTarget: lo, MaxTarget: hi}); err != nil {
		return err
	}
	a.printf("Target range set to %g-%g mg/dL\n", lo, hi)
	return nil
}

// Image points the profile at an already uploaded image URL.
func (a *App) Image(ctx context.Context) error {
	if !a.isLoggedIn() {
		return session.ErrNotAuthenticated
	}
	url, err := a.required("Image URL")
	if err != nil {
		return err
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("image URL must start with http:// or https://")
	}
	if err := a.store.UpdateProfileImage(ctx, url); err != nil {
		return err
	}
	a.printf("Profile image updated\n")
	return nil
}

// Delete removes the account after the user types the email back.
func (a *App) Delete(ctx context.Context) error {
	if !a.isLoggedIn() {
		return session.ErrNotAuthenticated
	}
	email := a.store.State().User.Email
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Type %s to delete your account", email), a.out)
	if err != nil {
		return err
	}
	if answer != email {
		return errAborted
	}
	if err := a.store.DeleteAccount(ctx); err != nil {
		return err
	}
	a.printf("Account deleted\n")
	return nil
}
