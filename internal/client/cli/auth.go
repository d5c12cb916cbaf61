package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/insula/internal/client/models"
	"github.com/dmitrijs2005/insula/internal/common"
)

// Login prompts for email and password and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email: %w", errRequired)
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		return fmt.Errorf("password: %w", errRequired)
	}

	if err := a.store.Login(ctx, email, string(password)); err != nil {
		return err
	}

	a.printf("Logged in as %s\n", a.store.State().User.FullName())
	return nil
}

// Register prompts for every profile field and creates the account.
func (a *App) Register(ctx context.Context) error {
	var in models.RegisterInput
	var err error

	if in.Email, err = a.required("Email"); err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	if len(password) == 0 {
		return fmt.Errorf("password: %w", errRequired)
	}
	in.Password = string(password)

	if in.FirstName, err = a.required("First name"); err != nil {
		return err
	}
	if in.LastName, err = a.required("Last name"); err != nil {
		return err
	}
	if in.BirthDay, err = a.requiredInt("Birth day"); err != nil {
		return err
	}
	if in.BirthMonth, err = a.requiredInt("Birth month"); err != nil {
		return err
	}
	if in.BirthYear, err = a.requiredInt("Birth year"); err != nil {
		return err
	}
	if in.Weight, err = a.requiredFloat("Weight (kg)"); err != nil {
		return err
	}
	if in.Height, err = a.requiredFloat("Height (cm)"); err != nil {
		return err
	}
	if in.GlucoseProfile, err = a.glucoseProfile(); err != nil {
		return err
	}

	if err := a.store.Register(ctx, in); err != nil {
		return err
	}

	a.printf("Account created. Welcome, %s!\n", a.store.State().User.FullName())
	return nil
}

// Logout drops the local session.
func (a *App) Logout(ctx context.Context) error {
	a.store.Logout(ctx)
	a.printf("Logged out\n")
	return nil
}

func (a *App) required(prompt string) (string, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("%s: %w", prompt, errRequired)
	}
	return s, nil
}

func (a *App) requiredInt(prompt string) (int, error) {
	v, ok, err := getInt(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%s: %w", prompt, errRequired)
	}
	return v, nil
}

func (a *App) requiredFloat(prompt string) (float64, error) {
	v, ok, err := getFloat(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%s: %w", prompt, errRequired)
	}
	return v, nil
}

func (a *App) glucoseProfile() (models.GlucoseProfile, error) {
	s, err := a.required("Glucose profile (hypo/normal/hyper)")
	if err != nil {
		return "", err
	}
	p, ok := models.ParseGlucoseProfile(s)
	if !ok {
		return "", fmt.Errorf("unknown glucose profile %q", s)
	}
	return p, nil
}
