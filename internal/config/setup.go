package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Setup interactively prompts for a tracker domain and credentials and
// returns the resulting single-context config file. Nothing is written
// to disk; the caller stores the result.
func Setup() (File, error) {
	var domain, kind string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Jira domain to connect to").
				Placeholder("https://yourcompany.atlassian.net").
				Validate(notEmpty("a domain is required")).
				Value(&domain),
			huh.NewSelect[string]().
				Title("Authorization method").
				Options(
					huh.NewOption("Access token", AuthKindAccessToken),
					huh.NewOption("Api token", AuthKindAPIToken),
				).
				Value(&kind),
		),
	)
	if err := form.Run(); err != nil {
		return File{}, fmt.Errorf("reading setup input: %w", err)
	}

	var auth Authorization
	var err error
	switch kind {
	case AuthKindAPIToken:
		auth, err = promptAPIToken()
	case AuthKindAccessToken:
		auth, err = promptAccessToken()
	default:
		err = errors.New("an invalid authorization method was selected")
	}
	if err != nil {
		return File{}, err
	}

	return SingleContext(Context{
		Authorization: auth,
		JiraDomain:    domain,
	}), nil
}

func promptAPIToken() (Authorization, error) {
	var username, token, confirm string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Validate(notEmpty("a username is required")).
				Value(&username),
			huh.NewInput().
				Title("Api token").
				EchoMode(huh.EchoModePassword).
				Validate(notEmpty("an api token is required")).
				Value(&token),
			huh.NewInput().
				Title("Api token confirmation").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s != token {
						return errors.New("the confirmation differed from the entered api token")
					}
					return nil
				}).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return Authorization{}, fmt.Errorf("reading setup input: %w", err)
	}

	return Authorization{
		Kind:     AuthKindAPIToken,
		Username: username,
		APIToken: token,
	}, nil
}

func promptAccessToken() (Authorization, error) {
	var token, confirm string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Access token").
				EchoMode(huh.EchoModePassword).
				Validate(notEmpty("an access token is required")).
				Value(&token),
			huh.NewInput().
				Title("Access token confirmation").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if s != token {
						return errors.New("the confirmation differed from the entered access token")
					}
					return nil
				}).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return Authorization{}, fmt.Errorf("reading setup input: %w", err)
	}

	return Authorization{
		Kind:        AuthKindAccessToken,
		AccessToken: token,
	}, nil
}

func notEmpty(msg string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(msg)
		}
		return nil
	}
}
