package cli

import (
	"context"

	"github.com/gabapcia/walletsync/internal/config"
	"github.com/gabapcia/walletsync/internal/session"
	"github.com/gabapcia/walletsync/internal/valuefmt"

	"github.com/urfave/cli/v3"
)

// loginCommand authenticates and stores the session of the active profile.
//
// Usage example:
//
//	walletsync login --email alice@example.com --password secret
func (h *handler) loginCommand() *cli.Command {
	return &cli.Command{
		Name:        "login",
		Description: "Log in and store the session of the active profile.",
		Usage:       "Authenticates with email and password.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "Account email"},
			&cli.StringFlag{Name: "password", Usage: "Account password"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			sess, err := h.sessions.Login(ctx, session.LoginForm{
				Email:    c.String("email"),
				Password: c.String("password"),
			})
			if err != nil {
				return err
			}

			h.printf("Logged in as %s\n", sess.User.Email)
			if !sess.ExpiresAt.IsZero() {
				h.printf("Session valid until %s\n", sess.ExpiresAt.In(h.loc).Format(valuefmt.DisplayLayout))
			}
			if h.ephemeral {
				h.printf("Sessions are not stored. Reuse this one with %s_TOKEN=%s\n", config.Prefix, sess.Token)
			}
			return nil
		},
	}
}

// registerCommand creates an account. It does not log in.
//
// Usage example:
//
//	walletsync register --email alice@example.com --first-name Alice --last-name Doe \
//	    --password secret --confirm-password secret
func (h *handler) registerCommand() *cli.Command {
	return &cli.Command{
		Name:        "register",
		Description: "Create a new account. Log in afterwards to use it.",
		Usage:       "Registers a new user.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Usage: "Account email"},
			&cli.StringFlag{Name: "first-name", Usage: "First name"},
			&cli.StringFlag{Name: "last-name", Usage: "Last name"},
			&cli.StringFlag{Name: "password", Usage: "Password, at least 6 characters"},
			&cli.StringFlag{Name: "confirm-password", Usage: "Password again"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			user, err := h.sessions.Register(ctx, session.RegisterForm{
				Email:           c.String("email"),
				FirstName:       c.String("first-name"),
				LastName:        c.String("last-name"),
				Password:        c.String("password"),
				ConfirmPassword: c.String("confirm-password"),
			})
			if err != nil {
				return err
			}

			h.printf("Account created for %s. You can now log in.\n", user.Email)
			return nil
		},
	}
}

func (h *handler) logoutCommand() *cli.Command {
	return &cli.Command{
		Name:        "logout",
		Description: "Remove the session of the active profile.",
		Usage:       "Logs out.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := h.sessions.Logout(ctx); err != nil {
				return err
			}

			h.println("Logged out.")
			return nil
		},
	}
}

// meCommand reloads and prints the profile of the logged in user.
func (h *handler) meCommand() *cli.Command {
	return &cli.Command{
		Name:        "me",
		Description: "Show the profile of the logged in user.",
		Usage:       "Prints the current user.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := h.requireSession(ctx); err != nil {
				return err
			}

			sess, err := h.sessions.Refresh(ctx)
			if err != nil {
				return err
			}

			renderUser(h.out, sess.User)
			return nil
		},
	}
}
