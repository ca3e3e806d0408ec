package cli

import (
	"testing"
	"time"

	"github.com/gabapcia/walletsync/internal/session"
	"github.com/gabapcia/walletsync/internal/walletapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginCommand(t *testing.T) {
	t.Run("should log in with the given credentials", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		expires := time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC)
		f.sessions.EXPECT().Login(mock.Anything, session.LoginForm{Email: "a@b.c", Password: "secret"}).
			Return(session.Session{Token: "t0k", User: walletapi.User{Email: "a@b.c"}, ExpiresAt: expires}, nil).Once()

		// Act
		err := f.run(t, "login", "--email", "a@b.c", "--password", "secret")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, f.out.String(), "Logged in as a@b.c")
		assert.Contains(t, f.out.String(), "Session valid until 1/2/2030, 3:04:05 PM")
	})

	t.Run("should pass missing fields to validation", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		formErr := &session.FormError{Messages: []string{session.MsgFillAllFields}}
		f.sessions.EXPECT().Login(mock.Anything, session.LoginForm{Email: "a@b.c"}).Return(session.Session{}, formErr).Once()

		// Act
		err := f.run(t, "login", "--email", "a@b.c")

		// Assert
		assert.ErrorIs(t, err, formErr)
		assert.Equal(t, session.MsgFillAllFields, ErrorMessage(err))
		assert.Empty(t, f.out.String())
	})
}

func TestRegisterCommand(t *testing.T) {
	t.Run("should create the account", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		form := session.RegisterForm{
			Email:           "a@b.c",
			FirstName:       "Ada",
			LastName:        "Lovelace",
			Password:        "secret",
			ConfirmPassword: "secret",
		}
		f.sessions.EXPECT().Register(mock.Anything, form).Return(walletapi.CreatedUser{ID: "u1", Email: "a@b.c"}, nil).Once()

		// Act
		err := f.run(t, "register",
			"--email", "a@b.c",
			"--first-name", "Ada",
			"--last-name", "Lovelace",
			"--password", "secret",
			"--confirm-password", "secret",
		)

		// Assert
		require.NoError(t, err)
		assert.Contains(t, f.out.String(), "Account created for a@b.c")
	})
}

func TestLogoutCommand(t *testing.T) {
	t.Run("should remove the session", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.sessions.EXPECT().Logout(mock.Anything).Return(nil).Once()

		// Act
		err := f.run(t, "logout")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Logged out.\n", f.out.String())
	})
}

func TestMeCommand(t *testing.T) {
	t.Run("should print the refreshed profile", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.loggedIn()
		f.sessions.EXPECT().Refresh(mock.Anything).Return(session.Session{
			Token: "t0k",
			User:  walletapi.User{ID: "u1", Email: "a@b.c", FirstName: "Ada", LastName: "Lovelace"},
		}, nil).Once()

		// Act
		err := f.run(t, "me")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, f.out.String(), "a@b.c")
		assert.Contains(t, f.out.String(), "Ada Lovelace")
	})
}

func TestLoginCommand_Ephemeral(t *testing.T) {
	t.Run("should explain how to reuse the token", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.sessions.EXPECT().Login(mock.Anything, mock.Anything).
			Return(session.Session{Token: "t0k", User: walletapi.User{Email: "a@b.c"}}, nil).Once()

		app := New(f.sessions, f.wallet, WithOutput(f.out), WithEphemeralSessions())

		// Act
		err := app.Run(t.Context(), []string{"walletsync", "login", "--email", "a@b.c", "--password", "secret"})

		// Assert
		require.NoError(t, err)
		assert.Contains(t, f.out.String(), "WALLETSYNC_TOKEN=t0k")
		assert.NotContains(t, f.out.String(), "Session valid until")
	})
}
