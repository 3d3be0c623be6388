package cli

import (
	"errors"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"

	"github.com/terraincognita07/autonomie/internal/security"
	"github.com/terraincognita07/autonomie/internal/services"
)

const temporaryPasswordLength = 12

var ErrUnknownCommand = errors.New("unknown command")

type PasswordSetter interface {
	SetPassword(email string, password string) error
}

type AdminPromoter interface {
	EnsureOwnerAdmin(email string) (bool, error)
}

// Runner executes the operator commands against an opened store.
type Runner struct {
	Passwords PasswordSetter
	Admins    AdminPromoter
	Stdin     *os.File
	Stdout    io.Writer
}

// IsCommand reports whether name is one of the operator subcommands.
func IsCommand(name string) bool {
	switch name {
	case "reset-password", "set-password", "promote-admin":
		return true
	default:
		return false
	}
}

func (runner Runner) Run(args []string) error {
	if len(args) == 0 || !IsCommand(args[0]) {
		return ErrUnknownCommand
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: autonomie %s <email>", args[0])
	}

	email, err := commandEmail(args[1])
	if err != nil {
		return err
	}
	switch args[0] {
	case "reset-password":
		return runner.ResetPassword(email)
	case "set-password":
		return runner.SetPassword(email)
	default:
		return runner.PromoteAdmin(email)
	}
}

// ResetPassword replaces the password with a temporary one printed once.
func (runner Runner) ResetPassword(email string) error {
	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	if err := runner.Passwords.SetPassword(email, temporaryPassword); err != nil {
		return accountError(email, err)
	}

	fmt.Fprintln(runner.Stdout, "Password reset successful")
	fmt.Fprintf(runner.Stdout, "Temporary password: %s\n", temporaryPassword)
	return nil
}

// SetPassword asks twice for the new password without echoing it.
func (runner Runner) SetPassword(email string) error {
	password, err := promptPassword(runner.Stdout, runner.Stdin, "New password: ")
	if err != nil {
		return err
	}
	confirmation, err := promptPassword(runner.Stdout, runner.Stdin, "Repeat password: ")
	if err != nil {
		return err
	}
	if password != confirmation {
		return errors.New("passwords do not match")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return fmt.Errorf("password must have %d+ characters with upper, lower case and a digit", services.MinPasswordLength)
	}

	if err := runner.Passwords.SetPassword(email, password); err != nil {
		return accountError(email, err)
	}
	fmt.Fprintln(runner.Stdout, "Password updated")
	return nil
}

func (runner Runner) PromoteAdmin(email string) error {
	promoted, err := runner.Admins.EnsureOwnerAdmin(email)
	if err != nil {
		return accountError(email, err)
	}
	if promoted {
		fmt.Fprintf(runner.Stdout, "%s is now an admin\n", email)
	} else {
		fmt.Fprintf(runner.Stdout, "%s is already an admin\n", email)
	}
	return nil
}

func commandEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", errors.New("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("invalid email address: %w", err)
	}
	return email, nil
}

func accountError(email string, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return fmt.Errorf("user %s not found", email)
	}
	return err
}
