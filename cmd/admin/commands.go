// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/validators"
	"github.com/MKhiriev/go-diary/models"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

const (
	defaultAdminUsername = "Admin"
	defaultAdminEmail    = "Iam@admin.com"
	defaultAdminPassword = "Admin17"

	hashPreviewLength = 20
	separatorWidth    = 50
)

const usage = `Usage: go-diary-admin [config flags] <command> [command flags]

Commands:
  create-admin    create the admin account
  reset-password  set a new password for an existing user
  list-users      print every registered user with diary statistics
`

type commands struct {
	admin  service.AdminService
	stdout io.Writer
	stderr io.Writer
}

func newCommands(admin service.AdminService, stdout, stderr io.Writer) *commands {
	return &commands{admin: admin, stdout: stdout, stderr: stderr}
}

// run dispatches args[0] and returns the process exit code.
func (c *commands) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return exitUsage
	}

	switch args[0] {
	case "create-admin":
		return c.createAdmin(ctx, args[1:])
	case "reset-password":
		return c.resetPassword(ctx, args[1:])
	case "list-users":
		return c.listUsers(ctx, args[1:])
	default:
		fmt.Fprintf(c.stderr, "unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}
}

func (c *commands) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func (c *commands) createAdmin(ctx context.Context, args []string) int {
	fs := c.newFlagSet("create-admin")
	username := fs.String("username", defaultAdminUsername, "admin username")
	email := fs.String("email", defaultAdminEmail, "admin email")
	password := fs.String("password", defaultAdminPassword, "admin password")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	admin, err := c.admin.CreateAdmin(ctx, models.RegisterRequest{
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	if errors.Is(err, service.ErrAdminAlreadyExists) {
		fmt.Fprintln(c.stdout, "Admin user already exists!")
		return exitSuccess
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "Error creating admin: %s\n", describe(err))
		return exitFailure
	}

	fmt.Fprintln(c.stdout, "Admin user created successfully!")
	fmt.Fprintf(c.stdout, "Email: %s\n", admin.Email)
	fmt.Fprintf(c.stdout, "Password: %s\n", *password)
	fmt.Fprintf(c.stdout, "Role: %s\n", admin.Role)
	return exitSuccess
}

func (c *commands) resetPassword(ctx context.Context, args []string) int {
	fs := c.newFlagSet("reset-password")
	username := fs.String("username", "", "user whose password is reset (required)")
	password := fs.String("password", "", "new password (required)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *username == "" || *password == "" {
		fmt.Fprintln(c.stderr, "both -username and -password are required")
		fs.Usage()
		return exitUsage
	}

	err := c.admin.ResetPassword(ctx, *username, *password)
	if errors.Is(err, service.ErrUserNotFound) {
		fmt.Fprintf(c.stdout, "User '%s' not found!\n", *username)
		return exitFailure
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "Error resetting password: %s\n", describe(err))
		return exitFailure
	}

	fmt.Fprintf(c.stdout, "Password for user '%s' has been reset successfully!\n", *username)
	fmt.Fprintf(c.stdout, "New password: %s\n", *password)
	return exitSuccess
}

func (c *commands) listUsers(ctx context.Context, args []string) int {
	fs := c.newFlagSet("list-users")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	summaries, err := c.admin.ListUsers(ctx)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error reading users: %s\n", describe(err))
		return exitFailure
	}

	separator := strings.Repeat("=", separatorWidth)
	fmt.Fprintln(c.stdout, "REGISTERED USERS:")
	fmt.Fprintln(c.stdout, separator)

	for i, summary := range summaries {
		user := summary.User
		fmt.Fprintf(c.stdout, "\nUser %d:\n", i+1)
		fmt.Fprintf(c.stdout, "   ID: %d\n", user.ID)
		fmt.Fprintf(c.stdout, "   Username: %s\n", user.Username)
		fmt.Fprintf(c.stdout, "   Email: %s\n", user.Email)
		fmt.Fprintf(c.stdout, "   Created: %s\n", user.CreatedAt.Local().Format(time.DateTime))
		fmt.Fprintf(c.stdout, "   Password Hash: %s...\n", hashPreview(user.PasswordHash))

		if !summary.HasDiary {
			fmt.Fprintln(c.stdout, "   Diary: No entries yet")
			continue
		}
		fmt.Fprintf(c.stdout, "   Diary Entries: %d\n", summary.EntriesCount)
		fmt.Fprintf(c.stdout, "   Categories: %d\n", summary.CategoriesCount)
	}

	fmt.Fprintln(c.stdout, "\n"+separator)
	fmt.Fprintf(c.stdout, "Total Users: %d\n", len(summaries))
	return exitSuccess
}

func hashPreview(hash string) string {
	if len(hash) <= hashPreviewLength {
		return hash
	}
	return hash[:hashPreviewLength]
}

// describe maps validation and conflict errors to their API messages.
func describe(err error) string {
	switch {
	case errors.Is(err, validators.ErrRegistrationFieldsRequired):
		return app.MsgAllFieldsRequired
	case errors.Is(err, validators.ErrPasswordTooShort):
		return app.MsgPasswordTooShort
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return app.MsgUsernameAlreadyTaken
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return app.MsgEmailAlreadyRegistered
	default:
		return err.Error()
	}
}
