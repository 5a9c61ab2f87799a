package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"property-listing/internal/model"
	"property-listing/internal/property"
	"property-listing/internal/user"
	"property-listing/pkg/slug"
)

// systemScope is the actor used by operator commands. It may assign any owner.
var systemScope = model.Scope{Email: "cli", Roles: []string{model.RoleAdmin}}

// app runs operator commands against the use cases.
type app struct {
	users      user.UseCase
	properties property.UseCase
	out        io.Writer
}

// createUser registers a user. Flags: --email, --password, --role (repeatable).
func (a app) createUser(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("create-user", pflag.ContinueOnError)
	email := fs.String("email", "", "email of the user (required)")
	password := fs.String("password", "", "password of the user (required)")
	roles := fs.StringSlice("role", []string{model.RoleUser}, "role of the user: admin, property-manager or user")
	if err := fs.Parse(args); err != nil {
		return err
	}

	u, err := a.users.Create(ctx, user.CreateUserInput{Email: *email, Password: *password, Roles: *roles})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "User successfully created!")
	fmt.Fprintf(a.out, "Email: %s\n", u.Email)
	fmt.Fprintf(a.out, "Roles: %s\n", strings.Join(u.Roles, ", "))
	return nil
}

// createProperty creates a property for an existing owner.
// Flags: --title, --price, --owner-email, --description.
func (a app) createProperty(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("create-property", pflag.ContinueOnError)
	title := fs.String("title", "", "title of the property (required)")
	rawPrice := fs.String("price", "", "price of the property (required)")
	ownerEmail := fs.String("owner-email", "", "email of the owning user (required)")
	description := fs.String("description", "", "description of the property")
	if err := fs.Parse(args); err != nil {
		return err
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(*rawPrice), 64)
	if err != nil || price <= 0 {
		return errors.New("price must be a positive number")
	}

	owner, err := a.users.DetailByEmail(ctx, *ownerEmail)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return fmt.Errorf("owner with email %q not found", *ownerEmail)
		}
		return err
	}

	p, err := a.properties.Create(ctx, systemScope, property.CreateInput{
		Title:       *title,
		Description: *description,
		Price:       price,
		OwnerID:     owner.ID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Property successfully created!")
	fmt.Fprintf(a.out, "Title: %s\n", p.Title)
	fmt.Fprintf(a.out, "Slug: %s\n", p.Slug)
	fmt.Fprintf(a.out, "Price: %.2f\n", p.Price)
	fmt.Fprintf(a.out, "Owner: %s\n", owner.Email)
	return nil
}

const (
	seedOwnerEmail    = "owner@example.com"
	seedOwnerPassword = "password"
)

var seedProperties = []property.CreateInput{
	{
		Title:       "Luxury Apartment in Downtown",
		Description: "A beautiful and spacious luxury apartment located in the heart of the city.",
		Price:       350000,
	},
	{
		Title:       "Cozy Country House",
		Description: "A charming country house with a large garden and scenic views.",
		Price:       250000,
	},
	{
		Title:       "Modern Condo with Sea View",
		Description: "A sleek modern condo with stunning views of the sea and modern amenities.",
		Price:       500000,
	},
	{
		Title:       "Affordable Studio Apartment",
		Description: "A compact and affordable studio apartment, ideal for singles or students.",
		Price:       90000,
	},
}

// seed loads the demo owner and properties. Existing rows are skipped.
func (a app) seed(ctx context.Context) error {
	owner, err := a.users.DetailByEmail(ctx, seedOwnerEmail)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		owner, err = a.users.Create(ctx, user.CreateUserInput{
			Email:    seedOwnerEmail,
			Password: seedOwnerPassword,
			Roles:    []string{model.RoleUser, model.RolePropertyManager},
		})
		if err != nil {
			return fmt.Errorf("create owner: %w", err)
		}
		fmt.Fprintf(a.out, "created user %s\n", owner.Email)
	case err != nil:
		return err
	default:
		fmt.Fprintf(a.out, "user %s exists, skipping\n", owner.Email)
	}

	for _, in := range seedProperties {
		s := slug.Generate(in.Title)
		_, err := a.properties.DetailBySlug(ctx, s)
		if err == nil {
			fmt.Fprintf(a.out, "property %s exists, skipping\n", s)
			continue
		}
		if !errors.Is(err, property.ErrPropertyNotFound) {
			return err
		}

		in.OwnerID = owner.ID
		p, err := a.properties.Create(ctx, systemScope, in)
		if err != nil {
			return fmt.Errorf("create %q: %w", in.Title, err)
		}
		fmt.Fprintf(a.out, "created property %s\n", p.Slug)
	}
	return nil
}
