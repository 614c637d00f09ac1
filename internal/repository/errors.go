// Package repository implements the user directory over the document store.
// Sentinel errors let handlers map storage outcomes to HTTP statuses without
// inspecting driver-specific error values.
package repository

import "errors"

// ErrEmailExists is returned by Create when the email is already registered.
// Handlers translate it into the duplicate-registration response.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when no user matches the given email or id.
var ErrNotFound = errors.New("user not found")
