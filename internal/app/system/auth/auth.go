// Package auth decides whether a request credential identifies a known
// teacher. The API trusts the caller-supplied username and only checks that
// it exists in the teacher directory; there are no passwords or sessions on
// this path.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the username is missing or unknown.
var ErrUnauthorized = errors.New("auth: unknown username")

// Directory reports whether a username exists. The Mongo teacher store
// satisfies this; tests supply an in-memory map.
type Directory interface {
	Exists(ctx context.Context, username string) (bool, error)
}

// Authorizer checks a credential and returns ErrUnauthorized when it does
// not identify a known teacher. Other errors indicate a lookup failure, not
// a verdict about the caller.
type Authorizer interface {
	Authorize(ctx context.Context, username string) error
}

// DirectoryAuthorizer authorizes any username present in a Directory.
type DirectoryAuthorizer struct {
	dir Directory
}

// NewDirectoryAuthorizer wires an Authorizer over the given directory.
func NewDirectoryAuthorizer(dir Directory) *DirectoryAuthorizer {
	return &DirectoryAuthorizer{dir: dir}
}

// Authorize returns nil when username names a known teacher. A missing
// username fails without touching the directory. Lookup errors are passed
// through so callers can distinguish "unknown user" from "store down".
func (a *DirectoryAuthorizer) Authorize(ctx context.Context, username string) error {
	if username == "" {
		return ErrUnauthorized
	}
	ok, err := a.dir.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("auth: lookup %q: %w", username, err)
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}
