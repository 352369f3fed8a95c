package auth_test

import (
	"context"
	"errors"
	"testing"

	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/app/system/auth"
	"github.com/dalemusser/schoolhub/internal/testutil"
)

// fakeDirectory is an in-memory Directory for tests.
type fakeDirectory struct {
	usernames map[string]bool
	err       error
}

func (f *fakeDirectory) Exists(_ context.Context, username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.usernames[username], nil
}

func TestAuthorize_KnownUsername(t *testing.T) {
	a := auth.NewDirectoryAuthorizer(&fakeDirectory{usernames: map[string]bool{"msmith": true}})

	if err := a.Authorize(context.Background(), "msmith"); err != nil {
		t.Errorf("expected known username to authorize, got %v", err)
	}
}

func TestAuthorize_UnknownUsername(t *testing.T) {
	a := auth.NewDirectoryAuthorizer(&fakeDirectory{usernames: map[string]bool{"msmith": true}})

	err := a.Authorize(context.Background(), "nobody")
	if !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthorize_MissingUsername(t *testing.T) {
	dir := &fakeDirectory{usernames: map[string]bool{}}
	a := auth.NewDirectoryAuthorizer(dir)

	err := a.Authorize(context.Background(), "")
	if !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for empty username, got %v", err)
	}
}

func TestAuthorize_CaseSensitive(t *testing.T) {
	a := auth.NewDirectoryAuthorizer(&fakeDirectory{usernames: map[string]bool{"msmith": true}})

	if err := a.Authorize(context.Background(), "MSmith"); !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("usernames should match exactly, got %v", err)
	}
}

func TestAuthorize_AgainstTeacherStore(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	fixtures.CreateTeacher(ctx, "msmith", "Morgan Smith")

	a := auth.NewDirectoryAuthorizer(teacherstore.New(db))

	if err := a.Authorize(ctx, "msmith"); err != nil {
		t.Errorf("seeded teacher should authorize, got %v", err)
	}
	if err := a.Authorize(ctx, "nobody"); !errors.Is(err, auth.ErrUnauthorized) {
		t.Errorf("unknown username should be unauthorized, got %v", err)
	}
}

func TestAuthorize_LookupErrorIsNotUnauthorized(t *testing.T) {
	lookupErr := errors.New("server selection timeout")
	a := auth.NewDirectoryAuthorizer(&fakeDirectory{err: lookupErr})

	err := a.Authorize(context.Background(), "msmith")
	if err == nil {
		t.Fatal("expected an error when the directory lookup fails")
	}
	if errors.Is(err, auth.ErrUnauthorized) {
		t.Error("a lookup failure must not be reported as unauthorized")
	}
	if !errors.Is(err, lookupErr) {
		t.Errorf("expected the lookup error to be wrapped, got %v", err)
	}
}
