package bootstrap

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/testutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func writeSeedFile(t *testing.T, entries []seedTeacher) string {
	t.Helper()
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal seed entries: %v", err)
	}
	path := filepath.Join(t.TempDir(), "teachers.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestSeedTeachers_CreatesAccounts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{SchoolHubMongoDatabase: db}
	path := writeSeedFile(t, []seedTeacher{
		{Username: "msmith", DisplayName: "Morgan Smith", Password: "s3cret", Role: "teacher"},
		{Username: "principal", DisplayName: "Pat Rivera", Password: "admin-pass", Role: "admin"},
	})

	if err := seedTeachers(ctx, deps, path, testLogger()); err != nil {
		t.Fatalf("seedTeachers failed: %v", err)
	}

	store := teacherstore.New(db)

	teacher, err := store.GetByUsername(ctx, "msmith")
	if err != nil {
		t.Fatalf("seeded teacher missing: %v", err)
	}
	if teacher.DisplayName != "Morgan Smith" {
		t.Errorf("display_name = %q", teacher.DisplayName)
	}
	if teacher.Role != "teacher" {
		t.Errorf("role = %q, want teacher", teacher.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte("s3cret")); err != nil {
		t.Errorf("password hash does not verify: %v", err)
	}
	if teacher.PasswordHash == "s3cret" {
		t.Error("password stored in the clear")
	}

	admin, err := store.GetByUsername(ctx, "principal")
	if err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if admin.Role != "admin" {
		t.Errorf("role = %q, want admin", admin.Role)
	}
}

func TestSeedTeachers_DefaultsRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{SchoolHubMongoDatabase: db}
	path := writeSeedFile(t, []seedTeacher{
		{Username: "jdoe", DisplayName: "Jamie Doe", Password: "pw"},
	})

	if err := seedTeachers(ctx, deps, path, testLogger()); err != nil {
		t.Fatalf("seedTeachers failed: %v", err)
	}

	teacher, err := teacherstore.New(db).GetByUsername(ctx, "jdoe")
	if err != nil {
		t.Fatalf("seeded teacher missing: %v", err)
	}
	if teacher.Role != "teacher" {
		t.Errorf("role = %q, want default teacher", teacher.Role)
	}
}

func TestSeedTeachers_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{SchoolHubMongoDatabase: db}
	path := writeSeedFile(t, []seedTeacher{
		{Username: "msmith", DisplayName: "Morgan Smith", Password: "first"},
	})

	if err := seedTeachers(ctx, deps, path, testLogger()); err != nil {
		t.Fatalf("first seeding failed: %v", err)
	}

	store := teacherstore.New(db)
	before, err := store.GetByUsername(ctx, "msmith")
	if err != nil {
		t.Fatalf("seeded teacher missing: %v", err)
	}

	// Second run with an updated entry refreshes the record in place.
	path = writeSeedFile(t, []seedTeacher{
		{Username: "msmith", DisplayName: "Morgan J. Smith", Password: "second"},
	})
	if err := seedTeachers(ctx, deps, path, testLogger()); err != nil {
		t.Fatalf("second seeding failed: %v", err)
	}

	after, err := store.GetByUsername(ctx, "msmith")
	if err != nil {
		t.Fatalf("teacher missing after re-seed: %v", err)
	}
	if after.DisplayName != "Morgan J. Smith" {
		t.Errorf("display_name = %q, want refreshed value", after.DisplayName)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("second")); err != nil {
		t.Errorf("refreshed password hash does not verify: %v", err)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("created_at changed on re-seed: %v -> %v", before.CreatedAt, after.CreatedAt)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected a single teacher after re-seed, got %d", len(all))
	}
}

func TestSeedTeachers_RejectsEmptyUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{SchoolHubMongoDatabase: db}
	path := writeSeedFile(t, []seedTeacher{
		{Username: "", DisplayName: "Nameless", Password: "pw"},
	})

	if err := seedTeachers(ctx, deps, path, testLogger()); err == nil {
		t.Fatal("expected an error for an entry with an empty username")
	}
}

func TestSeedTeachers_MissingFile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{SchoolHubMongoDatabase: db}

	err := seedTeachers(ctx, deps, filepath.Join(t.TempDir(), "nope.json"), testLogger())
	if err == nil {
		t.Fatal("expected an error for a missing seed file")
	}
}

func TestSeedTeachers_MalformedJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	path := filepath.Join(t.TempDir(), "teachers.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}

	deps := DBDeps{SchoolHubMongoDatabase: db}
	if err := seedTeachers(ctx, deps, path, testLogger()); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
