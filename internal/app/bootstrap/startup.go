// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/schoolhub/internal/app/system/timeouts"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for seeded teacher password hashes.
const BcryptCost = 12

// seedTeacher is one entry in the seed_teachers_file JSON array.
type seedTeacher struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It applies
// timeout overrides from the environment and, when configured, seeds the
// teacher directory from a JSON file.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("applied timeout overrides from environment", zap.Int("count", n))
	}

	if appCfg.SeedTeachersFile == "" {
		return nil
	}
	return seedTeachers(ctx, deps, appCfg.SeedTeachersFile, logger)
}

// seedTeachers upserts the accounts listed in the seed file, so running it
// repeatedly against the same database is safe. Passwords are stored only
// as bcrypt hashes.
func seedTeachers(ctx context.Context, deps DBDeps, path string, logger *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read teacher seed file: %w", err)
	}

	var entries []seedTeacher
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse teacher seed file %s: %w", path, err)
	}

	store := teacherstore.New(deps.SchoolHubMongoDatabase)
	for _, e := range entries {
		if e.Username == "" {
			return fmt.Errorf("teacher seed file %s: entry with empty username", path)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(e.Password), BcryptCost)
		if err != nil {
			return fmt.Errorf("hash password for %q: %w", e.Username, err)
		}

		role := e.Role
		if role == "" {
			role = "teacher"
		}

		teacher := models.Teacher{
			Username:     e.Username,
			DisplayName:  e.DisplayName,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := store.Upsert(ctx, teacher); err != nil {
			return fmt.Errorf("seed teacher %q: %w", e.Username, err)
		}
	}

	logger.Info("seeded teacher directory",
		zap.Int("count", len(entries)),
		zap.String("file", path))
	return nil
}
