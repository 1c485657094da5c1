package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"laundry-scout.backend/internal/config"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	domainrepo "laundry-scout.backend/internal/domain/repositories"
	"laundry-scout.backend/internal/infrastructure/repositories"
	"laundry-scout.backend/pkg/crypto"
	"laundry-scout.backend/pkg/utils"

	"github.com/volatiletech/null/v8"
)

var openSeedDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

type seedDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	open    func(dsn string) (domainrepo.AdminRepository, io.Closer, error)
	out     io.Writer
}

// seedAdmin creates the admin account, or rotates its password when
// the username already exists.
func seedAdmin(ctx context.Context, repo domainrepo.AdminRepository, username, email, password string, out io.Writer) error {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	existing, err := repo.GetByUsernameOrEmail(ctx, username)
	switch {
	case err == nil:
		if err := repo.UpdatePassword(ctx, existing.ID, hash); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		fmt.Fprintf(out, "Updated password for admin %q (%s)\n", existing.Username, existing.ID)
		return nil
	case err == domainerrors.ErrNotFound:
		admin := &entities.Admin{
			ID:           utils.GenerateUUIDv7(),
			Username:     username,
			PasswordHash: hash,
		}
		if email != "" {
			admin.Email = null.StringFrom(email)
		}
		if err := repo.Create(ctx, admin); err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		fmt.Fprintf(out, "Created admin %q (%s)\n", admin.Username, admin.ID)
		return nil
	default:
		return fmt.Errorf("lookup admin: %w", err)
	}
}

func run(args []string, deps seedDeps) error {
	fs := flag.NewFlagSet("admin-seed", flag.ContinueOnError)
	username := fs.String("username", "", "admin username (required)")
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("both -username and -password are required")
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := deps.loadCfg()

	repo, closer, err := deps.open(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer closer.Close()

	return seedAdmin(context.Background(), repo, *username, *email, *password, deps.out)
}

func main() {
	deps := seedDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		open: func(dsn string) (domainrepo.AdminRepository, io.Closer, error) {
			db, err := openSeedDB(dsn)
			if err != nil {
				return nil, nil, err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return nil, nil, err
			}
			return repositories.NewAdminRepository(db), sqlDB, nil
		},
		out: os.Stdout,
	}
	if err := run(os.Args[1:], deps); err != nil {
		log.Fatal(err)
	}
}
