package migrate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/webloom-dev/webloom/internal/domain/credits"
	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	vo "github.com/webloom-dev/webloom/internal/domain/user/valueobjects"
	"github.com/webloom-dev/webloom/internal/infrastructure/auth"
	"github.com/webloom-dev/webloom/internal/infrastructure/config"
	"github.com/webloom-dev/webloom/internal/infrastructure/database"
	"github.com/webloom-dev/webloom/internal/infrastructure/migration"
	"github.com/webloom-dev/webloom/internal/infrastructure/repository"
	"github.com/webloom-dev/webloom/internal/shared/constants"
	"github.com/webloom-dev/webloom/internal/shared/db"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

var (
	env          string
	steps        int
	forceVersion int
	seedRollback int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations and seed the bootstrap administrator account.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newForceCommand(),
		newSeedCommand(),
		newSeedAdminCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newForceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force",
		Short: "Force the schema version and clear the dirty flag",
		Long:  `Overwrite the recorded schema version after manually fixing a failed migration.`,
		RunE:  runForce,
	}

	cmd.Flags().IntVarP(&forceVersion, "version", "v", 0, "Schema version to record")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load development seed data",
		Long:  `Apply the seed scripts under migrations/seed. Goose tracks applied seeds in its own version table, separate from the schema migrations.`,
		RunE:  runSeed,
	}

	cmd.Flags().IntVar(&seedRollback, "down", 0, "Roll back this many seed scripts instead of applying")

	return cmd
}

func newSeedAdminCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the bootstrap administrator account",
		Long:  `Create the administrator account configured under admin.email and admin.password. Does nothing when the account already exists.`,
		RunE:  runSeedAdmin,
	}
}

func initEnv() (*config.Config, string, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env != "production"); err != nil {
		return nil, "", nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, "", nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./migrations")
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to get migrations path: %w", err)
	}

	return cfg, scriptsPath, log, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	_, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env)

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	_, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	strategy, ok := migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("down migration is only supported with the golang-migrate strategy")
	}
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, scriptsPath, _, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, ok := migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("status is only supported with the golang-migrate strategy")
	}

	version, dirty, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", version)
	fmt.Printf("  Dirty:           %t\n", dirty)

	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	seedPath := filepath.Join(scriptsPath, "seed")
	strategy, ok := migration.NewGooseStrategy(seedPath).(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("seeding requires the goose strategy")
	}

	if seedRollback > 0 {
		log.Infow("rolling back seed data", "environment", env, "path", seedPath, "steps", seedRollback)
		if err := strategy.MigrateDown(database.Get(), seedRollback); err != nil {
			return fmt.Errorf("seed rollback failed: %w", err)
		}
		log.Infow("seed rollback completed")
		return nil
	}

	log.Infow("loading seed data", "environment", env, "path", seedPath)
	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seed data loaded successfully")
	return nil
}

func runForce(cmd *cobra.Command, args []string) error {
	_, scriptsPath, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, ok := migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy)
	if !ok {
		return fmt.Errorf("force is only supported with the golang-migrate strategy")
	}
	if err := strategy.Force(database.Get(), forceVersion); err != nil {
		return fmt.Errorf("force failed: %w", err)
	}

	log.Infow("schema version forced", "version", forceVersion)
	return nil
}

func runSeedAdmin(cmd *cobra.Command, args []string) error {
	cfg, _, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return fmt.Errorf("admin.email and admin.password must be configured")
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(database.Get())
	creditsRepo := repository.NewCreditLedgerRepository(database.Get())
	txManager := db.NewTransactionManager(database.Get())

	emailVO, err := vo.NewEmail(cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("invalid admin email: %w", err)
	}

	existing, err := userRepo.GetByEmail(ctx, emailVO.String())
	if err != nil {
		return fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		log.Infow("admin account already exists", "email", emailVO.String())
		return nil
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	passwordHash, err := hasher.Hash(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	adminUser, err := domainUser.NewUser(emailVO, passwordHash, domainUser.PlanLimits{
		MaxSites:           cfg.Quota.MaxSites,
		MaxPagesPerSite:    cfg.Quota.MaxPagesPerSite,
		MaxSectionsPerPage: cfg.Quota.MaxSectionsPerPage,
	}, id.NewUserID)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	adminUser.PromoteToAdmin()

	err = txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := userRepo.Create(txCtx, adminUser); err != nil {
			return fmt.Errorf("failed to save admin user: %w", err)
		}

		ledger, err := credits.NewLedger(adminUser.ID(), constants.DefaultSignupCredits, credits.ResetMonthly)
		if err != nil {
			return fmt.Errorf("failed to create credit ledger: %w", err)
		}
		if err := creditsRepo.Create(txCtx, ledger); err != nil {
			return fmt.Errorf("failed to save credit ledger: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Infow("admin account created", "email", emailVO.String(), "id", adminUser.SID())
	return nil
}
