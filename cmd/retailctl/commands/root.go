package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/kleverretail/retail-cloud/internal/config"
	"github.com/kleverretail/retail-cloud/internal/db"
	"github.com/kleverretail/retail-cloud/internal/logger"
	"github.com/kleverretail/retail-cloud/internal/repository"
	"github.com/kleverretail/retail-cloud/internal/repository/dao"
	"github.com/kleverretail/retail-cloud/internal/service"
)

var (
	// Version will be set during build
	Version = "dev"
)

// env is opened before any subcommand runs and closed afterwards.
type env struct {
	db      *gorm.DB
	catalog *service.CatalogService
	orders  *service.OrderService
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:   "retailctl",
		Short: "Administer a kleverRetail Cloud database",
		Long: `retailctl works directly against the database the API server uses.

It creates the schema, loads fixtures and prints stores, items and orders.

Example:
	retailctl migrate
	retailctl seed --file fixtures.yml
	retailctl orders --store HRG-001
`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return e.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("config", "./cmd/app/config.yml", "Path to the server configuration file")
	rootCmd.PersistentFlags().String("db", "", "SQLite database file, overrides the configured database")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level")

	rootCmd.AddCommand(
		NewMigrateCmd(e),
		NewSeedCmd(e),
		NewStoresCmd(e),
		NewItemsCmd(e),
		NewOrdersCmd(e),
		NewOrderCmd(e),
	)

	return rootCmd
}

func (e *env) open(cmd *cobra.Command) error {
	if !cmd.Runnable() || cmd.Name() == "help" || cmd == cmd.Root() {
		return nil
	}

	configFile, _ := cmd.Flags().GetString("config")
	dbFile, _ := cmd.Flags().GetString("db")
	logLevel, _ := cmd.Flags().GetString("log-level")

	if err := logger.Init("cli", logLevel); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	conf, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config -> %w", err)
	}

	var gdb *gorm.DB
	if dbFile != "" {
		dbConf := *conf.Database
		dbConf.Driver = db.DriverSQLite
		dbConf.DSN = dbFile
		gdb, err = db.Open(&dbConf)
	} else {
		gdb, err = db.OpenFromEnv(conf.Database)
	}
	if err != nil {
		return fmt.Errorf("failed to open database -> %w", err)
	}

	catalogRepo := repository.NewCatalogRepository(dao.NewCatalogDAO(gdb))
	orderRepo := repository.NewOrderRepository(dao.NewOrderDAO(gdb))

	e.db = gdb
	e.catalog = service.NewCatalogService(catalogRepo)
	e.orders = service.NewOrderService(orderRepo, catalogRepo, conf.Orders, nil)

	return nil
}

func (e *env) close() error {
	if e.db == nil {
		return nil
	}
	err := db.Close(e.db)
	e.db = nil

	return err
}
