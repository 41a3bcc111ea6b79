package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kleverretail/retail-cloud/internal/repository/dao"
	"github.com/kleverretail/retail-cloud/internal/seed"
)

func NewMigrateCmd(e *env) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables",
		Long: `Creates missing tables. With --reset every table is dropped first,
which deletes all stores, items, staff and orders.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reset, _ := cmd.Flags().GetBool("reset")
			if reset {
				if err := dao.DropTables(e.db); err != nil {
					return fmt.Errorf("dao.DropTables -> %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "dropped all tables")
			}

			if err := dao.InitTables(e.db); err != nil {
				return fmt.Errorf("dao.InitTables -> %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")

			return nil
		},
	}

	migrateCmd.Flags().Bool("reset", false, "drop every table before migrating")

	return migrateCmd
}

func NewSeedCmd(e *env) *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default store and admin, or a YAML fixture",
		Long: `Inserts every store, item and staff member that does not exist yet.
Without --file the default HRG-001 store and admin account are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			fixture := seed.Default()
			if file != "" {
				var err error
				if fixture, err = seed.LoadFile(file); err != nil {
					return fmt.Errorf("seed.LoadFile -> %w", err)
				}
			}

			if err := dao.InitTables(e.db); err != nil {
				return fmt.Errorf("dao.InitTables -> %w", err)
			}

			res, err := seed.NewForDB(e.db).Apply(cmd.Context(), fixture)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d stores, %d items, %d staff\n", res.Stores, res.Items, res.Staff)

			return nil
		},
	}

	seedCmd.Flags().StringP("file", "f", "", "YAML fixture to load")

	return seedCmd
}
