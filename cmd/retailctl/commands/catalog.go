package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kleverretail/retail-cloud/internal/domain"
)

func NewStoresCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "List stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stores, err := e.catalog.ListStores(cmd.Context())
			if err != nil {
				return fmt.Errorf("e.catalog.ListStores -> %w", err)
			}

			rows := make([][]string, len(stores))
			for i, s := range stores {
				city := ""
				if s.City != nil {
					city = *s.City
				}
				rows[i] = []string{strconv.FormatUint(uint64(s.ID), 10), s.Code, s.Name, city, strconv.FormatBool(s.Active)}
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"ID", "Code", "Name", "City", "Active"})
			if err := table.Bulk(rows); err != nil {
				return err
			}

			return table.Render()
		},
	}
}

func NewItemsCmd(e *env) *cobra.Command {
	itemsCmd := &cobra.Command{
		Use:   "items",
		Short: "List items, optionally for one store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			storeCode, _ := cmd.Flags().GetString("store")

			var (
				items []domain.Item
				err   error
			)
			if storeCode == "" {
				items, err = e.catalog.ListAllItems(cmd.Context())
			} else {
				items, err = e.catalog.ListItems(cmd.Context(), storeCode)
			}
			if err != nil {
				return fmt.Errorf("e.catalog.ListItems -> %w", err)
			}

			rows := make([][]string, len(items))
			for i, it := range items {
				rows[i] = []string{it.StoreCode, it.Code, it.Name, formatMoney(it.Price), strconv.Itoa(it.Stock)}
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"Store", "Code", "Name", "Price", "Stock"})
			if err := table.Bulk(rows); err != nil {
				return err
			}

			return table.Render()
		},
	}

	itemsCmd.Flags().StringP("store", "s", "", "Store code")

	return itemsCmd
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
