package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func NewOrdersCmd(e *env) *cobra.Command {
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			storeCode, _ := cmd.Flags().GetString("store")

			orders, err := e.orders.ListOrders(cmd.Context(), storeCode)
			if err != nil {
				return fmt.Errorf("e.orders.ListOrders -> %w", err)
			}

			rows := make([][]string, len(orders))
			for i, o := range orders {
				rows[i] = []string{
					strconv.FormatUint(uint64(o.ID), 10),
					o.StoreCode,
					o.Timestamp.Format(time.DateTime),
					o.StaffUsername,
					strconv.Itoa(len(o.Lines)),
					formatMoney(o.Discount),
					formatMoney(o.Total),
				}
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"ID", "Store", "Timestamp", "Staff", "Lines", "Discount", "Total"})
			if err := table.Bulk(rows); err != nil {
				return err
			}

			return table.Render()
		},
	}

	ordersCmd.Flags().StringP("store", "s", "", "Store code")

	return ordersCmd
}

func NewOrderCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "order ID",
		Short: "Show one order with its lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}

			order, err := e.orders.GetOrder(cmd.Context(), uint(id))
			if err != nil {
				return fmt.Errorf("e.orders.GetOrder -> %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Order #%d  store %s  %s  staff %s\n",
				order.ID, order.StoreCode, order.Timestamp.Format(time.DateTime), order.StaffUsername)

			rows := make([][]string, len(order.Lines))
			for i, l := range order.Lines {
				rows[i] = []string{l.ItemName, formatMoney(l.Price), strconv.Itoa(l.Qty), formatMoney(l.Price * float64(l.Qty))}
			}

			table := tablewriter.NewWriter(out)
			table.Header([]string{"Item", "Price", "Qty", "Amount"})
			if err := table.Bulk(rows); err != nil {
				return err
			}
			if err := table.Render(); err != nil {
				return err
			}
			fmt.Fprintf(out, "Discount %s  Total %s\n", formatMoney(order.Discount), formatMoney(order.Total))

			return nil
		},
	}
}
