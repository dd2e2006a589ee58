package cmd

import (
	"fmt"
	"os"

	"pizzabot/internal/adapters/out/export"
	"pizzabot/internal/core/application/usecases/queries"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the admin order list to an Excel workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "orders.xlsx", "output file")
	exportCmd.Flags().String("status", "", "only orders in this status")
	exportCmd.Flags().Int("limit", queries.DefaultListLimit, "maximum number of orders")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	root, closeRoot, err := OpenCompositionRoot(cfg, logger)
	if err != nil {
		return err
	}
	defer closeRoot()

	query, err := queries.NewListOrdersQuery(status, limit)
	if err != nil {
		return err
	}
	response, err := root.CreateListOrdersQueryHandler().Handle(cmd.Context(), query)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err = export.WriteOrders(f, response.Orders); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d orders to %s\n", len(response.Orders), out)
	return nil
}
