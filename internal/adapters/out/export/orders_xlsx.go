// Package export writes the admin order list as an Excel workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"pizzabot/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Orders"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var header = []any{"Order ID", "Created", "Status", "Delivery type", "Customer", "Address", "Items", "Subtotal"}

// WriteOrders writes orders to w as a workbook with a single Orders sheet: a bold
// header row followed by one row per order.
func WriteOrders(w io.Writer, orders []queries.OrderSummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return err
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			o.ID.String(),
			o.CreatedAt.UTC().Format(time.RFC3339),
			o.Status.String(),
			o.DeliveryType.String(),
			o.CustomerName,
			o.Address,
			o.ItemCount,
			int64(o.Subtotal),
		}
		if err = f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write order %s: %w", o.ID, err)
		}
	}

	if err = f.SetColWidth(SheetName, "A", "A", 38); err != nil {
		return err
	}
	if err = f.SetColWidth(SheetName, "B", "F", 22); err != nil {
		return err
	}

	return f.Write(w)
}
