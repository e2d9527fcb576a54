package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// renderProductTable draws items as a bordered table with the selected row
// highlighted.
func renderProductTable(items []models.Product, selected int) string {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			fitText(p.Name, 24),
			fitText(p.SKU, 16),
			fitText(p.Supplier, 20),
			fitText(valueOrDash(p.Quantity), 12),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "SKU", "SUPPLIER", "QUANTITY").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == selected:
				return selectedStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}
