package tui

import "github.com/MKhiriev/go-stock-keeper/models"

type confirmModel struct {
	product models.Product
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.product.Name + "\" (SKU " + m.product.SKU + ", supplier " + m.product.Supplier + ")?\n\n"
	content += helpStyle.Render("y: yes    n: no")
	return overlayBoxStyle.Render(content)
}
