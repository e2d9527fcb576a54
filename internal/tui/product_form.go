package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Input order of the product form.
const (
	fieldName = iota
	fieldSKU
	fieldSupplier
	fieldQuantity
	fieldCount
)

var formLabels = [fieldCount]string{
	fieldName:     "Name",
	fieldSKU:      "SKU",
	fieldSupplier: "Supplier",
	fieldQuantity: "Quantity",
}

// productForm edits the four text fields of a product. While editing a
// stored product the supplier input is shown but never focused.
type productForm struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	before     models.Product
	submitting bool
}

func newProductForm() productForm {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = strings.ToLower(formLabels[i])
		inputs[i].CharLimit = 128
		inputs[i].Width = 40
	}
	inputs[fieldQuantity].Placeholder = "quantity (optional)"
	inputs[fieldName].Focus()

	return productForm{inputs: inputs, focus: fieldName}
}

func newEditProductForm(product models.Product) productForm {
	f := newProductForm()
	f.editing = true
	f.before = product

	f.inputs[fieldName].SetValue(product.Name)
	f.inputs[fieldSKU].SetValue(product.SKU)
	f.inputs[fieldSupplier].SetValue(product.Supplier)
	f.inputs[fieldQuantity].SetValue(product.Quantity)

	return f
}

func (f productForm) focusable(i int) bool {
	return !(f.editing && i == fieldSupplier)
}

func (f *productForm) move(delta int) {
	f.inputs[f.focus].Blur()
	next := f.focus
	for {
		next = (next + delta + fieldCount) % fieldCount
		if f.focusable(next) {
			break
		}
	}
	f.focus = next
	f.inputs[f.focus].Focus()
}

// product returns the values typed into the form. The supplier of an edited
// product always comes from the stored row.
func (f productForm) product() models.Product {
	p := models.Product{
		Name:     f.inputs[fieldName].Value(),
		SKU:      f.inputs[fieldSKU].Value(),
		Supplier: f.inputs[fieldSupplier].Value(),
		Quantity: f.inputs[fieldQuantity].Value(),
	}
	if f.editing {
		p.Supplier = f.before.Supplier
	}
	return p
}

func (f productForm) change() models.ProductChange {
	return models.ProductChange{Before: f.before, After: f.product()}
}

func (f productForm) update(msg tea.Msg) (productForm, tea.Cmd) {
	if !f.focusable(f.focus) {
		return f, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f productForm) title() string {
	if f.editing {
		return "EDIT PRODUCT"
	}
	return "NEW PRODUCT"
}

func (f productForm) view() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	for i, in := range f.inputs {
		b.WriteString(padRight(formLabels[i], 10))
		b.WriteString("│ ")
		if f.focusable(i) {
			b.WriteString("[")
			b.WriteString(in.View())
			b.WriteString("]")
		} else {
			b.WriteString(helpStyle.Render(in.Value() + " (locked)"))
		}
		b.WriteString("\n")
	}

	switch {
	case f.submitting:
		b.WriteString("\n[Saving...]")
	case f.editing:
		b.WriteString("\n[Save changes]")
	default:
		b.WriteString("\n[Add product]")
	}

	return b.String()
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
