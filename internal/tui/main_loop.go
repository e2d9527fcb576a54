package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type loopMode int

const (
	modeBrowse loopMode = iota
	modeForm
	modeSearch
	modeConfirmDelete
)

// mainLoopModel is the inventory screen of one session.
type mainLoopModel struct {
	ctx      context.Context
	products service.ProductService
	session  models.Session

	// copyText writes to the system clipboard.
	copyText func(string) error

	items   []models.Product
	idx     int
	loading bool
	query   string
	status  string

	mode    loopMode
	form    productForm
	search  textinput.Model
	confirm confirmModel
	overlay *errorOverlayModel

	width, height int

	logout bool
}

func newMainLoopModel(ctx context.Context, products service.ProductService, session models.Session) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "name, SKU, supplier or quantity"
	search.CharLimit = 128
	search.Width = 40

	return mainLoopModel{
		ctx:      ctx,
		products: products,
		session:  session,
		copyText: clipboard.WriteAll,
		search:   search,
		loading:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case productsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		m.items = msg.items
		m.query = msg.query
		m.clampSelection()
		return m, nil
	case productSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		m.mode = modeBrowse
		if msg.created {
			m.status = fmt.Sprintf("Product %q added", msg.product.Name)
		} else {
			m.status = fmt.Sprintf("Product %q updated", msg.product.Name)
		}
		m.loading = true
		return m, m.cmdLoad()
	case productDeletedMsg:
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Product %q deleted", msg.product.Name)
		m.loading = true
		return m, m.cmdLoad()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(keyMsg)
	case modeSearch:
		return m.updateSearch(keyMsg)
	case modeConfirmDelete:
		return m.updateConfirm(keyMsg)
	default:
		return m.updateBrowse(keyMsg)
	}
}

// forward passes non-key messages such as cursor blinks to the active input.
func (m mainLoopModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeForm:
		m.form, cmd = m.form.update(msg)
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.status = ""
		m.form = newProductForm()
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		item, ok := m.current()
		if !ok {
			m.status = "No product selected"
			return m, nil
		}
		m.status = ""
		m.form = newEditProductForm(item)
		m.mode = modeForm
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		item, ok := m.current()
		if !ok {
			m.status = "No product selected"
			return m, nil
		}
		m.confirm = confirmModel{product: item}
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.search):
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		m.mode = modeSearch
		return m, m.search.Focus()
	case key.Matches(msg, keys.copy):
		item, ok := m.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := m.copyText(item.SKU); err != nil {
			logger.FromContext(m.ctx).Warn().Err(err).Msg("clipboard write failed")
			m.overlay = newErrorOverlay(fmt.Errorf("copy to clipboard: %w", err))
			return m, nil
		}
		m.status = fmt.Sprintf("SKU %s copied to clipboard", item.SKU)
	case key.Matches(msg, keys.reload):
		m.loading = true
		m.status = ""
		return m, m.cmdLoad()
	case key.Matches(msg, keys.esc):
		if m.query != "" {
			m.query = ""
			m.loading = true
			return m, m.cmdLoad()
		}
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeBrowse
		m.form.submitting = false
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.move(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.move(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		m.form.submitting = true
		if m.form.editing {
			return m, m.cmdUpdate(m.form.change())
		}
		return m, m.cmdAdd(m.form.product())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m mainLoopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.search.Blur()
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, keys.enter):
		m.search.Blur()
		m.mode = modeBrowse
		m.query = strings.TrimSpace(m.search.Value())
		m.idx = 0
		m.loading = true
		return m, m.cmdLoad()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.mode = modeBrowse
		return m, m.cmdDelete(m.confirm.product)
	case key.Matches(msg, keys.no):
		m.mode = modeBrowse
		m.status = "Delete cancelled"
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	var page string
	switch m.mode {
	case modeForm:
		page = renderPage(m.form.title(), m.form.view(), "esc: back │ tab: next field │ enter: save")
	default:
		page = renderPage("INVENTORY: "+m.session.Login, m.viewBrowse(), browseHelp())
	}

	var box string
	switch {
	case m.overlay != nil:
		box = m.overlay.View()
	case m.mode == modeConfirmDelete:
		box = m.confirm.View()
	default:
		return page
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return page + "\n\n" + box
}

func (m mainLoopModel) viewBrowse() string {
	var b strings.Builder

	if m.mode == modeSearch {
		b.WriteString("Search: [")
		b.WriteString(m.search.View())
		b.WriteString("]\n\n")
	} else if m.query != "" {
		b.WriteString(fmt.Sprintf("Search: %q (esc: clear)\n\n", m.query))
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading products...")
	case len(m.items) == 0 && m.query != "":
		b.WriteString("No products match the search")
	case len(m.items) == 0:
		b.WriteString("No products yet, press n to add one")
	default:
		b.WriteString(renderProductTable(m.items, m.idx))
		b.WriteString(fmt.Sprintf("\n%d product(s)", len(m.items)))
	}

	return b.String()
}

func (m mainLoopModel) current() (models.Product, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Product{}, false
	}
	return m.items[m.idx], true
}

func (m *mainLoopModel) clampSelection() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// cmdLoad lists every product, or searches when a query is active. Short
// queries are turned into a full listing by the service.
func (m mainLoopModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.products
	session := m.session
	query := m.query

	return func() tea.Msg {
		var (
			items []models.Product
			err   error
		)
		if query == "" {
			items, err = svc.ListAll(ctx, session)
		} else {
			items, err = svc.Search(ctx, session, query)
		}
		return productsLoadedMsg{items: items, query: query, err: err}
	}
}

func (m mainLoopModel) cmdAdd(product models.Product) tea.Cmd {
	ctx := m.ctx
	svc := m.products
	session := m.session

	return func() tea.Msg {
		added, err := svc.Add(ctx, session, product)
		return productSavedMsg{product: added, created: true, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(change models.ProductChange) tea.Cmd {
	ctx := m.ctx
	svc := m.products
	session := m.session

	return func() tea.Msg {
		updated, err := svc.Update(ctx, session, change)
		return productSavedMsg{product: updated, err: err}
	}
}

func (m mainLoopModel) cmdDelete(product models.Product) tea.Cmd {
	ctx := m.ctx
	svc := m.products
	session := m.session

	return func() tea.Msg {
		err := svc.Delete(ctx, session, product)
		return productDeletedMsg{product: product, err: err}
	}
}
