package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stock-keeper/internal/mock"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
	"github.com/MKhiriev/go-stock-keeper/models"
)

var (
	testSession = models.Session{ID: "s-1", UserID: 3, Login: "alice"}
	widget      = models.Product{ID: 1, Name: "Widget", SKU: "W1", Supplier: "Acme", Quantity: "10", UserID: 3}
	gadget      = models.Product{ID: 2, Name: "Gadget", SKU: "G7", Supplier: "Globex", Quantity: "", UserID: 3}
)

func newTestMainLoop(t *testing.T) (mainLoopModel, *mock.MockProductService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockProductService(ctrl)
	return newMainLoopModel(context.Background(), svc, testSession), svc
}

// loaded returns m after the initial listing of items.
func loaded(t *testing.T, m mainLoopModel, svc *mock.MockProductService, items ...models.Product) mainLoopModel {
	t.Helper()
	svc.EXPECT().ListAll(gomock.Any(), testSession).Return(items, nil)
	return step(t, m, m.Init()())
}

func step(t *testing.T, m mainLoopModel, msg tea.Msg) mainLoopModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(mainLoopModel)
	require.True(t, ok)
	return out
}

func stepCmd(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(mainLoopModel)
	require.True(t, ok)
	return out, cmd
}

func typeInto(t *testing.T, m mainLoopModel, presses ...string) mainLoopModel {
	t.Helper()
	for _, p := range presses {
		m = step(t, m, keyPress(p))
	}
	return m
}

func TestMainLoop_InitListsProducts(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc, widget, gadget)

	assert.False(t, m.loading)
	assert.Len(t, m.items, 2)

	view := m.View()
	assert.Contains(t, view, "INVENTORY: alice")
	assert.Contains(t, view, "Widget")
	assert.Contains(t, view, "Globex")
	assert.Contains(t, view, "2 product(s)")
}

func TestMainLoop_EmptyInventory(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	assert.Contains(t, m.View(), "No products yet")
}

func TestMainLoop_Navigation(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc, widget, gadget)

	m = typeInto(t, m, "down", "down")
	assert.Equal(t, 1, m.idx)

	m = typeInto(t, m, "k", "up")
	assert.Equal(t, 0, m.idx)
}

func TestMainLoop_AddProduct(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m = typeInto(t, m, "n", "Widget", "tab", "W1", "tab", "Acme", "tab", "10")
	require.Equal(t, modeForm, m.mode)
	assert.Contains(t, m.View(), "NEW PRODUCT")

	want := models.Product{Name: "Widget", SKU: "W1", Supplier: "Acme", Quantity: "10"}
	svc.EXPECT().Add(gomock.Any(), testSession, want).Return(widget, nil)

	m, cmd := stepCmd(t, m, keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	svc.EXPECT().ListAll(gomock.Any(), testSession).Return([]models.Product{widget}, nil)
	m, cmd = stepCmd(t, m, cmd())
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, `Product "Widget" added`, m.status)

	m = step(t, m, cmd())
	assert.Equal(t, []models.Product{widget}, m.items)
}

func TestMainLoop_AddValidationErrorKeepsForm(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)
	m = typeInto(t, m, "n", "Widget")

	verr := &validators.ValidationError{Field: validators.FieldSKU, Err: validators.ErrEmptySKU}
	svc.EXPECT().Add(gomock.Any(), testSession, gomock.Any()).Return(models.Product{}, verr)

	m, cmd := stepCmd(t, m, keyPress("enter"))
	m = step(t, m, cmd())

	require.NotNil(t, m.overlay)
	assert.Equal(t, errorKindInput, m.overlay.kind)
	assert.Equal(t, modeForm, m.mode)
	assert.Contains(t, m.View(), "SKU is required")

	m = step(t, m, keyPress("esc"))
	assert.Nil(t, m.overlay)
	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, "Widget", m.form.inputs[fieldName].Value())
}

func TestMainLoop_EditKeepsSupplierLocked(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc, widget)

	m = step(t, m, keyPress("e"))
	require.Equal(t, modeForm, m.mode)
	assert.Contains(t, m.View(), "Acme (locked)")

	visited := []int{m.form.focus}
	for range 3 {
		m = step(t, m, keyPress("tab"))
		visited = append(visited, m.form.focus)
	}
	assert.Equal(t, []int{fieldName, fieldSKU, fieldQuantity, fieldName}, visited)

	m = step(t, m, keyPress("shift+tab"))
	assert.Equal(t, fieldQuantity, m.form.focus)

	// Clear the quantity and type a new one.
	for range len(widget.Quantity) {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = typeInto(t, m, "12")

	after := widget
	after.ID, after.UserID = 0, 0
	after.Quantity = "12"
	svc.EXPECT().Update(gomock.Any(), testSession, models.ProductChange{Before: widget, After: after}).
		Return(models.Product{ID: 1, Name: "Widget", SKU: "W1", Supplier: "Acme", Quantity: "12", UserID: 3}, nil)

	m, cmd := stepCmd(t, m, keyPress("enter"))
	svc.EXPECT().ListAll(gomock.Any(), testSession).Return(nil, nil)
	m, cmd = stepCmd(t, m, cmd())
	assert.Equal(t, `Product "Widget" updated`, m.status)
	m = step(t, m, cmd())
	assert.Empty(t, m.items)
}

func TestMainLoop_EditWithoutSelection(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	m = step(t, m, keyPress("e"))
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "No product selected", m.status)
}

func TestMainLoop_DeleteAsksForConfirmation(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc, widget)

	m = step(t, m, keyPress("d"))
	require.Equal(t, modeConfirmDelete, m.mode)
	assert.Contains(t, m.View(), `Delete "Widget"`)

	m = step(t, m, keyPress("n"))
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Delete cancelled", m.status)

	m = step(t, m, keyPress("d"))
	svc.EXPECT().Delete(gomock.Any(), testSession, widget).Return(nil)
	m, cmd := stepCmd(t, m, keyPress("y"))
	require.NotNil(t, cmd)

	svc.EXPECT().ListAll(gomock.Any(), testSession).Return(nil, nil)
	m, cmd = stepCmd(t, m, cmd())
	assert.Equal(t, `Product "Widget" deleted`, m.status)
	m = step(t, m, cmd())
	assert.Empty(t, m.items)
}

func TestMainLoop_DeleteStorageError(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc, widget)

	m = step(t, m, keyPress("d"))
	svc.EXPECT().Delete(gomock.Any(), testSession, widget).
		Return(&store.StorageError{Op: "delete product", Err: errors.New("database is locked")})
	m, cmd := stepCmd(t, m, keyPress("y"))
	m = step(t, m, cmd())

	require.NotNil(t, m.overlay)
	assert.Equal(t, errorKindStorage, m.overlay.kind)
	view := m.View()
	assert.Contains(t, view, "database is locked")
	assert.Contains(t, view, "Nothing was changed")
	assert.Len(t, m.items, 1)

	// Keys other than enter/esc are swallowed by the overlay.
	m = step(t, m, keyPress("d"))
	assert.Equal(t, modeBrowse, m.mode)
	m = step(t, m, keyPress("enter"))
	assert.Nil(t, m.overlay)
}

func TestMainLoop_Search(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc, widget, gadget)

	m = typeInto(t, m, "/", " wid ")
	require.Equal(t, modeSearch, m.mode)

	svc.EXPECT().Search(gomock.Any(), testSession, "wid").Return([]models.Product{widget}, nil)
	m, cmd := stepCmd(t, m, keyPress("enter"))
	m = step(t, m, cmd())

	assert.Equal(t, "wid", m.query)
	assert.Equal(t, []models.Product{widget}, m.items)
	assert.Contains(t, m.View(), `Search: "wid"`)

	// Reload keeps the active query.
	svc.EXPECT().Search(gomock.Any(), testSession, "wid").Return([]models.Product{widget}, nil)
	m, cmd = stepCmd(t, m, keyPress("r"))
	m = step(t, m, cmd())

	// esc clears the query and lists everything again.
	svc.EXPECT().ListAll(gomock.Any(), testSession).Return([]models.Product{widget, gadget}, nil)
	m, cmd = stepCmd(t, m, keyPress("esc"))
	m = step(t, m, cmd())
	assert.Empty(t, m.query)
	assert.Len(t, m.items, 2)
}

func TestMainLoop_SearchNoMatches(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc, widget)

	m = typeInto(t, m, "/", "zz")
	svc.EXPECT().Search(gomock.Any(), testSession, "zz").Return(nil, nil)
	m, cmd := stepCmd(t, m, keyPress("enter"))
	m = step(t, m, cmd())

	assert.Contains(t, m.View(), "No products match the search")
}

func TestMainLoop_CopySKU(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc, widget)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m = step(t, m, keyPress("c"))
	assert.Equal(t, "W1", copied)
	assert.Equal(t, "SKU W1 copied to clipboard", m.status)

	m.copyText = func(string) error { return errors.New("no clipboard utility") }
	m = step(t, m, keyPress("c"))
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.overlay.message, "no clipboard utility")
}

func TestMainLoop_LogoutAndQuit(t *testing.T) {
	m, svc := newTestMainLoop(t)
	m = loaded(t, m, svc)

	out, cmd := stepCmd(t, m, keyPress("l"))
	assert.True(t, out.logout)
	assert.True(t, isQuit(cmd))

	out, cmd = stepCmd(t, m, keyPress("q"))
	assert.False(t, out.logout)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_LoadErrorShowsOverlay(t *testing.T) {
	m, svc := newTestMainLoop(t)

	verr := &validators.ValidationError{Field: validators.FieldSession, Err: validators.ErrNoSession}
	svc.EXPECT().ListAll(gomock.Any(), testSession).Return(nil, verr)
	m = step(t, m, m.Init()())

	require.NotNil(t, m.overlay)
	assert.Equal(t, "no user is logged in", m.overlay.message)
}
