package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-stock-keeper/internal/mock"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func newTestRoot(t *testing.T) (RootModel, *mock.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	info := models.NewAppBuildInfo("v1.0.0", "2026-10-19", "abc123")
	return newLoginFlowModel(context.Background(), auth, info), auth
}

func rootStep(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	out, ok := next.(RootModel)
	require.True(t, ok)
	return out, cmd
}

// rootRun feeds msg and every message its commands produce back into r,
// skipping cursor blinks.
func rootRun(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	r, cmd := rootStep(t, r, msg)
	for cmd != nil {
		next := cmd()
		switch next.(type) {
		case tea.QuitMsg:
			return r, cmd
		case NavigateTo, LoginResult, RegisterResult, RegisterSuccessNotice:
			r, cmd = rootStep(t, r, next)
		default:
			return r, nil
		}
	}
	return r, nil
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	r, _ := newTestRoot(t)

	r, _ = rootStep(t, r, keyPress("v"))
	require.True(t, r.showBuildInfo)
	view := r.View()
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "abc123")

	r, _ = rootStep(t, r, keyPress("esc"))
	assert.False(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "STOCK KEEPER")
}

func TestRootModel_QuitFromMenu(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := rootStep(t, r, keyPress("q"))
	assert.True(t, r.quitByUser)
	assert.True(t, isQuit(cmd))
}

func TestRootModel_LoginFlow(t *testing.T) {
	r, auth := newTestRoot(t)

	r, _ = rootRun(t, r, keyPress("enter"))
	require.IsType(t, &LoginModel{}, r.current)

	// "q" is plain text outside the menu.
	r, _ = rootRun(t, r, keyPress("alice"))
	r, _ = rootRun(t, r, keyPress("q"))
	assert.False(t, r.quitByUser)
	r, _ = rootRun(t, r, keyPress("tab"))
	r, _ = rootRun(t, r, keyPress("pw1"))

	session := models.Session{ID: "s-1", UserID: 7, Login: "aliceq"}
	auth.EXPECT().Login(gomock.Any(), models.User{Login: "aliceq", Password: "pw1"}).Return(session, nil)

	r, cmd := rootRun(t, r, keyPress("enter"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, session, r.session)
}

func TestRootModel_LoginWrongPassword(t *testing.T) {
	r, auth := newTestRoot(t)

	r, _ = rootRun(t, r, keyPress("enter"))
	r, _ = rootRun(t, r, keyPress("alice"))
	r, _ = rootRun(t, r, keyPress("tab"))
	r, _ = rootRun(t, r, keyPress("pw2"))

	auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{}, service.ErrWrongPassword)

	r, cmd := rootRun(t, r, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.False(t, r.session.Valid())
	assert.Contains(t, r.View(), "wrong username or password")

	login := r.current.(*LoginModel)
	assert.Empty(t, login.inputs[1].Value())
}

func TestRootModel_RegisterThenMenu(t *testing.T) {
	r, auth := newTestRoot(t)

	r, _ = rootRun(t, r, keyPress("down"))
	r, _ = rootRun(t, r, keyPress("enter"))
	require.IsType(t, &RegisterModel{}, r.current)

	r, _ = rootRun(t, r, keyPress("alice"))
	r, _ = rootRun(t, r, keyPress("tab"))
	r, _ = rootRun(t, r, keyPress("pw1"))
	r, _ = rootRun(t, r, keyPress("tab"))
	r, _ = rootRun(t, r, keyPress("pw1"))

	auth.EXPECT().Register(gomock.Any(), models.User{Login: "alice", Password: "pw1"}).Return(nil)

	r, _ = rootRun(t, r, keyPress("enter"))
	require.IsType(t, &MenuModel{}, r.current)
	assert.Contains(t, r.View(), "User alice registered")
}

func TestRootModel_RegisterDuplicate(t *testing.T) {
	r, auth := newTestRoot(t)

	r, _ = rootRun(t, r, keyPress("down"))
	r, _ = rootRun(t, r, keyPress("enter"))
	r, _ = rootRun(t, r, keyPress("alice"))
	r, _ = rootRun(t, r, keyPress("tab"))
	r, _ = rootRun(t, r, keyPress("pw2"))
	r, _ = rootRun(t, r, keyPress("tab"))
	r, _ = rootRun(t, r, keyPress("pw2"))

	auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(store.ErrLoginAlreadyExists)

	r, _ = rootRun(t, r, keyPress("enter"))
	require.IsType(t, &RegisterModel{}, r.current)
	assert.Contains(t, r.View(), "this username is already taken")
}

func TestRegisterModel_PasswordMismatch(t *testing.T) {
	r, _ := newTestRoot(t)

	r, _ = rootRun(t, r, keyPress("down"))
	r, _ = rootRun(t, r, keyPress("enter"))
	r, _ = rootRun(t, r, keyPress("alice"))
	r, _ = rootRun(t, r, keyPress("tab"))
	r, _ = rootRun(t, r, keyPress("pw1"))
	r, _ = rootRun(t, r, keyPress("tab"))
	r, _ = rootRun(t, r, keyPress("pw2"))

	// No Register expectation: the strict mock fails the test on any call.
	r, _ = rootRun(t, r, keyPress("enter"))
	assert.Contains(t, r.View(), "passwords do not match")
}

func TestRootModel_EscReturnsToMenu(t *testing.T) {
	r, _ := newTestRoot(t)

	r, _ = rootRun(t, r, keyPress("enter"))
	require.IsType(t, &LoginModel{}, r.current)

	r, _ = rootRun(t, r, keyPress("esc"))
	assert.IsType(t, &MenuModel{}, r.current)
}
