package tui

import "github.com/MKhiriev/go-stock-keeper/internal/app"

type errorOverlayModel struct {
	kind    errorKind
	title   string
	message string
}

func newErrorOverlay(err error) *errorOverlayModel {
	kind, title, message := describeError(err)
	return &errorOverlayModel{kind: kind, title: title, message: message}
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render(m.title) + "\n\n" + m.message
	if m.kind == errorKindStorage {
		content += "\n\n" + app.MsgNothingChanged
	}
	content += "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}
