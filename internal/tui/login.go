package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/photofeed/internal/auth"
)

// loginForm collects the identifier and secret. It validates the identifier
// suffix itself and only hands complete input to the session store.
type loginForm struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	suffix   string
	fieldErr string
}

func newLoginForm(suffix string) loginForm {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = "Email    "
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = "Password "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{email: email, password: password, suffix: suffix}
}

func (f *loginForm) ready() bool {
	return f.email.Value() != "" && f.password.Value() != ""
}

func (f *loginForm) setFocus(i int) tea.Cmd {
	f.focus = (i + 2) % 2
	if f.focus == 0 {
		f.password.Blur()
		return f.email.Focus()
	}
	f.email.Blur()
	return f.password.Focus()
}

// validate applies the form's identifier rule and records the field error.
func (f *loginForm) validate() bool {
	if f.suffix != "" && !auth.HasDomainSuffix(f.email.Value(), f.suffix) {
		f.fieldErr = fmt.Sprintf("Please enter a valid email address ending in %s", f.suffix)
		return false
	}
	f.fieldErr = ""
	return true
}

func (f *loginForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.email, cmd = f.email.Update(msg)
		if f.fieldErr != "" {
			f.validate()
		}
		return cmd
	}
	f.password, cmd = f.password.Update(msg)
	return cmd
}

func (f *loginForm) credentials() (string, string) {
	return strings.TrimSpace(f.email.Value()), f.password.Value()
}

func (f *loginForm) view(width int) string {
	lines := []string{
		titleStyle.Render("photofeed"),
		mutedStyle.Render("Sign in to continue"),
		"",
		f.email.View(),
	}
	if f.fieldErr != "" {
		lines = append(lines, errorStyle.Render(f.fieldErr))
	}
	lines = append(lines, f.password.View(), "")
	if f.ready() {
		lines = append(lines, buttonStyle.Render("Login"))
	} else {
		lines = append(lines, buttonOffStyle.Render("Login"))
	}
	box := boxStyle.Width(min(60, max(30, width-4))).Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
