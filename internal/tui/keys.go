package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	scopeLogin         = "login"
	scopeHome          = "tab:home"
	scopeSearch        = "tab:search"
	scopeSearchInput   = "tab:search:input"
	scopeAdd           = "tab:add"
	scopeAddInput      = "tab:add:input"
	scopeNotifications = "tab:notifications"
	scopeProfile       = "profile:main"
	scopeEdit          = "profile:edit"
	scopeSettings      = "profile:settings"
	scopePage          = "screen:page"
)

// browseScopes are the signed-in scopes where no text input has focus.
var browseScopes = []string{scopeHome, scopeSearch, scopeAdd, scopeNotifications, scopeProfile, scopeSettings}

// KeyBinding ties a bubbles key binding to an action in a set of scopes.
// A scope of "*" matches every scope.
type KeyBinding struct {
	key.Binding
	Action string
	Scopes []string
}

func bind(action, help string, scopes []string, keys ...string) KeyBinding {
	return KeyBinding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
		Action:  action,
		Scopes:  scopes,
	}
}

// KeyRegistry resolves key presses to actions for the current scope.
type KeyRegistry struct {
	byScope map[string][]KeyBinding
	global  []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{byScope: make(map[string][]KeyBinding)}
	for _, b := range bindings {
		if slices.Contains(b.Scopes, "*") {
			r.global = append(r.global, b)
			continue
		}
		for _, s := range b.Scopes {
			r.byScope[s] = append(r.byScope[s], b)
		}
	}
	return r
}

// BindingsForScope lists the scope's own bindings first, then global ones.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	return append(slices.Clone(r.byScope[scope]), r.global...)
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.BindingsForScope(scope) {
		if b.Action == action && key.Matches(msg, b.Binding) {
			return true
		}
	}
	return false
}

func signedInScopes(extra ...string) []string {
	return append(slices.Clone(browseScopes), extra...)
}

func DefaultKeyBindings() []KeyBinding {
	overlay := []string{scopePage}
	return []KeyBinding{
		bind("quit", "quit", []string{"*"}, "ctrl+c"),
		bind("quit", "quit", signedInScopes(overlay...), "q"),
		bind("switch-tab-1", "home", browseScopes, "1"),
		bind("switch-tab-2", "search", browseScopes, "2"),
		bind("switch-tab-3", "add", browseScopes, "3"),
		bind("switch-tab-4", "notifications", browseScopes, "4"),
		bind("switch-tab-5", "profile", browseScopes, "5"),
		bind("logout", "log out", signedInScopes(scopeEdit, scopeSearchInput, scopeAddInput), "ctrl+l"),

		bind("next-field", "next field", []string{scopeLogin, scopeEdit}, "tab"),
		bind("prev-field", "prev field", []string{scopeLogin, scopeEdit}, "shift+tab"),
		bind("submit", "log in", []string{scopeLogin}, "enter"),

		bind("retry-location", "refresh location", []string{scopeHome}, "r"),
		bind("focus-input", "search", []string{scopeSearch}, "/"),
		bind("focus-input", "new post", []string{scopeAdd}, "n"),
		bind("submit", "post", []string{scopeAddInput}, "enter"),
		bind("blur-input", "done typing", []string{scopeSearchInput, scopeAddInput}, "esc"),

		bind("edit-profile", "edit profile", []string{scopeProfile}, "e"),
		bind("open-settings", "settings", []string{scopeProfile}, "s"),
		bind("toggle-media", "images/videos", []string{scopeProfile}, "tab"),
		bind("cursor-left", "left", []string{scopeProfile}, "h", "left"),
		bind("cursor-right", "right", []string{scopeProfile}, "l", "right"),
		bind("open-media", "view", []string{scopeProfile}, "enter"),

		bind("done", "done", []string{scopeEdit}, "ctrl+s"),
		bind("back", "cancel", []string{scopeEdit}, "esc"),

		bind("cursor-up", "up", []string{scopeSettings, scopeProfile}, "k", "up"),
		bind("cursor-down", "down", []string{scopeSettings, scopeProfile}, "j", "down"),
		bind("select", "open", []string{scopeSettings}, "enter"),
		bind("back", "back", []string{scopeSettings}, "esc"),

		bind("close", "close", overlay, "esc"),
	}
}

func renderFooter(keys *KeyRegistry, scope string, width int) string {
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	bindings := keys.BindingsForScope(scope)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, width), line)
}
