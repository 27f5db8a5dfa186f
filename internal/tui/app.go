package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/photofeed/internal/auth"
	"github.com/jask/photofeed/internal/config"
	"github.com/jask/photofeed/internal/content"
	"github.com/jask/photofeed/internal/geo"
	"github.com/jask/photofeed/internal/route"
)

const defaultLocateTimeout = 5 * time.Second

// Deps are the collaborators the UI is built from. Store is the only writer
// of the session; Resolver reads it.
type Deps struct {
	Store    *auth.Store
	Resolver *route.Resolver
	Feed     content.Feed
	Drafts   *content.DraftBox
	Locator  geo.Locator
	Config   config.Config
	Log      *zap.Logger
	Now      func() time.Time
}

type locState int

const (
	locIdle locState = iota
	locLoading
	locFound
	locFailed
)

// App is the root Bubble Tea model.
type App struct {
	ctx     context.Context
	store   *auth.Store
	nav     *route.Resolver
	feed    content.Feed
	drafts  *content.DraftBox
	locator geo.Locator
	cfg     config.Config
	log     *zap.Logger
	now     func() time.Time
	keys    *KeyRegistry
	overlays overlays

	width     int
	height    int
	view      route.View
	status    string
	statusErr bool
	quitting  bool

	login loginForm

	loc     locState
	reading geo.Reading
	locErr  string

	search  textinput.Model
	compose textinput.Model

	notifications []content.Notification

	profile     content.Profile
	showVideos  bool
	mediaCursor int
	edit        editForm

	settings       []settingsRow
	settingsCursor int
}

type settingsRow struct {
	section string
	item    content.SettingItem
	logout  bool
}

func New(ctx context.Context, d Deps) *App {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Drafts == nil {
		d.Drafts = content.NewDraftBox(d.Now)
	}
	if d.Locator == nil {
		d.Locator = geo.StaticLocator{Denied: true}
	}

	search := textinput.New()
	search.Prompt = "Search "
	search.Placeholder = "images and videos"

	compose := textinput.New()
	compose.Prompt = "Caption "
	compose.Placeholder = "What's new?"
	compose.CharLimit = 280

	a := &App{
		ctx:           ctx,
		store:         d.Store,
		nav:           d.Resolver,
		feed:          d.Feed,
		drafts:        d.Drafts,
		locator:       d.Locator,
		cfg:           d.Config,
		log:           d.Log.Named("tui"),
		now:           d.Now,
		keys:          NewKeyRegistry(DefaultKeyBindings()),
		width:         100,
		height:        32,
		search:        search,
		compose:       compose,
		notifications: content.Notifications(d.Now()),
		settings:      buildSettingsRows(content.SettingsSections()),
	}
	a.view = a.nav.Current()
	a.login = newLoginForm(a.cfg.Auth.DomainSuffix)
	return a
}

func buildSettingsRows(sections []content.SettingSection) []settingsRow {
	var rows []settingsRow
	for _, s := range sections {
		for _, it := range s.Items {
			rows = append(rows, settingsRow{section: s.Title, item: it})
		}
	}
	return append(rows, settingsRow{item: content.SettingItem{Title: "Log Out"}, logout: true})
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Route returns the resolved view the app is showing.
func (a *App) Route() route.View { return a.view }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case locationMsg:
		a.handleLocation(m)
	case tea.KeyMsg:
		cmd = a.handleKey(m)
	default:
		cmd = a.forward(msg)
	}
	return a, tea.Batch(cmd, a.syncView())
}

// syncView re-resolves the route after every event and runs the entry
// hooks of a newly active view.
func (a *App) syncView() tea.Cmd {
	v := a.nav.Current()
	if v == a.view {
		return nil
	}
	prev := a.view
	a.view = v
	a.log.Debug("view", zap.Stringer("from", prev), zap.Stringer("to", v))
	return a.enter(prev, v)
}

func (a *App) enter(prev, v route.View) tea.Cmd {
	a.overlays.dropAll()
	if v == route.Unauthenticated {
		a.resetSignedInState()
		return textinput.Blink
	}
	if prev == route.Unauthenticated {
		a.profile = content.ProfileFor(a.store.Current().Identifier)
	}
	switch v {
	case route.Home:
		if a.loc == locIdle {
			return a.startLocate()
		}
	case route.ProfileEdit:
		if prev == route.ProfileMain {
			a.edit = newEditForm(a.profile)
			return textinput.Blink
		}
	case route.ProfileSettings:
		if prev == route.ProfileMain {
			a.settingsCursor = 0
		}
	}
	return nil
}

func (a *App) resetSignedInState() {
	a.login = newLoginForm(a.cfg.Auth.DomainSuffix)
	a.loc, a.reading, a.locErr = locIdle, geo.Reading{}, ""
	a.search.Reset()
	a.search.Blur()
	a.compose.Reset()
	a.compose.Blur()
	a.showVideos, a.mediaCursor = false, 0
	a.settingsCursor = 0
	a.profile = content.Profile{}
}

func (a *App) scope() string {
	if a.overlays.top() != nil {
		return scopePage
	}
	switch a.view {
	case route.Home:
		return scopeHome
	case route.Search:
		if a.search.Focused() {
			return scopeSearchInput
		}
		return scopeSearch
	case route.Add:
		if a.compose.Focused() {
			return scopeAddInput
		}
		return scopeAdd
	case route.Notifications:
		return scopeNotifications
	case route.ProfileMain:
		return scopeProfile
	case route.ProfileEdit:
		return scopeEdit
	case route.ProfileSettings:
		return scopeSettings
	default:
		return scopeLogin
	}
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	scope := a.scope()
	if a.keys.IsAction(m, "quit", scope) {
		a.quitting = true
		return tea.Quit
	}

	if a.overlays.top() != nil {
		return a.overlays.update(m)
	}

	if a.keys.IsAction(m, "logout", scope) {
		a.logout()
		return nil
	}
	for i, t := range route.Tabs() {
		if a.keys.IsAction(m, fmt.Sprintf("switch-tab-%d", i+1), scope) {
			a.navigate(a.nav.SelectTab(t))
			return nil
		}
	}

	switch a.view {
	case route.Unauthenticated:
		return a.updateLogin(m, scope)
	case route.Home:
		if a.keys.IsAction(m, "retry-location", scope) {
			return a.startLocate()
		}
	case route.Search:
		return a.updateSearch(m, scope)
	case route.Add:
		return a.updateAdd(m, scope)
	case route.ProfileMain:
		a.updateProfile(m, scope)
	case route.ProfileEdit:
		return a.updateEdit(m, scope)
	case route.ProfileSettings:
		a.updateSettings(m, scope)
	}
	return nil
}

// forward hands non-key messages, such as cursor blinks, to whichever text
// input has focus on the current route.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.view {
	case route.Unauthenticated:
		cmd = a.login.update(msg)
	case route.Search:
		if a.search.Focused() {
			a.search, cmd = a.search.Update(msg)
		}
	case route.Add:
		if a.compose.Focused() {
			a.compose, cmd = a.compose.Update(msg)
		}
	case route.ProfileEdit:
		cmd = a.edit.update(msg)
	}
	return cmd
}

func (a *App) updateProfile(m tea.KeyMsg, scope string) {
	count, cols := len(a.feed.Images), a.gridColumns()
	if a.showVideos {
		count, cols = len(a.feed.Videos), 1
	}
	move := func(delta int) {
		if next := a.mediaCursor + delta; next >= 0 && next < count {
			a.mediaCursor = next
		}
	}
	switch {
	case a.keys.IsAction(m, "edit-profile", scope):
		a.navigate(a.nav.OpenEdit())
	case a.keys.IsAction(m, "open-settings", scope):
		a.navigate(a.nav.OpenSettings())
	case a.keys.IsAction(m, "toggle-media", scope):
		a.showVideos = !a.showVideos
		a.mediaCursor = 0
	case a.keys.IsAction(m, "cursor-left", scope):
		if !a.showVideos && a.mediaCursor%cols > 0 {
			move(-1)
		}
	case a.keys.IsAction(m, "cursor-right", scope):
		if !a.showVideos && a.mediaCursor%cols < cols-1 {
			move(1)
		}
	case a.keys.IsAction(m, "cursor-up", scope):
		move(-cols)
	case a.keys.IsAction(m, "cursor-down", scope):
		move(cols)
	case a.keys.IsAction(m, "open-media", scope):
		a.openMedia()
	}
}

func (a *App) openMedia() {
	if a.showVideos {
		if a.mediaCursor < len(a.feed.Videos) {
			v := a.feed.Videos[a.mediaCursor]
			a.overlays.open(newVideoScreen(v, a.formatDate(v.Timestamp)))
		}
		return
	}
	if a.mediaCursor < len(a.feed.Images) {
		img := a.feed.Images[a.mediaCursor]
		a.overlays.open(newImageScreen(img, a.formatDate(img.Timestamp)))
	}
}

func (a *App) navigate(err error) {
	if err != nil {
		a.log.Warn("navigation rejected", zap.Error(err))
		a.setError(err)
	}
}

func (a *App) updateLogin(m tea.KeyMsg, scope string) tea.Cmd {
	switch {
	case a.keys.IsAction(m, "next-field", scope):
		return a.login.setFocus(a.login.focus + 1)
	case a.keys.IsAction(m, "prev-field", scope):
		return a.login.setFocus(a.login.focus - 1)
	case a.keys.IsAction(m, "submit", scope):
		if a.login.focus == 0 && a.login.password.Value() == "" {
			return a.login.setFocus(1)
		}
		a.submitLogin()
		return nil
	}
	return a.login.update(m)
}

func (a *App) submitLogin() {
	if !a.login.ready() || !a.login.validate() {
		return
	}
	identifier, secret := a.login.credentials()
	if err := a.store.Login(identifier, secret); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			a.setErrorText("Invalid email or password")
		} else {
			a.setError(err)
		}
		a.login.password.Reset()
		return
	}
	a.setStatus("Signed in as " + a.store.Current().Identifier)
}

func (a *App) logout() {
	a.store.Logout()
	a.setStatus("Signed out")
}

func (a *App) updateSearch(m tea.KeyMsg, scope string) tea.Cmd {
	if !a.search.Focused() {
		if a.keys.IsAction(m, "focus-input", scope) {
			return a.search.Focus()
		}
		return nil
	}
	if a.keys.IsAction(m, "blur-input", scope) {
		a.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	return cmd
}

func (a *App) updateAdd(m tea.KeyMsg, scope string) tea.Cmd {
	if !a.compose.Focused() {
		if a.keys.IsAction(m, "focus-input", scope) {
			return a.compose.Focus()
		}
		return nil
	}
	switch {
	case a.keys.IsAction(m, "blur-input", scope):
		a.compose.Blur()
		return nil
	case a.keys.IsAction(m, "submit", scope):
		d, err := a.drafts.Add(a.compose.Value())
		if err != nil {
			a.setError(err)
			return nil
		}
		a.log.Debug("draft added", zap.String("id", d.ID))
		a.compose.Reset()
		a.setStatus("Draft saved")
		return nil
	}
	var cmd tea.Cmd
	a.compose, cmd = a.compose.Update(m)
	return cmd
}

func (a *App) updateEdit(m tea.KeyMsg, scope string) tea.Cmd {
	switch {
	case a.keys.IsAction(m, "next-field", scope):
		return a.edit.setFocus(a.edit.focus + 1)
	case a.keys.IsAction(m, "prev-field", scope):
		return a.edit.setFocus(a.edit.focus - 1)
	case a.keys.IsAction(m, "done", scope):
		a.profile = a.edit.apply(a.profile)
		a.navigate(a.nav.Done())
		a.setStatus("Profile updated")
		return nil
	case a.keys.IsAction(m, "back", scope):
		a.navigate(a.nav.Back())
		return nil
	}
	return a.edit.update(m)
}

func (a *App) updateSettings(m tea.KeyMsg, scope string) {
	switch {
	case a.keys.IsAction(m, "cursor-up", scope):
		if a.settingsCursor > 0 {
			a.settingsCursor--
		}
	case a.keys.IsAction(m, "cursor-down", scope):
		if a.settingsCursor < len(a.settings)-1 {
			a.settingsCursor++
		}
	case a.keys.IsAction(m, "select", scope):
		row := a.settings[a.settingsCursor]
		switch {
		case row.logout:
			a.logout()
		case row.item.Page != "":
			a.overlays.open(NewPageScreen(row.item.Title, row.item.Page))
		default:
			a.setStatus(row.item.Title + " is not available in this demo")
		}
	case a.keys.IsAction(m, "back", scope):
		a.navigate(a.nav.Back())
	}
}

func (a *App) startLocate() tea.Cmd {
	a.loc = locLoading
	a.locErr = ""
	return a.locateCmd()
}

func (a *App) locateCmd() tea.Cmd {
	ctx, locator := a.ctx, a.locator
	timeout := a.cfg.Location.Timeout
	if timeout <= 0 {
		timeout = defaultLocateTimeout
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		r, err := locator.Locate(ctx)
		return locationMsg{reading: r, err: err}
	}
}

func (a *App) handleLocation(m locationMsg) {
	if a.loc != locLoading {
		return
	}
	if m.err != nil {
		a.loc = locFailed
		if errors.Is(m.err, geo.ErrPermissionDenied) {
			a.locErr = "Permission to access location was denied"
		} else {
			a.locErr = "Error fetching location"
		}
		a.log.Info("locate failed", zap.Error(m.err))
		a.setErrorText(a.locErr)
		return
	}
	a.loc = locFound
	a.reading = m.reading
}

func (a *App) setStatus(text string) {
	a.status = text
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.setStatus("")
		return
	}
	a.setErrorText(err.Error())
}

func (a *App) setErrorText(text string) {
	a.status = text
	a.statusErr = true
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	chrome := 2
	if a.view.Authenticated() {
		chrome = 3
	}
	bodyHeight := max(1, a.height-chrome)

	var body string
	if top := a.overlays.top(); top != nil {
		body = titleStyle.Render(top.Title()) + "\n\n" + top.View(a.width, bodyHeight-2)
	} else {
		body = a.renderBody()
	}
	body = lipgloss.NewStyle().Height(bodyHeight).Render(clipHeight(body, bodyHeight))

	parts := make([]string, 0, 4)
	if a.view.Authenticated() {
		parts = append(parts, renderTabBar(a.view.Tab(), len(a.notifications), a.width))
	}
	parts = append(parts, body, renderStatusBar(a.status, a.statusErr, a.width), renderFooter(a.keys, a.scope(), a.width))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderBody() string {
	switch a.view {
	case route.Home:
		return a.renderHome()
	case route.Search:
		return a.renderSearch()
	case route.Add:
		return a.renderAdd()
	case route.Notifications:
		return a.renderNotifications()
	case route.ProfileMain:
		return a.renderProfile()
	case route.ProfileEdit:
		return a.edit.view(a.profile)
	case route.ProfileSettings:
		return a.renderSettings()
	default:
		return a.login.view(a.width)
	}
}
