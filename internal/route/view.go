package route

import "github.com/jask/photofeed/internal/auth"

// Tab is one of the bottom-bar siblings of the signed-in app.
type Tab int

const (
	TabHome Tab = iota
	TabSearch
	TabAdd
	TabNotifications
	TabProfile
)

var tabNames = [...]string{"Home", "Search", "Add", "Notifications", "Profile"}

// Tabs lists every tab in bar order.
func Tabs() []Tab {
	return []Tab{TabHome, TabSearch, TabAdd, TabNotifications, TabProfile}
}

func (t Tab) Valid() bool { return t >= TabHome && t <= TabProfile }

func (t Tab) String() string {
	if !t.Valid() {
		return "Tab(?)"
	}
	return tabNames[t]
}

// Page is the position inside the profile tab's stack.
type Page int

const (
	PageMain Page = iota
	PageEdit
	PageSettings
)

// View is the closed set of screens the app can show.
type View int

const (
	Unauthenticated View = iota
	Home
	Search
	Add
	Notifications
	ProfileMain
	ProfileEdit
	ProfileSettings
)

var viewNames = [...]string{
	"Unauthenticated",
	"Authenticated.Home",
	"Authenticated.Search",
	"Authenticated.Add",
	"Authenticated.Notifications",
	"Authenticated.Profile.Main",
	"Authenticated.Profile.Edit",
	"Authenticated.Profile.Settings",
}

func (v View) String() string {
	if v < Unauthenticated || v > ProfileSettings {
		return "View(?)"
	}
	return viewNames[v]
}

// Authenticated reports whether v belongs to the signed-in hierarchy.
func (v View) Authenticated() bool { return v != Unauthenticated }

// Tab returns the tab that hosts v. It is only meaningful for signed-in views.
func (v View) Tab() Tab {
	switch v {
	case Search:
		return TabSearch
	case Add:
		return TabAdd
	case Notifications:
		return TabNotifications
	case ProfileMain, ProfileEdit, ProfileSettings:
		return TabProfile
	default:
		return TabHome
	}
}

// Nav is a navigation position inside the signed-in app. The zero value is
// the Home tab with the profile stack at its root.
type Nav struct {
	Tab     Tab
	Profile Page
}

// Resolve maps a session and navigation position to the single active view.
func Resolve(s auth.Session, n Nav) View {
	if !s.Authenticated {
		return Unauthenticated
	}
	switch n.Tab {
	case TabSearch:
		return Search
	case TabAdd:
		return Add
	case TabNotifications:
		return Notifications
	case TabProfile:
		switch n.Profile {
		case PageEdit:
			return ProfileEdit
		case PageSettings:
			return ProfileSettings
		default:
			return ProfileMain
		}
	default:
		return Home
	}
}
