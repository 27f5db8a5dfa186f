package route

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jask/photofeed/internal/auth"
)

func newStore(t *testing.T) *auth.Store {
	t.Helper()
	allow, err := auth.NewAllowList(auth.DefaultCredentials())
	if err != nil {
		t.Fatalf("allow-list: %v", err)
	}
	return auth.NewStore(allow, nil)
}

func signedIn(t *testing.T) (*auth.Store, *Resolver) {
	t.Helper()
	s := newStore(t)
	if err := s.Login("admin@123.com", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return s, NewResolver(s, nil)
}

func TestInitialStateIsUnauthenticated(t *testing.T) {
	r := NewResolver(newStore(t), nil)
	if got := r.Current(); got != Unauthenticated {
		t.Fatalf("initial view = %s", got)
	}
}

func TestLoginLandsOnHome(t *testing.T) {
	s := newStore(t)
	r := NewResolver(s, nil)
	if err := s.Login("Admin@123.com", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := r.Current(); got != Home {
		t.Fatalf("view after login = %s, want %s", got, Home)
	}
}

func TestResolveNeverShowsAppWhenSignedOut(t *testing.T) {
	for _, tab := range Tabs() {
		for _, page := range []Page{PageMain, PageEdit, PageSettings} {
			if got := Resolve(auth.Session{}, Nav{Tab: tab, Profile: page}); got != Unauthenticated {
				t.Fatalf("Resolve(signed out, %v/%v) = %s", tab, page, got)
			}
		}
	}
}

func TestTabsAreFlatSiblings(t *testing.T) {
	_, r := signedIn(t)
	want := map[Tab]View{TabHome: Home, TabSearch: Search, TabAdd: Add, TabNotifications: Notifications, TabProfile: ProfileMain}
	for _, from := range Tabs() {
		for _, to := range Tabs() {
			if err := r.SelectTab(from); err != nil {
				t.Fatalf("select %s: %v", from, err)
			}
			if err := r.SelectTab(to); err != nil {
				t.Fatalf("select %s -> %s: %v", from, to, err)
			}
			if got := r.Current(); got != want[to] {
				t.Fatalf("%s -> %s gave %s", from, to, got)
			}
		}
	}
}

func TestProfileStackEntryAndReturn(t *testing.T) {
	_, r := signedIn(t)
	mustApply(t, r, Intent{Kind: IntentSelectTab, Tab: TabProfile})

	mustApply(t, r, Intent{Kind: IntentOpenEdit})
	if got := r.Current(); got != ProfileEdit {
		t.Fatalf("got %s", got)
	}
	mustApply(t, r, Intent{Kind: IntentDone})
	if got := r.Current(); got != ProfileMain {
		t.Fatalf("done should return to main, got %s", got)
	}

	mustApply(t, r, Intent{Kind: IntentOpenSettings})
	if got := r.Current(); got != ProfileSettings {
		t.Fatalf("got %s", got)
	}
	mustApply(t, r, Intent{Kind: IntentBack})
	if got := r.Current(); got != ProfileMain {
		t.Fatalf("back should return to main, got %s", got)
	}
}

func TestNoPathBetweenEditAndSettings(t *testing.T) {
	_, r := signedIn(t)
	mustApply(t, r, Intent{Kind: IntentSelectTab, Tab: TabProfile})
	mustApply(t, r, Intent{Kind: IntentOpenEdit})

	if err := r.OpenSettings(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("edit -> settings err = %v", err)
	}
	if err := r.OpenEdit(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("edit -> edit err = %v", err)
	}
	if got := r.Current(); got != ProfileEdit {
		t.Fatalf("rejected intent must not move, got %s", got)
	}

	mustApply(t, r, Intent{Kind: IntentBack})
	mustApply(t, r, Intent{Kind: IntentOpenSettings})
	if err := r.OpenEdit(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("settings -> edit err = %v", err)
	}
}

func TestStackIntentsRejectedOutsideProfile(t *testing.T) {
	_, r := signedIn(t)
	for _, k := range []IntentKind{IntentOpenEdit, IntentOpenSettings, IntentBack, IntentDone} {
		if err := r.Apply(Intent{Kind: k}); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s on Home: err = %v", k, err)
		}
	}
	mustApply(t, r, Intent{Kind: IntentSelectTab, Tab: TabProfile})
	if err := r.Back(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("back on profile main: err = %v", err)
	}
}

func TestUnknownTabRejected(t *testing.T) {
	_, r := signedIn(t)
	if err := r.SelectTab(Tab(42)); !errors.Is(err, ErrUnknownTab) {
		t.Fatalf("err = %v", err)
	}
	if got := r.Current(); got != Home {
		t.Fatalf("got %s", got)
	}
}

func TestIntentsWhileSignedOut(t *testing.T) {
	r := NewResolver(newStore(t), nil)
	if err := r.SelectTab(TabSearch); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err = %v", err)
	}
	if got := r.Current(); got != Unauthenticated {
		t.Fatalf("got %s", got)
	}
}

func TestLogoutFromNestedEditCollapsesToUnauthenticated(t *testing.T) {
	s, r := signedIn(t)
	mustApply(t, r, Intent{Kind: IntentSelectTab, Tab: TabProfile})
	mustApply(t, r, Intent{Kind: IntentOpenEdit})

	s.Logout()
	if got := r.Current(); got != Unauthenticated {
		t.Fatalf("after logout got %s", got)
	}

	if err := s.Login("admin@123.com", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := r.Current(); got != Home {
		t.Fatalf("nested position must not survive logout, got %s", got)
	}
}

func TestReloginDiscardsPositionEvenIfNotObserved(t *testing.T) {
	s, r := signedIn(t)
	mustApply(t, r, Intent{Kind: IntentSelectTab, Tab: TabProfile})
	mustApply(t, r, Intent{Kind: IntentOpenSettings})

	// Sign out and back in between two renders.
	s.Logout()
	if err := s.Login("admin@123.com", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := r.Current(); got != Home {
		t.Fatalf("position must not survive a sign-out, got %s", got)
	}
}

func TestIdentityChangeResetsNav(t *testing.T) {
	s, r := signedIn(t)
	mustApply(t, r, Intent{Kind: IntentSelectTab, Tab: TabNotifications})
	if err := s.Login("dev@123.com", "devmode"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if got := r.Current(); got != Home {
		t.Fatalf("got %s", got)
	}
}

func TestTabSwitchKeepsProfileStackAndReselectPops(t *testing.T) {
	_, r := signedIn(t)
	mustApply(t, r, Intent{Kind: IntentSelectTab, Tab: TabProfile})
	mustApply(t, r, Intent{Kind: IntentOpenEdit})
	mustApply(t, r, Intent{Kind: IntentSelectTab, Tab: TabSearch})
	if got := r.Current(); got != Search {
		t.Fatalf("got %s", got)
	}
	mustApply(t, r, Intent{Kind: IntentSelectTab, Tab: TabProfile})
	if got := r.Current(); got != ProfileEdit {
		t.Fatalf("profile stack should survive tab switch, got %s", got)
	}
	mustApply(t, r, Intent{Kind: IntentSelectTab, Tab: TabProfile})
	if got := r.Current(); got != ProfileMain {
		t.Fatalf("reselecting profile should pop, got %s", got)
	}
}

func TestResolutionIsDeterministic(t *testing.T) {
	history := []Intent{
		{Kind: IntentSelectTab, Tab: TabSearch},
		{Kind: IntentOpenEdit},
		{Kind: IntentSelectTab, Tab: TabProfile},
		{Kind: IntentOpenSettings},
		{Kind: IntentOpenEdit},
		{Kind: IntentBack},
		{Kind: IntentSelectTab, Tab: TabAdd},
		{Kind: IntentSelectTab, Tab: TabProfile},
		{Kind: IntentOpenEdit},
	}
	replay := func() []View {
		_, r := signedIn(t)
		out := []View{r.Current()}
		for _, in := range history {
			_ = r.Apply(in)
			out = append(out, r.Current())
		}
		return out
	}
	first, second := replay(), replay()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("replay mismatch (-first +second):\n%s", diff)
	}
	want := []View{Home, Search, Search, ProfileMain, ProfileSettings, ProfileSettings, ProfileMain, Add, ProfileMain, ProfileEdit}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Fatalf("unexpected history (-want +got):\n%s", diff)
	}
}

func TestViewStrings(t *testing.T) {
	if got := ProfileEdit.String(); got != "Authenticated.Profile.Edit" {
		t.Fatalf("got %q", got)
	}
	if got := Unauthenticated.String(); got != "Unauthenticated" {
		t.Fatalf("got %q", got)
	}
	if ProfileSettings.Tab() != TabProfile || Home.Tab() != TabHome {
		t.Fatalf("view tab mapping broken")
	}
}

func mustApply(t *testing.T, r *Resolver, in Intent) {
	t.Helper()
	if err := r.Apply(in); err != nil {
		t.Fatalf("apply %s: %v", in.Kind, err)
	}
}
