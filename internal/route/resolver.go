package route

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/photofeed/internal/auth"
)

// SessionSource is the read-only view of the session store. The epoch
// changes on every successful sign-in.
type SessionSource interface {
	Snapshot() (auth.Session, uint64)
}

type IntentKind int

const (
	IntentSelectTab IntentKind = iota
	IntentOpenEdit
	IntentOpenSettings
	IntentBack
	IntentDone
)

func (k IntentKind) String() string {
	switch k {
	case IntentSelectTab:
		return "select-tab"
	case IntentOpenEdit:
		return "open-edit"
	case IntentOpenSettings:
		return "open-settings"
	case IntentBack:
		return "back"
	case IntentDone:
		return "done"
	default:
		return "unknown"
	}
}

// Intent is a navigation request from the presentation layer. Tab is only
// read for IntentSelectTab.
type Intent struct {
	Kind IntentKind
	Tab  Tab
}

// Resolver tracks the navigation position and resolves it against the
// session it reads from. It never mutates the session.
type Resolver struct {
	src   SessionSource
	nav   Nav
	epoch uint64
	log   *zap.Logger
}

func NewResolver(src SessionSource, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{src: src, log: log.Named("route")}
}

// Current re-reads the session and returns the active view.
func (r *Resolver) Current() View {
	return Resolve(r.sync(), r.nav)
}

// Nav returns the navigation position after syncing with the session.
func (r *Resolver) Nav() Nav {
	r.sync()
	return r.nav
}

func (r *Resolver) SelectTab(t Tab) error { return r.Apply(Intent{Kind: IntentSelectTab, Tab: t}) }
func (r *Resolver) OpenEdit() error       { return r.Apply(Intent{Kind: IntentOpenEdit}) }
func (r *Resolver) OpenSettings() error   { return r.Apply(Intent{Kind: IntentOpenSettings}) }
func (r *Resolver) Back() error           { return r.Apply(Intent{Kind: IntentBack}) }
func (r *Resolver) Done() error           { return r.Apply(Intent{Kind: IntentDone}) }

// Apply performs one navigation intent. A rejected intent leaves the
// position unchanged.
func (r *Resolver) Apply(in Intent) error {
	s := r.sync()
	from := Resolve(s, r.nav)
	if !from.Authenticated() {
		return ErrUnauthenticated
	}

	next, err := step(r.nav, from, in)
	if err != nil {
		r.log.Debug("navigation rejected", zap.Stringer("from", from), zap.Stringer("intent", in.Kind), zap.Error(err))
		return err
	}
	r.nav = next
	r.log.Debug("navigate", zap.Stringer("from", from), zap.Stringer("to", Resolve(s, next)))
	return nil
}

func step(n Nav, from View, in Intent) (Nav, error) {
	switch in.Kind {
	case IntentSelectTab:
		if !in.Tab.Valid() {
			return n, fmt.Errorf("%w: %d", ErrUnknownTab, in.Tab)
		}
		if in.Tab == TabProfile && n.Tab == TabProfile {
			// Re-selecting the active profile tab pops its stack.
			n.Profile = PageMain
			return n, nil
		}
		n.Tab = in.Tab
		return n, nil
	case IntentOpenEdit, IntentOpenSettings:
		if from != ProfileMain {
			return n, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, in.Kind, from)
		}
		n.Profile = PageEdit
		if in.Kind == IntentOpenSettings {
			n.Profile = PageSettings
		}
		return n, nil
	case IntentBack, IntentDone:
		if from != ProfileEdit && from != ProfileSettings {
			return n, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, in.Kind, from)
		}
		n.Profile = PageMain
		return n, nil
	default:
		return n, fmt.Errorf("%w: intent %d", ErrInvalidTransition, in.Kind)
	}
}

// sync drops the navigation position when the session is signed out or a
// new sign-in happened since the last read.
func (r *Resolver) sync() auth.Session {
	s, epoch := r.src.Snapshot()
	if !s.Authenticated || epoch != r.epoch {
		if r.nav != (Nav{}) {
			r.log.Debug("navigation reset", zap.Bool("authenticated", s.Authenticated))
		}
		r.nav = Nav{}
	}
	r.epoch = epoch
	return s
}
