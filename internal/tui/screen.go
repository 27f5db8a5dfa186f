package tui

import tea "github.com/charmbracelet/bubbletea"

// Screen is a read-only overlay drawn above the active route, such as a
// settings page or a media preview. It never navigates; it can only ask to
// close. Update reports true when the screen wants to be closed.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Title() string
}

// overlays holds the screens stacked above the current route. They belong to
// the route they were opened from and are dropped when the route changes.
type overlays struct {
	stack []Screen
}

func (o *overlays) open(s Screen) {
	if s != nil {
		o.stack = append(o.stack, s)
	}
}

func (o *overlays) top() Screen {
	if len(o.stack) == 0 {
		return nil
	}
	return o.stack[len(o.stack)-1]
}

func (o *overlays) depth() int { return len(o.stack) }

func (o *overlays) dropAll() { o.stack = nil }

// update sends msg to the top screen and closes it when it asks to be.
func (o *overlays) update(msg tea.Msg) tea.Cmd {
	top := o.top()
	if top == nil {
		return nil
	}
	next, cmd, closed := top.Update(msg)
	switch {
	case closed:
		o.stack = o.stack[:len(o.stack)-1]
	case next != nil:
		o.stack[len(o.stack)-1] = next
	}
	return cmd
}
