package tui

import "github.com/jask/photofeed/internal/geo"

// locationMsg carries the result of an asynchronous Locate call.
type locationMsg struct {
	reading geo.Reading
	err     error
}
