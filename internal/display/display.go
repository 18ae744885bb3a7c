// Package display puts rendered charts on screen.
package display

// Displayer shows a rendered chart and blocks until the viewer dismisses
// it. It exists so the command layer can be exercised without opening a
// real window.
type Displayer interface {
	Show(title string, png []byte) error
}

// NopDisplayer records Show calls without opening a window.
type NopDisplayer struct {
	Titles []string
	Err    error
}

func (d *NopDisplayer) Show(title string, png []byte) error {
	d.Titles = append(d.Titles, title)
	return d.Err
}

// Calls returns how many times Show was invoked.
func (d *NopDisplayer) Calls() int {
	return len(d.Titles)
}
