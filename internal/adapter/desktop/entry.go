package desktop

import (
	"fyne.io/fyne/v2/widget"
)

// cityEntry is a text field that drops typed characters rejected by allow
// before they reach the text. Submission still validates the whole string.
type cityEntry struct {
	widget.Entry
	allow func(rune) bool
}

func newCityEntry(allow func(rune) bool) *cityEntry {
	e := &cityEntry{allow: allow}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder("Enter city name (letters only)...")
	return e
}

// TypedRune implements fyne.Focusable.
func (e *cityEntry) TypedRune(r rune) {
	if e.allow != nil && !e.allow(r) {
		return
	}
	e.Entry.TypedRune(r)
}
