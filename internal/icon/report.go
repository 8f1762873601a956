package icon

import (
	"fmt"
	"io"
)

const (
	successColour = "\x1b[32m"
	defaultColour = "\x1b[0m"
	checkMark     = "✓"
)

// Reporter prints human-readable progress notices. A nil *Reporter is silent.
type Reporter struct {
	w      io.Writer
	colour bool
}

// NewReporter creates a Reporter writing to w. When colour is set the check
// mark is highlighted with ANSI escapes.
func NewReporter(w io.Writer, colour bool) *Reporter {
	return &Reporter{w: w, colour: colour}
}

// Created reports a written icon file.
func (r *Reporter) Created(filename string) {
	if r == nil {
		return
	}
	mark := checkMark
	if r.colour {
		mark = successColour + checkMark + defaultColour
	}
	fmt.Fprintf(r.w, "%s Created %s\n", mark, filename)
}

// Done reports that every icon was written.
func (r *Reporter) Done() {
	if r == nil {
		return
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Placeholder icons created successfully!")
	fmt.Fprintln(r.w, "Note: These are basic placeholders. For production, create proper branded icons.")
}
