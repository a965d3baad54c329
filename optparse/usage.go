package optparse

import (
	"fmt"
	"io"
	"strings"
)

// WriteUsage renders the option listing to w: one line per registered
// option, in registration order, with the display name right-aligned, the
// help text and the default value when non-empty.
func (p *Parser) WriteUsage(w io.Writer) {
	for _, o := range p.opts {
		fmt.Fprintf(w, "%20s: %s", o.Name(), o.Help)
		if o.Default != "" {
			fmt.Fprintf(w, " (default: %s)", o.Default)
		}
		fmt.Fprintln(w)
	}
}

// String returns the option listing as rendered by WriteUsage.
func (p *Parser) String() string {
	var b strings.Builder
	p.WriteUsage(&b)
	return b.String()
}
