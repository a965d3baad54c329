// Package optparse implements a small getopt-style command-line option
// parser. Options are registered with short and/or long names, an argument
// vector is parsed against the registry in a single forward pass, and the
// results are queried by name afterwards. Malformed input produces warnings
// on a diagnostic stream rather than aborting the parse, so partial results
// stay available to the caller.
package optparse

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/aportelli/OptParser/internal/fuzzy"
)

// optPattern classifies a whole token as a short option (-x, optionally with
// an attached value) or a long option (--name, optionally with =value).
// Group 1: short name, group 2: short attached value, group 3: long name,
// group 4: long attached value. Compiled once, shared read-only by every
// Parser instance.
var optPattern = regexp.MustCompile(`^(?:-([a-zA-Z])(.+)?|--([a-zA-Z_-]+)=?(.+)?)$`)

// suggestMaxDistance is the edit-distance cutoff for "did you mean" hints.
const suggestMaxDistance = 2

// result holds the parse outcome for a single registered option.
type result struct {
	value   string
	present bool
}

// Parser owns an option registry, the result table of the most recent parse
// and the residual positional arguments. The zero value is not ready for
// use; call New.
//
// A Parser is not safe for concurrent use; callers needing that must use
// one instance per goroutine or provide external locking.
type Parser struct {
	opts    []Option
	results []result
	args    []string
	out     io.Writer
	suggest bool
}

// New creates a Parser with warnings directed to stderr.
func New() *Parser {
	return &Parser{out: os.Stderr}
}

// SetOutput redirects parse warnings to w.
func (p *Parser) SetOutput(w io.Writer) {
	p.out = w
}

// SuggestOptions enables "did you mean" hints after unknown-option warnings.
// Disabled by default; the default warning wording is never altered, hints
// are emitted as additional lines.
func (p *Parser) SuggestOptions(enabled bool) {
	p.suggest = enabled
}

// AddOption registers an option. It fails with ErrorTypeDuplicateOption when
// opt shares a non-empty short or long name with an already registered
// option; nothing is added on failure. Registration order defines the lookup
// and display order.
//
// Registering after a parse invalidates the previous results: queries fail
// with ErrorTypeNotParsed until Parse runs again.
func (p *Parser) AddOption(opt Option) error {
	for _, o := range p.opts {
		if opt.collides(o) {
			return newDuplicateOptionError(o.Name())
		}
	}
	p.opts = append(p.opts, opt)
	return nil
}

// MustAddOption is AddOption that panics on error, for static registration.
func (p *Parser) MustAddOption(opt Option) {
	if err := p.AddOption(opt); err != nil {
		panic(err)
	}
}

// Parse walks args (the process arguments without the program name) in a
// single pass, matching tokens against the registered options. It returns
// true only if no warning was emitted: unknown options, value options left
// without a value and missing mandatory options all produce a warning line
// on the configured writer and a false return, but never stop the pass.
// Whatever matched successfully remains available through GotOption,
// OptionValue and Args regardless of the outcome.
//
// Each call rebuilds the result table and positional list from scratch, so
// a Parser is reusable across argument vectors.
func (p *Parser) Parse(args []string) bool {
	expectVal := -1
	correct := true

	p.results = make([]result, len(p.opts))
	p.args = nil
	for i := range p.opts {
		p.results[i].value = p.opts[i].Default
	}
	for _, tok := range args {
		sm := optPattern.FindStringSubmatch(tok)
		switch {
		case sm != nil:
			// The previous value option never got its value.
			if expectVal >= 0 {
				p.warnf("expected value for option %s, got option '%s' instead",
					p.opts[expectVal].Name(), tok)
				expectVal = -1
				correct = false
			}
			if sm[1] != "" {
				// short option, sm[2] is the attached value if any
				if !p.matchOption(sm[1], sm[2], true, &expectVal) {
					p.warnUnknown(tok, sm[1])
					correct = false
				}
			} else {
				// long option, sm[4] is the attached value if any
				if !p.matchOption(sm[3], sm[4], false, &expectVal) {
					p.warnUnknown(tok, sm[3])
					correct = false
				}
			}
		case expectVal >= 0:
			p.results[expectVal].value = tok
			expectVal = -1
		default:
			p.args = append(p.args, tok)
		}
	}
	if expectVal >= 0 {
		p.warnf("expected value for option %s", p.opts[expectVal].Name())
		correct = false
	}
	for i := range p.opts {
		if !p.opts[i].Optional && !p.results[i].present {
			p.warnf("mandatory option %s is missing", p.opts[i].Name())
			correct = false
		}
	}
	return correct
}

// matchOption resolves a matched option token against the registry by exact
// short or long name. On a hit it marks the option present and either stores
// the attached value or arms expectVal so the next plain token supplies it.
// Returns false when no registered option matches.
func (p *Parser) matchOption(name, attached string, short bool, expectVal *int) bool {
	for i := range p.opts {
		reg := p.opts[i].Long
		if short {
			reg = p.opts[i].Short
		}
		if reg == "" || reg != name {
			continue
		}
		p.results[i].present = true
		if p.opts[i].Kind == Value {
			if attached != "" {
				p.results[i].value = attached
			} else {
				*expectVal = i
			}
		}
		// Trigger options ignore any attached characters.
		return true
	}
	return false
}

// GotOption reports whether the named option was present in the most recent
// parse. It fails with ErrorTypeUnknownOption for an unregistered name and
// with ErrorTypeNotParsed when no parse has run since the registry changed.
func (p *Parser) GotOption(name string) (bool, error) {
	i := p.optIndex(name)
	if i < 0 {
		return false, newUnknownOptionError(name)
	}
	if len(p.results) != len(p.opts) {
		return false, newNotParsedError()
	}
	return p.results[i].present, nil
}

// Args returns the positional arguments collected by the last parse, in
// input order.
func (p *Parser) Args() []string {
	return p.args
}

// optIndex finds the registry index of the option whose short or long name
// equals name, or -1.
func (p *Parser) optIndex(name string) int {
	for i := range p.opts {
		if p.opts[i].matches(name) {
			return i
		}
	}
	return -1
}

// rawValue returns the stored textual value for name, with the same hard
// error contract as GotOption.
func (p *Parser) rawValue(name string) (string, error) {
	i := p.optIndex(name)
	if i < 0 {
		return "", newUnknownOptionError(name)
	}
	if len(p.results) != len(p.opts) {
		return "", newNotParsedError()
	}
	return p.results[i].value, nil
}

func (p *Parser) warnf(format string, args ...any) {
	fmt.Fprintf(p.out, "warning: "+format+"\n", args...)
}

// warnUnknown emits the unknown-option warning, plus a suggestion line when
// suggestions are enabled and a registered name is a near miss.
func (p *Parser) warnUnknown(tok, name string) {
	p.warnf("unknown option '%s'", tok)
	if !p.suggest {
		return
	}
	candidates := make([]string, 0, 2*len(p.opts))
	for _, o := range p.opts {
		if o.Short != "" {
			candidates = append(candidates, o.Short)
		}
		if o.Long != "" {
			candidates = append(candidates, o.Long)
		}
	}
	if best := fuzzy.Suggest(name, candidates, suggestMaxDistance); best != "" {
		if i := p.optIndex(best); i >= 0 {
			fmt.Fprintf(p.out, "  did you mean %s?\n", p.opts[i].Name())
		}
	}
}
