package optparse

import "strings"

// OptionKind distinguishes options that carry a value from boolean triggers.
type OptionKind int

const (
	// Value options consume an attached or following token as their content.
	Value OptionKind = iota
	// Trigger options carry no value; their presence is the signal.
	Trigger
)

// String returns the string representation of the option kind
func (k OptionKind) String() string {
	switch k {
	case Value:
		return "value"
	case Trigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// Option describes a single registrable command-line option.
//
// At least one of Short and Long should be non-empty for the option to be
// addressable by name. Short is a single character invoked as -x, Long a
// multi-character name invoked as --name.
type Option struct {
	Short    string
	Long     string
	Kind     OptionKind
	Optional bool
	Help     string
	Default  string
}

// Name renders the option's display name for diagnostics and usage listings:
// -s/--long with a trailing '=' after the long form for Value-kind options.
func (o Option) Name() string {
	var b strings.Builder
	if o.Short != "" {
		b.WriteString("-")
		b.WriteString(o.Short)
		if o.Long != "" {
			b.WriteString("/")
		}
	}
	if o.Long != "" {
		b.WriteString("--")
		b.WriteString(o.Long)
		if o.Kind == Value {
			b.WriteString("=")
		}
	}
	return b.String()
}

// RequiresValue returns true if the option kind consumes a value token
func (o Option) RequiresValue() bool {
	return o.Kind == Value
}

// matches reports whether name equals either the short or long name.
func (o Option) matches(name string) bool {
	return (o.Short != "" && o.Short == name) || (o.Long != "" && o.Long == name)
}

// collides reports whether two options share a non-empty short or long name.
func (o Option) collides(other Option) bool {
	if o.Short != "" && o.Short == other.Short {
		return true
	}
	if o.Long != "" && o.Long == other.Long {
		return true
	}
	return false
}
