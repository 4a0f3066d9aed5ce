// Package script reads and writes expression trees in constructor notation:
//
//	cat(opt(a), star(a))
//	alt(a, b, c)      // n-ary operators fold to the left
//	eps               // or '#', the empty word
//
// This is a serialization of regex trees for command-line and file input,
// not a pattern syntax.
package script

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"regequiv/internal/regex"
)

type Term struct {
	Pos lexer.Position

	Call   *Call  `parser:"  @@"`
	Eps    bool   `parser:"| @('eps' | '#')"`
	Symbol string `parser:"| @Ident"`
}

type Call struct {
	Pos lexer.Position

	Op   string  `parser:"@('cat' | 'alt' | 'opt' | 'star')"`
	Args []*Term `parser:"'(' @@ (',' @@)* ')'"`
}

var parser = participle.MustBuild[Term]()

// Parse reads one term. name labels positions in error messages.
func Parse(name, src string) (*regex.Regex, error) {
	term, err := parser.ParseString(name, src)
	if err != nil {
		return nil, err
	}
	return term.Regex()
}

// MustParse is Parse for trusted input; it panics on error.
func MustParse(src string) *regex.Regex {
	r, err := Parse("", src)
	if err != nil {
		panic(err)
	}
	return r
}

// Regex converts the parsed term to a tree.
func (t *Term) Regex() (*regex.Regex, error) {
	switch {
	case t.Call != nil:
		return t.Call.Regex()
	case t.Eps:
		return regex.Epsilon(), nil
	}
	if len(t.Symbol) != 1 || regex.Rank(t.Symbol[0]) < 0 {
		return nil, fmt.Errorf("%s: symbol %q is not a single letter a-z", t.Pos, t.Symbol)
	}
	return regex.Terminal(t.Symbol[0]), nil
}

func (c *Call) Regex() (*regex.Regex, error) {
	args := make([]*regex.Regex, len(c.Args))
	for i, a := range c.Args {
		r, err := a.Regex()
		if err != nil {
			return nil, err
		}
		args[i] = r
	}
	switch c.Op {
	case "cat":
		return regex.CatAll(args...), nil
	case "alt":
		return regex.AltAll(args...), nil
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: %s takes one argument, got %d", c.Pos, c.Op, len(args))
	}
	if c.Op == "opt" {
		return regex.Opt(args[0]), nil
	}
	return regex.Star(args[0]), nil
}

// Format writes r in constructor notation. Parse(Format(r)) rebuilds a tree
// of the same shape.
func Format(r *regex.Regex) string {
	var b strings.Builder
	format(&b, r)
	return b.String()
}

func format(b *strings.Builder, r *regex.Regex) {
	switch r.Kind() {
	case regex.KEpsilon:
		b.WriteString("eps")
	case regex.KTerminal:
		b.WriteByte(r.Symbol())
	case regex.KConcat, regex.KAlt:
		b.WriteString(r.Kind().String())
		b.WriteByte('(')
		format(b, r.Left())
		b.WriteString(", ")
		format(b, r.Right())
		b.WriteByte(')')
	case regex.KOpt, regex.KStar:
		b.WriteString(r.Kind().String())
		b.WriteByte('(')
		format(b, r.Left())
		b.WriteByte(')')
	default:
		panic("script: unknown regex kind")
	}
}
