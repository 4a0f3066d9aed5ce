package glushkov

import "regequiv/internal/regex"

// Linearize returns the local language of r together with the symbol carried
// by each position: symbols[p] is the letter of position p.
func Linearize(r *regex.Regex) (*LocalLanguage, []byte) {
	return linearize(r, nil)
}

// linearize allocates positions by appending to symbols; the table length is
// the next free position, so sibling subtrees never share one.
func linearize(r *regex.Regex, symbols []byte) (*LocalLanguage, []byte) {
	switch r.Kind() {
	case regex.KTerminal:
		p := len(symbols)
		return Literal(p), append(symbols, r.Symbol())
	case regex.KEpsilon:
		return Empty(), symbols
	case regex.KConcat, regex.KAlt:
		var left, right *LocalLanguage
		left, symbols = linearize(r.Left(), symbols)
		right, symbols = linearize(r.Right(), symbols)
		if r.Kind() == regex.KConcat {
			left.Concat(right)
		} else {
			left.Either(right)
		}
		return left, symbols
	case regex.KOpt:
		var l *LocalLanguage
		l, symbols = linearize(r.Left(), symbols)
		l.Optional()
		return l, symbols
	case regex.KStar:
		var l *LocalLanguage
		l, symbols = linearize(r.Left(), symbols)
		l.Repeat()
		return l, symbols
	default:
		panic("glushkov: unknown regex kind " + r.Kind().String())
	}
}
