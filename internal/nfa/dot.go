package nfa

import (
	"bufio"
	"fmt"
	"io"

	"regequiv/internal/regex"
)

// WriteDOT prints a Graphviz rendering of a. Position states are named pN,
// the initial state is "init".
func (a *NFA) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	name := func(s int) string {
		if s == a.initial {
			return "init"
		}
		return fmt.Sprintf("p%d", s)
	}
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for s := range a.trans {
		shape := "circle"
		if a.finals[s] {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    %s [shape=%s];\n", name(s), shape)
		for rank, dst := range a.trans[s] {
			for _, to := range dst {
				fmt.Fprintf(bw, "    %s -> %s [label=\"%c\"];\n", name(s), name(to), regex.Symbol(rank))
			}
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> %s;\n", name(a.initial))
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
