package dfa

import (
	"bufio"
	"fmt"
	"io"

	"regequiv/internal/regex"
)

// WriteDOT prints a Graphviz rendering of d. Parallel transitions are merged
// into one edge labelled with their symbols.
func (d *DFA) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for s := range d.trans {
		shape := "circle"
		if d.finals[s] {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", s, shape)
		byTarget := map[int][]int{}
		var order []int
		for rank, to := range d.trans[s] {
			if _, ok := byTarget[to]; !ok {
				order = append(order, to)
			}
			byTarget[to] = append(byTarget[to], rank)
		}
		for _, to := range order {
			fmt.Fprintf(bw, "    q%d -> q%d [label=\"%s\"];\n", s, to, regex.RangeLabel(byTarget[to]))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", d.initial)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
