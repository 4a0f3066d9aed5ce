package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"regequiv/internal/batch"
	"regequiv/internal/equiv"
	"regequiv/internal/nfa"
	"regequiv/internal/regex"
	"regequiv/internal/script"
)

func main() {
	left := flag.String("left", "", "left expression, e.g. star(alt(a, b))")
	right := flag.String("right", "", "right expression")
	cases := flag.String("cases", "", "YAML file of cases to check")
	dotFile := flag.String("dot", "", "write the DFA of -left as Graphviz to this file (- for stdout)")
	nfaFlag := flag.Bool("nfa", false, "with -dot, export the Glushkov NFA instead of the DFA")
	word := flag.String("word", "", "report whether -left (and -right, if given) accept this word")
	verbose := flag.Bool("v", false, "log automaton sizes")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("regequiv: ")

	switch {
	case *cases != "":
		os.Exit(runCases(*cases, *verbose))
	case *left != "":
		l, err := script.Parse("-left", *left)
		if err != nil {
			log.Fatal(err)
		}
		var r *regex.Regex
		if *right != "" {
			if r, err = script.Parse("-right", *right); err != nil {
				log.Fatal(err)
			}
		}
		if *dotFile != "" {
			if err := writeDOT(*dotFile, l, *nfaFlag); err != nil {
				log.Fatal(err)
			}
		}
		if *word != "" {
			if err := regex.CheckWord(*word); err != nil {
				log.Fatal(err)
			}
			printMembership("left", l, *word)
			if r != nil {
				printMembership("right", r, *word)
			}
		}
		switch {
		case r != nil:
			os.Exit(runPair(l, r, *verbose))
		case *dotFile == "" && *word == "":
			usage()
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: regequiv -left <expr> -right <expr> [-v]")
	fmt.Fprintln(os.Stderr, "       regequiv -cases <file.yaml> [-v]")
	fmt.Fprintln(os.Stderr, "       regequiv -left <expr> [-dot <file> [-nfa]] [-word <w>]")
	flag.PrintDefaults()
	os.Exit(2)
}

func runPair(l, r *regex.Regex, verbose bool) int {
	res := equiv.Compare(l, r)
	if verbose {
		log.Printf("left %s: %d states, right %s: %d states", l, res.LeftStates, r, res.RightStates)
	}
	if res.Equivalent {
		fmt.Println("equivalent")
		return 0
	}
	fmt.Printf("not equivalent: %q is accepted only by the %s expression\n", res.Counterexample, res.AcceptedBy)
	return 1
}

func printMembership(side string, r *regex.Regex, w string) {
	verdict := "rejects"
	if equiv.Compile(r).Accepts(w) {
		verdict = "accepts"
	}
	fmt.Printf("%s %s %q\n", side, verdict, w)
}

func runCases(path string, verbose bool) int {
	f, err := batch.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	out, err := f.Run()
	for i := range out {
		fmt.Println(out[i].String())
		if verbose {
			log.Printf("%s: %d/%d states", out[i].Case.Name, out[i].Result.LeftStates, out[i].Result.RightStates)
		}
	}
	if errors.Is(err, batch.ErrMismatch) {
		log.Print(err)
		return 1
	}
	if err != nil {
		log.Fatal(err)
	}
	return 0
}

func writeDOT(path string, r *regex.Regex, asNFA bool) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}
	if asNFA {
		return nfa.FromRegex(r).WriteDOT(w)
	}
	return equiv.Compile(r).WriteDOT(w)
}
