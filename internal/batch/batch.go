// Package batch runs equivalence checks listed in a YAML file:
//
//	cases:
//	  - name: star absorbs optional
//	    left: star(a)
//	    right: cat(opt(a), star(a))
//	    want: true
//
// Expressions use the notation of package script. want is optional; cases
// without it are reported but never fail.
package batch

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"regequiv/internal/equiv"
	"regequiv/internal/regex"
	"regequiv/internal/script"
)

type File struct {
	Cases []Case `json:"cases"`
}

type Case struct {
	Name  string `json:"name,omitempty"`
	Left  string `json:"left"`
	Right string `json:"right"`
	Want  *bool  `json:"want,omitempty"`
}

// Outcome is the result of one case.
type Outcome struct {
	Case   Case
	Result equiv.Result
}

// Failed reports whether the case declared an expectation that did not hold.
func (o *Outcome) Failed() bool {
	return o.Case.Want != nil && *o.Case.Want != o.Result.Equivalent
}

// Load reads and decodes a case file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, data)
}

// Decode parses YAML (or JSON) case data. name is used in error messages.
func Decode(name string, data []byte) (*File, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("%s: no cases", name)
	}
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if c.Left == "" || c.Right == "" {
			return nil, fmt.Errorf("%s: %s: left and right are required", name, c.Name)
		}
	}
	return &f, nil
}

// ErrMismatch is returned by Run when at least one expectation failed.
var ErrMismatch = errors.New("batch: expectation mismatch")

// Run evaluates every case in order. Parse errors stop the run; expectation
// mismatches do not, and are summarized by ErrMismatch once all cases ran.
func (f *File) Run() ([]Outcome, error) {
	out := make([]Outcome, 0, len(f.Cases))
	failed := 0
	for _, c := range f.Cases {
		left, err := parseSide(c, "left", c.Left)
		if err != nil {
			return out, err
		}
		right, err := parseSide(c, "right", c.Right)
		if err != nil {
			return out, err
		}
		o := Outcome{Case: c, Result: equiv.Compare(left, right)}
		if o.Failed() {
			failed++
		}
		out = append(out, o)
	}
	if failed > 0 {
		return out, fmt.Errorf("%w: %d of %d cases", ErrMismatch, failed, len(out))
	}
	return out, nil
}

func parseSide(c Case, side, src string) (*regex.Regex, error) {
	r, err := script.Parse(c.Name+"/"+side, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	return r, nil
}

// String renders an outcome as one line of a report.
func (o *Outcome) String() string {
	verdict := "equivalent"
	if !o.Result.Equivalent {
		verdict = fmt.Sprintf("differ on %q (accepted by %s)", o.Result.Counterexample, o.Result.AcceptedBy)
	}
	status := "ok"
	switch {
	case o.Case.Want == nil:
		status = "--"
	case o.Failed():
		status = "FAIL"
	}
	return fmt.Sprintf("%-4s %s: %s", status, o.Case.Name, verdict)
}
