// Package harness runs an ordered list of named checks one after another and
// reports each outcome as it completes.
//
// A failing case never stops the run: errors and panics are caught at the
// case boundary and turned into a FAIL result.
package harness

import (
	"regexp"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Case is a named check. Fn returns nil on success.
type Case struct {
	Name string
	Fn   func() error
}

// Func builds a Case from a function that signals failure only by panicking.
func Func(name string, fn func()) Case {
	return Case{
		Name: name,
		Fn: func() error {
			fn()
			return nil
		},
	}
}

// Result is the outcome of one Case.
type Result struct {
	Name string
	Err  error
}

// Passed reports whether the case completed without error.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Runner executes cases sequentially and hands every outcome to a Reporter.
type Runner struct {
	reporter Reporter
}

// NewRunner creates a Runner. A nil reporter discards outcomes.
func NewRunner(reporter Reporter) *Runner {
	if reporter == nil {
		reporter = discardReporter{}
	}
	return &Runner{reporter: reporter}
}

// Run executes every case in order and returns one Result per case.
func (r *Runner) Run(cases []Case) []Result {
	glog.V(1).Infof("Running %d cases", len(cases))

	results := make([]Result, 0, len(cases))
	for i, c := range cases {
		glog.V(2).Infof("Case %d/%d: %s", i+1, len(cases), c.Name)

		err := runCase(c)
		if err != nil {
			glog.V(1).Infof("Case %s failed: %v", c.Name, err)
			r.reporter.Fail(c.Name, err)
		} else {
			glog.V(3).Infof("Case %s passed", c.Name)
			r.reporter.Pass(c.Name)
		}
		results = append(results, Result{Name: c.Name, Err: err})
	}

	return results
}

// runCase invokes c.Fn, converting a panic into an error carrying a stack.
func runCase(c Case) (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if e, ok := p.(error); ok {
			err = errors.WithStack(e)
			return
		}
		err = errors.Errorf("panic: %v", p)
	}()

	if c.Fn == nil {
		return errors.Errorf("case %q has no function", c.Name)
	}
	return c.Fn()
}

// Filter returns the cases whose name matches re, preserving order.
// A nil re matches everything.
func Filter(cases []Case, re *regexp.Regexp) []Case {
	if re == nil {
		return cases
	}
	var out []Case
	for _, c := range cases {
		if re.MatchString(c.Name) {
			out = append(out, c)
		}
	}
	return out
}
