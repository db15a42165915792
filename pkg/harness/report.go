package harness

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Reporter receives case outcomes in execution order.
type Reporter interface {
	Pass(name string)
	Fail(name string, err error)
}

// ConsoleReporter writes one line per case, followed by the error's message
// and stack for failures.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a reporter that writes to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Pass implements Reporter.
func (r *ConsoleReporter) Pass(name string) {
	fmt.Fprintf(r.w, "[PASS] - %s\n", name)
}

// Fail implements Reporter.
func (r *ConsoleReporter) Fail(name string, err error) {
	fmt.Fprintf(r.w, "[FAIL] - %s\n", name)
	fmt.Fprintf(r.w, "%+v\n", err)
}

type discardReporter struct{}

func (discardReporter) Pass(string) {}
func (discardReporter) Fail(string, error) {}

// Summary counts results.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed() {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d passed, %d failed", s.Passed, s.Failed)
}

// Err returns a non-nil error when at least one case failed.
func (s Summary) Err() error {
	if s.Failed == 0 {
		return nil
	}
	return errors.Errorf("%d of %d cases failed", s.Failed, s.Total)
}
