// Command usercheck runs the built-in user and string checks and prints one
// [PASS]/[FAIL] line per check.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/golang/glog"

	"github.com/hdwhdw/usercheck/internal/suite"
	"github.com/hdwhdw/usercheck/pkg/harness"
)

var (
	printSummary = flag.Bool("summary", false, "print a pass/fail count after the run")
	failExit     = flag.Bool("fail-exit", false, "exit with status 1 if any check failed")
	runPattern   = flag.String("run", "", "only run checks whose name matches this regexp")
)

// Overridable in tests.
var cases = suite.Cases

func main() {
	flag.Parse()
	code := run(os.Stdout)
	glog.Flush()
	os.Exit(code)
}

func run(out io.Writer) int {
	var re *regexp.Regexp
	if *runPattern != "" {
		var err error
		re, err = regexp.Compile(*runPattern)
		if err != nil {
			glog.Errorf("Invalid -run pattern %q: %v", *runPattern, err)
			return 2
		}
	}

	selected := harness.Filter(cases(), re)
	if len(selected) == 0 {
		glog.Warningf("No checks match %q", *runPattern)
	}

	results := harness.NewRunner(harness.NewConsoleReporter(out)).Run(selected)
	summary := harness.Summarize(results)

	if *printSummary {
		fmt.Fprintln(out, summary)
	}

	if err := summary.Err(); err != nil && *failExit {
		glog.Errorf("Run failed: %v", err)
		return 1
	}
	return 0
}
