package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/hdwhdw/usercheck/pkg/harness"
)

func setFlags(t *testing.T, summary, failOnError bool, pattern string) {
	t.Helper()
	oldSummary, oldFail, oldRun := *printSummary, *failExit, *runPattern
	*printSummary, *failExit, *runPattern = summary, failOnError, pattern
	t.Cleanup(func() {
		*printSummary, *failExit, *runPattern = oldSummary, oldFail, oldRun
	})
}

func setCases(t *testing.T, fn func() []harness.Case) {
	t.Helper()
	if fn == nil {
		return
	}
	old := cases
	cases = fn
	t.Cleanup(func() { cases = old })
}

func mixedCases() []harness.Case {
	return []harness.Case{
		{Name: "good", Fn: func() error { return nil }},
		{Name: "bad", Fn: func() error { return errors.New("went wrong") }},
	}
}

func TestRun(t *testing.T) {
	allPass := "[PASS] - testGetUsers\n[PASS] - testJoinStrings\n[PASS] - exampleFailingJoin\n"

	tests := []struct {
		name         string
		cases        func() []harness.Case
		summary      bool
		failExit     bool
		pattern      string
		wantCode     int
		wantOut      string
		wantContains []string
	}{
		{
			name:    "default",
			wantOut: allPass,
		},
		{
			name:     "fail-exit with all passing",
			failExit: true,
			wantOut:  allPass,
		},
		{
			name:    "with summary",
			summary: true,
			wantOut: allPass + "3 passed, 0 failed\n",
		},
		{
			name:    "filtered",
			pattern: "^testJoin",
			wantOut: "[PASS] - testJoinStrings\n",
		},
		{
			name:     "bad pattern",
			pattern:  "(",
			wantCode: 2,
		},
		{
			name:         "failure without fail-exit",
			cases:        mixedCases,
			wantContains: []string{"[PASS] - good\n", "[FAIL] - bad\n", "went wrong"},
		},
		{
			name:         "failure with fail-exit",
			cases:        mixedCases,
			failExit:     true,
			wantCode:     1,
			wantContains: []string{"[PASS] - good\n", "[FAIL] - bad\n"},
		},
		{
			name:         "failure with summary",
			cases:        mixedCases,
			summary:      true,
			failExit:     true,
			wantCode:     1,
			wantContains: []string{"[FAIL] - bad\n", "1 passed, 1 failed\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setFlags(t, tt.summary, tt.failExit, tt.pattern)
			setCases(t, tt.cases)

			var buf bytes.Buffer
			assert.Equal(t, tt.wantCode, run(&buf))
			if tt.wantContains == nil {
				assert.Equal(t, tt.wantOut, buf.String())
				return
			}
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
			if tt.summary {
				assert.True(t, strings.HasSuffix(buf.String(), "1 passed, 1 failed\n"))
			}
		})
	}
}
