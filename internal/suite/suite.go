// Package suite holds the built-in checks run by the usercheck command.
package suite

import (
	"github.com/hdwhdw/usercheck/pkg/harness"
	"github.com/hdwhdw/usercheck/pkg/strutil"
	"github.com/hdwhdw/usercheck/pkg/users"
)

// Overridable in tests.
var (
	getUsers    = users.GetUsers
	joinStrings = strutil.JoinStrings
)

var joinInput = []string{"hello", "world", "it's", "me, Go!"}

// Cases returns the built-in checks in execution order.
func Cases() []harness.Case {
	return []harness.Case{
		{Name: "testGetUsers", Fn: testGetUsers},
		{Name: "testJoinStrings", Fn: testJoinStrings},
		{Name: "exampleFailingJoin", Fn: exampleFailingJoin},
	}
}

func testGetUsers() error {
	u := getUsers()
	if err := harness.Equal(u != nil, true, "Users should be an array"); err != nil {
		return err
	}
	return harness.Equal(len(u), 2)
}

func testJoinStrings() error {
	return harness.Equal(joinStrings(joinInput), "hello world it's me, Go!")
}

func exampleFailingJoin() error {
	return harness.NotEqual(joinStrings(joinInput), "not the expected result")
}
