// Package users provides the fixed set of user records the checks run against.
package users

// User is a single user record. Only ID is meaningful to callers.
type User struct {
	ID   int
	Name string
}

var fixed = [...]User{
	{ID: 1, Name: "alice"},
	{ID: 2, Name: "bob"},
}

// GetUsers returns the two known users, always in the same order.
// Each call returns a new slice.
func GetUsers() []User {
	out := make([]User, len(fixed))
	copy(out, fixed[:])
	return out
}
