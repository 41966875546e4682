package record

import "fmt"

// User is a canonical user account. Returned only to authenticated callers.
type User struct {
	id    int
	name  string
	email string
}

// NewUser creates a canonical user record.
func NewUser(id int, name, email string) (User, error) {
	if id <= 0 {
		return User{}, fmt.Errorf("user record requires a positive id, got %d", id)
	}
	return User{id: id, name: name, email: email}, nil
}

// ID returns the user identifier.
func (u *User) ID() int { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }
