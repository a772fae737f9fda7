package models

// User represents a registered user.
//
// A user's group memberships are not stored on the struct; they are resolved
// through the store (see Store.GetUserGroups) to keep the object graph
// acyclic.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64 `json:"createdAt"`
}
