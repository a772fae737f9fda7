package models

// StudyGroup represents a group of users studying one subject.
//
// The owner is referenced by ID only; the owner object itself is never
// embedded, which keeps the wire format free of cycles (owner -> groups ->
// members -> groups ...). The owner is always present in Members: it is added
// on creation and can only leave by destroying the group.
type StudyGroup struct {
	// ID is the unique identifier for the group, assigned by the store.
	ID int64 `json:"id"`

	// Name is the display name of the group, 5 to 30 characters.
	Name string `json:"name"`

	// Subject is the topic this group studies.
	Subject Subject `json:"subject"`

	// OwnerID references the user who created the group. Immutable.
	OwnerID int64 `json:"ownerId"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"createdAt"`

	// Members holds the current members in insertion order, populated by
	// the store.
	Members []*User `json:"members"`
}
