// Package models defines the core domain models for Studyhall.
//
// # Models
//
//   - User: a registered user who can own and join study groups
//   - StudyGroup: a group of users studying one subject together
//
// # Design Principles
//
// 1. **Avoid circular references**: relations are carried as ID foreign keys
// (StudyGroup.OwnerID) and resolved through store queries, never as
// bidirectional object references. A group's member list holds users, but a
// user struct never holds its groups, so JSON serialization cannot cycle.
//
// 2. **Store-assigned identity**: IDs are plain int64 values assigned by the
// store on creation. Conversion from path/query strings happens at the API
// boundary with strconv.
//
// 3. **Closed enumerations**: Subject, SortBy and GroupOperation are string
// enums that serialize as their names and are validated on the way in.
package models
