// Package models defines the core domain models for the trip planner.
//
// # Models
//
//   - User: registered account, identified by unique email and nickname
//   - Trip: a planning unit owned by exactly one organizer
//   - Membership: grants a user view access to a trip
//   - Expense: money spent against a trip's budget
//
// # Design Principles
//
// 1. **ID references, not pointers**: relationships are foreign-key IDs plus
// explicit store lookups. There are no mutually-referencing object graphs.
//
// 2. **Unix timestamps**: all times are stored as Unix seconds (int64).
//
// 3. **Wire shapes live elsewhere**: the web layer projects these into
// per-endpoint response structs; these types never marshal directly.
package models
