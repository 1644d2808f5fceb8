// Package models defines the core domain models for RoomieSplit.
//
// # Models
//
//   - User: a registered account with credentials and UI preferences
//   - Household: an owner-scoped grouping of roommates
//   - Roommate: a named, emailed participant embedded in a household
//   - Purchase: a single expense with a payer, a cost, and assignees
//
// # Design Principles
//
//  1. **Avoid circular references**: relationships are ID strings, not pointers
//  2. **Free-text participants**: a roommate is a label, not an account; purchase
//     assignees are free text and carry no referential integrity to the roster
//  3. **Storage-agnostic**: models carry JSON tags for the API surface but no
//     knowledge of the persistence layer
package models
