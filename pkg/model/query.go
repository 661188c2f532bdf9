package model

// Projection selects which fields of a record appear in a result, mapping
// field name to an include flag. A nil Projection means no projection at
// all. The record id is suppressed unless the caller names "_id" explicitly.
// Mixing include and exclude flags for regular fields is handed to the store
// unchanged; if the store rejects the combination the error propagates.
type Projection map[string]bool

// SortDirection orders a sorted read. The values are the store's native
// sort operands.
type SortDirection int

const (
	SortAscending  SortDirection = 1
	SortDescending SortDirection = -1
)
