package models

import "time"

// EntityKind names a catalog entity family.
type EntityKind string

const (
	KindActivity EntityKind = "activity"
	KindTeacher  EntityKind = "teacher"
)

// Filter narrows list queries against the catalog store.
type Filter struct {
	HighlightedOnly bool
}

// FetchOperation names a store operation for logs and metrics.
type FetchOperation string

const (
	OpListAll      FetchOperation = "list_all"
	OpListFiltered FetchOperation = "list_filtered"
	OpGetByID      FetchOperation = "get_by_id"
)

// StateEvent carries one store state transition to snapshot subscribers.
type StateEvent struct {
	Kind      EntityKind     `json:"kind"`
	Operation FetchOperation `json:"operation"`
	State     interface{}    `json:"state"`
	At        time.Time      `json:"at"`
}
