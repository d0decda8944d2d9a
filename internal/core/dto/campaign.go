// Package dto holds the flat campaign record crossing the storage,
// admin-input and REST boundaries, plus the factories translating it to
// and from the domain entity.
package dto

// Campaign mirrors the entity's scalar fields. It enforces no
// invariants of its own: admin input is validated before it becomes a
// DTO and storage rows are assumed already valid. ID stays untyped
// because the platform identity may be numeric or an opaque string.
type Campaign struct {
	ID           any
	Title        string
	Slug         string
	IsEnabled    bool
	IsOpen       bool
	HasTarget    bool
	TargetAmount int64
}
