package okra

import (
	"crypto/rand"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/oklog/ulid/v2"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	gofrs "github.com/gofrs/uuid"

	"github.com/zoobzio/okra/internal/surql"
)

// SurrealID is a record id carrying a phantom of its owning model, so ids of
// different tables cannot be confused at compile time.
type SurrealID[T Model] struct {
	rid models.RecordID
}

// RecordID returns the raw record id.
func (s SurrealID[T]) RecordID() models.RecordID { return s.rid }

// Table returns the table component.
func (s SurrealID[T]) Table() string { return s.rid.Table }

// String renders "table:id".
func (s SurrealID[T]) String() string { return surql.Thing(s.rid) }

// IsZero reports whether the id is unset.
func (s SurrealID[T]) IsZero() bool { return s.rid.Table == "" && s.rid.ID == nil }

// Value converts the typed id to a bindable ValueLike.
func (s SurrealID[T]) Value() ValueLike {
	b := NewBinding(s.rid).WithRaw(surql.Thing(s.rid))
	return ValueLike{fragment: b.Dollarised(), bindings: []Binding{b}, kind: kindLiteral}
}

// NewID creates a typed id with a caller-chosen id component.
func NewID[T Model](id any) SurrealID[T] {
	var zero T
	return SurrealID[T]{rid: models.NewRecordID(zero.TableName(), id)}
}

// NewSimpleID creates a typed id with a random NanoID component.
func NewSimpleID[T Model]() SurrealID[T] {
	id, err := gonanoid.New()
	if err != nil {
		// NanoID only fails when the OS randomness source does; surface
		// the failure in the id so it is caught at execution.
		id = fmt.Sprintf("!rand_failed_%v", err)
	}
	return NewID[T](id)
}

// NewUUID creates a typed id with a UUID v4 component.
func NewUUID[T Model]() SurrealID[T] {
	u, err := gofrs.NewV4()
	if err != nil {
		return NewID[T](fmt.Sprintf("!rand_failed_%v", err))
	}
	return NewID[T](models.UUID{UUID: u})
}

// NewULID creates a typed id with a ULID component.
func NewULID[T Model]() SurrealID[T] {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
	return NewID[T](id.String())
}

// FromRecordID converts a raw record id to a typed one, validating that the
// table prefix matches the model's table.
func FromRecordID[T Model](rid models.RecordID) (SurrealID[T], error) {
	var zero T
	if rid.Table != zero.TableName() {
		return SurrealID[T]{}, fmt.Errorf(
			"invalid id %s. Id does not belong to table %s", surql.Thing(rid), zero.TableName())
	}
	return SurrealID[T]{rid: rid}, nil
}

// ParseID parses "table:id" into a typed id, validating the table prefix.
func ParseID[T Model](s string) (SurrealID[T], error) {
	rid, err := models.ParseRecordID(s)
	if err != nil {
		return SurrealID[T]{}, err
	}
	return FromRecordID[T](*rid)
}

// ParseRecordID parses "table:id" into a raw record id.
func ParseRecordID(s string) (models.RecordID, error) {
	rid, err := models.ParseRecordID(s)
	if err != nil {
		return models.RecordID{}, err
	}
	return *rid, nil
}
