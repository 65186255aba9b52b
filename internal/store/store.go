// Package store is the document persistence layer. Every record type lives in
// its own collection and is addressed by its string "id" field.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Collection names a document collection.
type Collection string

const (
	Students    Collection = "students"
	Groups      Collection = "groups"
	Exams       Collection = "exams"
	Submissions Collection = "submissions"
)

// Collections lists every collection the application uses.
var Collections = []Collection{Students, Groups, Exams, Submissions}

// UniqueFields lists the top-level fields each collection keeps unique.
var UniqueFields = map[Collection][]string{
	Students:    {"id"},
	Groups:      {"id", "name"},
	Exams:       {"id"},
	Submissions: {"id"},
}

// LookupFields lists non-unique fields that are queried by equality.
var LookupFields = map[Collection][]string{
	Students:    {"email", "group"},
	Submissions: {"examId", "cheatingDetected"},
}

var (
	ErrNotFound    = errors.New("document not found")
	ErrDuplicate   = errors.New("duplicate document")
	ErrUnavailable = errors.New("store unavailable")
)

// Filter is an equality match on top-level document fields. An empty filter
// matches every document.
type Filter map[string]any

// ByID matches the document with the given identifier.
func ByID(id string) Filter {
	return Filter{"id": id}
}

// Store is implemented by every persistence driver. Operations are
// independent; no operation spans more than one document atomically except
// InsertMany on drivers that support it.
type Store interface {
	// Insert adds doc to the collection. Returns ErrDuplicate when a unique
	// field collides with an existing document.
	Insert(ctx context.Context, coll Collection, doc any) error
	InsertMany(ctx context.Context, coll Collection, docs []any) error
	// Find decodes every matching document into out, which must be a pointer
	// to a slice. Documents come back in insertion order.
	Find(ctx context.Context, coll Collection, filter Filter, out any) error
	// FindOne decodes the first matching document into out or returns ErrNotFound.
	FindOne(ctx context.Context, coll Collection, filter Filter, out any) error
	// Replace overwrites the document with the given id.
	Replace(ctx context.Context, coll Collection, id string, doc any) error
	// SetFields overwrites only the given top-level fields.
	SetFields(ctx context.Context, coll Collection, id string, fields Filter) error
	DeleteOne(ctx context.Context, coll Collection, filter Filter) error
	DeleteMany(ctx context.Context, coll Collection, filter Filter) (int64, error)
	Count(ctx context.Context, coll Collection, filter Filter) (int64, error)
	// EnsureIndexes prepares uniqueness and lookup indexes.
	EnsureIndexes(ctx context.Context) error
	Close(ctx context.Context) error
}

func unavailable(op string, coll Collection, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, coll, ErrUnavailable, err)
}

// documentID extracts the "id" field of a document by its JSON encoding.
func documentID(body []byte) (string, error) {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return "", err
	}
	if head.ID == "" {
		return "", errors.New("document has no id")
	}
	return head.ID, nil
}

// decodeAll decodes a list of JSON documents into out (pointer to slice).
func decodeAll(bodies [][]byte, out any) error {
	size := 2
	for _, b := range bodies {
		size += len(b) + 1
	}
	buf := make([]byte, 0, size)
	buf = append(buf, '[')
	for i, b := range bodies {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, b...)
	}
	buf = append(buf, ']')
	return json.Unmarshal(buf, out)
}
