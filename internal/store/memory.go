package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
)

// MemoryStore keeps documents in process memory as decoded JSON objects.
// It is used by tests and by STORE_DRIVER=memory for local development.
type MemoryStore struct {
	mu    sync.RWMutex
	colls map[Collection][]memDoc
}

type memDoc struct {
	id   string
	body []byte
	obj  map[string]any
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{colls: make(map[Collection][]memDoc)}
}

func newMemDoc(doc any) (memDoc, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return memDoc{}, err
	}
	id, err := documentID(body)
	if err != nil {
		return memDoc{}, err
	}
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return memDoc{}, err
	}
	return memDoc{id: id, body: body, obj: obj}, nil
}

// normalize turns a filter into the same shape a decoded JSON object has so
// values can be compared with reflect.DeepEqual.
func normalize(f Filter) (map[string]any, error) {
	if len(f) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(obj, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := obj[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// conflicts reports whether d collides on a unique field with any document
// other than the one at index skip.
func (s *MemoryStore) conflicts(coll Collection, d memDoc, skip int) bool {
	for i, other := range s.colls[coll] {
		if i == skip {
			continue
		}
		for _, field := range UniqueFields[coll] {
			if v, ok := d.obj[field]; ok && reflect.DeepEqual(v, other.obj[field]) {
				return true
			}
		}
	}
	return false
}

func (s *MemoryStore) indexOf(coll Collection, id string) int {
	for i, d := range s.colls[coll] {
		if d.id == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) Insert(_ context.Context, coll Collection, doc any) error {
	d, err := newMemDoc(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", coll, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflicts(coll, d, -1) {
		return ErrDuplicate
	}
	s.colls[coll] = append(s.colls[coll], d)
	return nil
}

func (s *MemoryStore) InsertMany(ctx context.Context, coll Collection, docs []any) error {
	for _, doc := range docs {
		if err := s.Insert(ctx, coll, doc); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) matching(coll Collection, filter Filter) ([][]byte, error) {
	want, err := normalize(filter)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var bodies [][]byte
	for _, d := range s.colls[coll] {
		if matches(d.obj, want) {
			bodies = append(bodies, d.body)
		}
	}
	return bodies, nil
}

func (s *MemoryStore) Find(_ context.Context, coll Collection, filter Filter, out any) error {
	bodies, err := s.matching(coll, filter)
	if err != nil {
		return err
	}
	return decodeAll(bodies, out)
}

func (s *MemoryStore) FindOne(_ context.Context, coll Collection, filter Filter, out any) error {
	bodies, err := s.matching(coll, filter)
	if err != nil {
		return err
	}
	if len(bodies) == 0 {
		return ErrNotFound
	}
	return json.Unmarshal(bodies[0], out)
}

func (s *MemoryStore) Replace(_ context.Context, coll Collection, id string, doc any) error {
	d, err := newMemDoc(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", coll, err)
	}
	d.id = id

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(coll, id)
	if i < 0 {
		return ErrNotFound
	}
	if s.conflicts(coll, d, i) {
		return ErrDuplicate
	}
	s.colls[coll][i] = d
	return nil
}

func (s *MemoryStore) SetFields(_ context.Context, coll Collection, id string, fields Filter) error {
	patch, err := normalize(fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(coll, id)
	if i < 0 {
		return ErrNotFound
	}

	obj := make(map[string]any, len(s.colls[coll][i].obj)+len(patch))
	for k, v := range s.colls[coll][i].obj {
		obj[k] = v
	}
	for k, v := range patch {
		obj[k] = v
	}
	body, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", coll, err)
	}

	d := memDoc{id: id, body: body, obj: obj}
	if s.conflicts(coll, d, i) {
		return ErrDuplicate
	}
	s.colls[coll][i] = d
	return nil
}

func (s *MemoryStore) DeleteOne(_ context.Context, coll Collection, filter Filter) error {
	want, err := normalize(filter)
	if err != nil {
		return fmt.Errorf("encode filter: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.colls[coll]
	for i, d := range docs {
		if matches(d.obj, want) {
			s.colls[coll] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteMany(_ context.Context, coll Collection, filter Filter) (int64, error) {
	want, err := normalize(filter)
	if err != nil {
		return 0, fmt.Errorf("encode filter: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]memDoc, 0, len(s.colls[coll]))
	var removed int64
	for _, d := range s.colls[coll] {
		if matches(d.obj, want) {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	s.colls[coll] = kept
	return removed, nil
}

func (s *MemoryStore) Count(_ context.Context, coll Collection, filter Filter) (int64, error) {
	bodies, err := s.matching(coll, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(bodies)), nil
}

func (s *MemoryStore) EnsureIndexes(context.Context) error { return nil }

func (s *MemoryStore) Close(context.Context) error { return nil }
