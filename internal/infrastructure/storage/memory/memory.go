// Package memory keeps documents in process memory. It backs the default
// development configuration and the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"clipshare/internal/model"
)

type Storage struct {
	mu          sync.RWMutex
	collections map[model.Collection][]model.Document
}

func New() *Storage {
	return &Storage{
		collections: make(map[model.Collection][]model.Document),
	}
}

func (s *Storage) Insert(_ context.Context, collection model.Collection, doc model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.collections[collection] {
		if d.ID == doc.ID {
			return fmt.Errorf("insert %s: duplicate id %q", collection, doc.ID)
		}
	}

	docs := append(s.collections[collection], clone(doc))
	// newest first, same order the database backends return
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].ID > docs[j].ID
		}
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	s.collections[collection] = docs

	return nil
}

func (s *Storage) Find(_ context.Context, collection model.Collection, opts model.FindOptions) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	if opts.Skip < 0 {
		opts.Skip = 0
	}
	if opts.Skip >= len(docs) {
		return []model.Document{}, nil
	}

	end := len(docs)
	if opts.Limit > 0 && opts.Skip+opts.Limit < end {
		end = opts.Skip + opts.Limit
	}

	result := make([]model.Document, 0, end-opts.Skip)
	for _, d := range docs[opts.Skip:end] {
		result = append(result, clone(d))
	}
	return result, nil
}

func (s *Storage) FindByID(_ context.Context, collection model.Collection, id string) (model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.collections[collection] {
		if d.ID == id {
			return clone(d), nil
		}
	}
	return model.Document{}, model.ErrNotFound
}

func (s *Storage) Count(_ context.Context, collection model.Collection) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.collections[collection])), nil
}

func (s *Storage) DeleteByID(_ context.Context, collection model.Collection, id string) (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, d := range docs {
		if d.ID == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return d, nil
		}
	}
	return model.Document{}, model.ErrNotFound
}

func (s *Storage) DeleteAll(_ context.Context, collection model.Collection) ([]model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	delete(s.collections, collection)
	if docs == nil {
		return []model.Document{}, nil
	}
	return docs, nil
}

func (s *Storage) Ping(_ context.Context) error {
	return nil
}

func (s *Storage) Close(_ context.Context) error {
	return nil
}

func clone(d model.Document) model.Document {
	body := make([]byte, len(d.Body))
	copy(body, d.Body)
	d.Body = body
	return d
}
