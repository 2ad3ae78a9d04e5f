package structural

import (
	"errors"
	"fmt"

	"patternlab/internal/output"
)

// ErrAccessDenied is returned when a user may not read a document.
var ErrAccessDenied = errors.New("access denied")

// DocumentStore loads documents by ID.
type DocumentStore interface {
	Load(user, id string) (string, error)
}

// ArchiveStore is the slow backing store. It counts its loads.
type ArchiveStore struct {
	documents map[string]string
	Loads     int
}

// NewArchiveStore creates a store with the given documents.
func NewArchiveStore(documents map[string]string) *ArchiveStore {
	return &ArchiveStore{documents: documents}
}

// Load ignores the user; access control is the proxy's job.
func (s *ArchiveStore) Load(_ string, id string) (string, error) {
	s.Loads++
	doc, ok := s.documents[id]
	if !ok {
		return "", fmt.Errorf("document %s not found", id)
	}
	return doc, nil
}

// DocumentProxy checks permissions and caches documents in front of a store.
type DocumentProxy struct {
	store   DocumentStore
	allowed map[string]bool
	cache   map[string]string
}

// NewDocumentProxy creates a proxy granting access to the allowed users.
func NewDocumentProxy(store DocumentStore, allowed ...string) *DocumentProxy {
	proxy := &DocumentProxy{store: store, allowed: map[string]bool{}, cache: map[string]string{}}
	for _, user := range allowed {
		proxy.allowed[user] = true
	}
	return proxy
}

// Load serves allowed users from the cache, loading on first access.
func (p *DocumentProxy) Load(user, id string) (string, error) {
	if !p.allowed[user] {
		return "", fmt.Errorf("%w: %s may not read %s", ErrAccessDenied, user, id)
	}
	if doc, ok := p.cache[id]; ok {
		return doc, nil
	}
	doc, err := p.store.Load(user, id)
	if err != nil {
		return "", err
	}
	p.cache[id] = doc
	return doc, nil
}

func demoProxy(p *output.Printer) error {
	archive := NewArchiveStore(map[string]string{"contract-7": "Service agreement v3"})
	var store DocumentStore = NewDocumentProxy(archive, "alice")

	requests := []struct{ user, id string }{
		{"alice", "contract-7"},
		{"alice", "contract-7"},
		{"mallory", "contract-7"},
		{"alice", "contract-9"},
	}
	for _, req := range requests {
		doc, err := store.Load(req.user, req.id)
		if err != nil {
			p.Warning(err.Error())
			continue
		}
		p.Linef("%s read %s: %s", req.user, req.id, doc)
	}
	p.Linef("archive loads: %d", archive.Loads)
	return nil
}
