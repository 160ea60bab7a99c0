package share

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fileRepository keeps the full list of records as one pretty-printed JSON
// array. It is the default store: no external dependencies, readable with
// any editor, and entirely sufficient at administrative write volume.
//
// Known limitation: the mutex serializes writers within this process only.
// Two processes pointed at the same file can still lose updates; run one
// instance or switch to the SQL store.
type fileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) Repository {
	return &fileRepository{path: path}
}

// load reads the whole store. A missing or unreadable file degrades to "no
// links exist". The store must never make reads fail for absence.
func (r *fileRepository) load() []*ShareLink {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("share_store_read_failed path=%q error=%q", r.path, err)
		}
		return []*ShareLink{}
	}

	var links []*ShareLink
	if err := json.Unmarshal(data, &links); err != nil {
		log.Printf("share_store_parse_failed path=%q error=%q", r.path, err)
		return []*ShareLink{}
	}
	return links
}

// saveAll rewrites the store. Write failures propagate: losing a creation
// or revocation silently is not acceptable.
func (r *fileRepository) saveAll(links []*ShareLink) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return fmt.Errorf("encode share links: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write share links: %w", err)
	}
	return nil
}

func (r *fileRepository) Insert(_ context.Context, l *ShareLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	links := r.load()
	links = append(links, l)
	return r.saveAll(links)
}

func (r *fileRepository) GetByID(_ context.Context, id string) (*ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.load() {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, ErrLinkNotFound
}

func (r *fileRepository) GetByToken(_ context.Context, token string) (*ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.load() {
		if l.Token == token {
			return l, nil
		}
	}
	return nil, ErrLinkNotFound
}

func (r *fileRepository) List(_ context.Context) ([]*ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(), nil
}

// CompactFile purges revoked records and records whose expiry predates
// cutoff from a JSON file store. Used by the offline compaction job only;
// the API never hard-deletes.
func CompactFile(path string, cutoff time.Time) (int, error) {
	r := &fileRepository{path: path}
	r.mu.Lock()
	defer r.mu.Unlock()

	links := r.load()
	kept := make([]*ShareLink, 0, len(links))
	for _, l := range links {
		if !l.IsActive {
			continue
		}
		if l.ExpiresAt != nil && l.ExpiresAt.Before(cutoff) {
			continue
		}
		kept = append(kept, l)
	}

	removed := len(links) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, r.saveAll(kept)
}

func (r *fileRepository) Update(_ context.Context, upd *ShareLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	links := r.load()
	for i, l := range links {
		if l.ID == upd.ID {
			links[i] = upd
			return r.saveAll(links)
		}
	}
	return ErrLinkNotFound
}
