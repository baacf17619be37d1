package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/perora/homekeeper/internal/datadir"
	"github.com/perora/homekeeper/internal/telemetry"
)

// Store owns the item collection: an in-memory list synchronized to a
// single JSON slot file that is reread at construction and rewritten in
// full after every mutation.
//
// A Store is not safe for concurrent use; the conversation loop is its
// only caller and runs one operation at a time.
type Store struct {
	path  string
	now   func() time.Time
	log   *log.Logger
	items []Item
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source. Used by tests and by the
// tool registry so every component shares one notion of "now".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger overrides the logger used for persistence warnings.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Open loads the item slot at path and returns a ready store. A missing
// slot starts empty; an unreadable or malformed slot is logged and also
// starts empty, matching the best-effort persistence contract.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		now:  time.Now,
		log:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// first run
	case err != nil:
		s.log.Warn("item slot unreadable, starting empty", "path", path, "err", err)
	default:
		if err := json.Unmarshal(b, &s.items); err != nil {
			s.log.Warn("item slot malformed, starting empty", "path", path, "err", err)
			s.items = nil
		}
	}
	return s
}

// persist rewrites the whole slot. Failures are logged and reported via
// telemetry but never undo the in-memory mutation: a full disk should not
// erase state the user just dictated, and the divergence heals on the next
// successful write.
func (s *Store) persist() {
	b, err := json.MarshalIndent(s.items, "", "  ")
	if err == nil {
		err = datadir.WriteAtomic(s.path, b)
	}
	if err != nil {
		s.log.Error("failed to persist items", "path", s.path, "err", err)
		telemetry.Emit("persist_error", map[string]any{
			"path":  s.path,
			"items": len(s.items),
			"error": err.Error(),
		})
	}
}

func (s *Store) stamp() string {
	return s.now().Format(TimestampLayout)
}

// CreateItems inserts new records, generating an id and both timestamps
// for each. A single insert is a one-element batch.
func (s *Store) CreateItems(inputs []ItemInput) []Item {
	ts := s.stamp()
	created := make([]Item, 0, len(inputs))
	for _, in := range inputs {
		created = append(created, Item{
			ID:             uuid.NewString(),
			Name:           in.Name,
			Category:       in.Category,
			Location:       in.Location,
			Price:          in.Price,
			PurchaseDate:   in.PurchaseDate,
			ProductionDate: in.ProductionDate,
			ExpiryDate:     in.ExpiryDate,
			CreateDate:     ts,
			UpdateDate:     ts,
			Description:    in.Description,
			Quantity:       in.Quantity,
			Unit:           in.Unit,
			Status:         in.Status,
			Brand:          in.Brand,
			Notes:          in.Notes,
		})
	}
	s.items = append(s.items, created...)
	s.persist()
	return created
}

// UpdateItem merges patch over the record with the given id and restamps
// UpdateDate. The second return is false when the id is absent, in which
// case the collection is untouched.
func (s *Store) UpdateItem(id string, patch ItemPatch) (Item, bool) {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		patch.apply(&s.items[i])
		s.items[i].UpdateDate = s.stamp()
		s.persist()
		return s.items[i], true
	}
	return Item{}, false
}

// DeleteItem removes the record with the given id. Deleting an absent id
// is a no-op that returns false, not an error.
func (s *Store) DeleteItem(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// QueryItems returns every record matching all supplied predicates.
func (s *Store) QueryItems(cond QueryCondition) []Item {
	out := make([]Item, 0)
	for _, it := range s.items {
		if cond.matches(it) {
			out = append(out, it)
		}
	}
	return out
}

// ExpiredItems returns records whose expiry date is strictly before now
// and that are not already marked expired, so items the user has dealt
// with are not resurfaced.
func (s *Store) ExpiredItems() []Item {
	now := s.now()
	out := make([]Item, 0)
	for _, it := range s.items {
		if it.Status == StatusExpired {
			continue
		}
		exp, ok := parseWhen(it.ExpiryDate)
		if ok && exp.Before(now) {
			out = append(out, it)
		}
	}
	return out
}

// LowStockItems returns records with quantity at or below threshold.
func (s *Store) LowStockItems(threshold int) []Item {
	out := make([]Item, 0)
	for _, it := range s.items {
		if it.Quantity <= threshold {
			out = append(out, it)
		}
	}
	return out
}

// Items returns a copy of the whole collection.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ExportData serializes the full collection.
func (s *Store) ExportData() ([]byte, error) {
	return json.MarshalIndent(s.items, "", "  ")
}

// ImportData replaces the full collection with the decoded payload and
// persists it. Returns false, leaving the collection untouched, when the
// payload is not a JSON array of items. `null` decodes into a nil slice
// without error, so the array check is explicit.
func (s *Store) ImportData(data []byte) bool {
	if first := bytes.TrimLeft(data, " \t\r\n"); len(first) == 0 || first[0] != '[' {
		s.log.Warn("import rejected", "err", "payload is not a JSON array")
		return false
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("import rejected", "err", err)
		return false
	}
	s.items = items
	s.persist()
	return true
}
