// Package store implements the record store: four independent collections,
// each persisted as one JSON array under a namespaced key of an injected
// KV capability. Every mutation is a full-collection read-modify-write —
// last write wins at snapshot granularity, which is acceptable only under
// the system's single-active-writer assumption.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carelink/call-center-api/internal/api/metrics"
	"github.com/carelink/call-center-api/internal/core/ports"
)

// Entity is any record the store can hold: it must expose its assigned id.
type Entity interface {
	EntityID() string
}

// Collection provides uniform CRUD over a single keyed blob of records.
type Collection[T Entity] struct {
	kv       ports.KVStore
	key      string
	notFound error
}

// NewCollection binds a collection to its key. notFound is the sentinel
// returned when a lookup or update misses.
func NewCollection[T Entity](kv ports.KVStore, key string, notFound error) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, notFound: notFound}
}

// GetAll returns the full collection in insertion order. On first access the
// collection self-initializes to an empty array; doing so twice is harmless.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

// GetByID scans for the record with the given id.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].EntityID() == id {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, c.notFound
}

// Add assigns a fresh id and creation timestamp, appends the record, and
// persists the collection. The stored record is returned.
func (c *Collection[T]) Add(ctx context.Context, record T) (*T, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	fields, err := toFields(record)
	if err != nil {
		return nil, fmt.Errorf("%s: encode record: %w", c.key, err)
	}
	fields["id"] = uuid.NewString()
	fields["createdAt"] = time.Now().UTC()

	stamped, err := fromFields[T](fields)
	if err != nil {
		return nil, fmt.Errorf("%s: decode record: %w", c.key, err)
	}

	if err := c.persist(ctx, append(records, stamped)); err != nil {
		return nil, err
	}
	return &stamped, nil
}

// Update applies a shallow merge-patch to the record with the given id:
// patch keys overwrite, every other field is retained. The id and creation
// timestamp are immutable and silently skipped when present in the patch.
func (c *Collection[T]) Update(ctx context.Context, id string, patch ports.Patch) (*T, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range records {
		if records[i].EntityID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, c.notFound
	}

	fields, err := toFields(records[idx])
	if err != nil {
		return nil, fmt.Errorf("%s: encode record: %w", c.key, err)
	}
	for k, v := range patch {
		if k == "id" || k == "createdAt" {
			continue
		}
		fields[k] = v
	}

	merged, err := fromFields[T](fields)
	if err != nil {
		return nil, fmt.Errorf("%s: decode record: %w", c.key, err)
	}

	records[idx] = merged
	if err := c.persist(ctx, records); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, not an error, and writes nothing.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	records, err := c.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.EntityID() != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return c.persist(ctx, kept)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("%s: load: %w", c.key, err)
	}
	if raw == nil {
		if err := c.kv.Set(ctx, c.key, []byte("[]")); err != nil {
			return nil, fmt.Errorf("%s: init: %w", c.key, err)
		}
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%s: decode collection: %w", c.key, err)
	}
	return records, nil
}

func (c *Collection[T]) persist(ctx context.Context, records []T) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%s: encode collection: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("%s: persist: %w", c.key, err)
	}
	metrics.StoreWritesTotal.WithLabelValues(c.key).Inc()
	return nil
}

// toFields flattens a record into its JSON field map so merge-patch and
// metadata stamping operate on the persisted shape, not on Go structs.
func toFields(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func fromFields[T any](fields map[string]any) (T, error) {
	var record T
	raw, err := json.Marshal(fields)
	if err != nil {
		return record, err
	}
	err = json.Unmarshal(raw, &record)
	return record, err
}
