// Package ledger owns the date-keyed emission records for one user
// session.
//
// All mutation goes through RecordEmission: per-category values are
// additive within a day and the day total is always recomputed from
// the category map, never drifted. Every mutation persists a snapshot
// through the injected storage.Store; a failed save keeps the
// in-memory state (the session's source of truth) and surfaces the
// error to the caller.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/carbontrack/internal/factors"
	"github.com/rshade/carbontrack/internal/storage"
)

// SnapshotKey is the storage key the serialized ledger lives under.
const SnapshotKey = "emissions"

// Ledger write errors.
var (
	// ErrInvalidCategory indicates a write with a category outside the
	// five tracked domains.
	ErrInvalidCategory = errors.New("invalid emission category")

	// ErrInvalidValue indicates a negative or non-finite emission value.
	ErrInvalidValue = errors.New("invalid emission value")
)

// DayRecord is one calendar date's accumulated emissions.
type DayRecord struct {
	Date       Date                         `json:"date"`
	Total      float64                      `json:"total"`
	Categories map[factors.Category]float64 `json:"categories"`
}

// clone returns a deep copy so callers can't mutate ledger state
// through returned records.
func (r DayRecord) clone() DayRecord {
	categories := make(map[factors.Category]float64, len(r.Categories))
	for category, value := range r.Categories {
		categories[category] = value
	}
	return DayRecord{Date: r.Date, Total: r.Total, Categories: categories}
}

// Entry is one journaled logging action. The ledger aggregates per
// day; entries preserve the individual logs behind those aggregates.
type Entry struct {
	ID       string           `json:"id"`
	Date     Date             `json:"date"`
	Category factors.Category `json:"category"`
	Value    float64          `json:"value"`
	LoggedAt time.Time        `json:"logged_at"`
}

// snapshot is the persisted form of the ledger.
type snapshot struct {
	Days    map[Date]DayRecord `json:"days"`
	Entries []Entry            `json:"entries,omitempty"`
}

// Ledger is the mutable per-session emission store. Safe for
// concurrent use, though a session has a single logical writer.
type Ledger struct {
	mu      sync.RWMutex
	days    map[Date]DayRecord
	entries []Entry
	store   storage.Store
	entropy *ulid.MonotonicEntropy
}

// Open loads the ledger snapshot from store. A missing snapshot is
// not an error; it yields an empty ledger.
func Open(store storage.Store) (*Ledger, error) {
	l := &Ledger{
		days:    make(map[Date]DayRecord),
		store:   store,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0), //nolint:gosec // entry IDs need uniqueness, not unpredictability
	}

	blob, err := store.Load(SnapshotKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return l, nil
		}
		return nil, fmt.Errorf("loading ledger snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, fmt.Errorf("decoding ledger snapshot: %w", err)
	}
	if snap.Days != nil {
		l.days = snap.Days
	}
	l.entries = snap.Entries
	return l, nil
}

// RecordEmission adds value to the category's accumulated emissions
// for date and recomputes the day total. Categories are additive:
// logging the same category twice on one day sums, it does not
// replace.
//
// The mutation is applied in memory first, then mirrored to the
// store. A persistence failure is returned but does NOT roll back the
// in-memory update.
func (l *Ledger) RecordEmission(date Date, category factors.Category, value float64) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidValue, value)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.days[date]
	if !ok {
		record = DayRecord{Date: date, Categories: make(map[factors.Category]float64)}
	}
	record.Categories[category] += value

	total := 0.0
	for _, v := range record.Categories {
		total += v
	}
	record.Total = total
	l.days[date] = record

	l.entries = append(l.entries, Entry{
		ID:       ulid.MustNew(ulid.Timestamp(time.Now()), l.entropy).String(),
		Date:     date,
		Category: category,
		Value:    value,
		LoggedAt: time.Now().UTC(),
	})

	return l.persistLocked()
}

// Record returns the day's record, or a zero-valued record when
// nothing has been logged for date. Reading never creates an entry.
func (l *Ledger) Record(date Date) DayRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	record, ok := l.days[date]
	if !ok {
		return DayRecord{Date: date, Categories: map[factors.Category]float64{}}
	}
	return record.clone()
}

// All returns every recorded day, oldest first.
func (l *Ledger) All() []DayRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]DayRecord, 0, len(l.days))
	for _, record := range l.days {
		records = append(records, record.clone())
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records
}

// Len returns the count of distinct recorded dates.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.days)
}

// Entries returns the journaled logging actions, oldest first.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Clear empties the ledger and persists the empty state.
// Irreversible; callers confirm intent before invoking.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.days = make(map[Date]DayRecord)
	l.entries = nil
	return l.persistLocked()
}

// persistLocked serializes the ledger to the store. Must be called
// with l.mu held.
func (l *Ledger) persistLocked() error {
	blob, err := json.Marshal(snapshot{Days: l.days, Entries: l.entries})
	if err != nil {
		return fmt.Errorf("encoding ledger snapshot: %w", err)
	}
	if err := l.store.Save(SnapshotKey, blob); err != nil {
		return fmt.Errorf("saving ledger snapshot: %w", err)
	}
	return nil
}
