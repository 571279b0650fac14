package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"eventcomposer/internal/domain"
)

// testLogger is a no-op logger so tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type storeCall struct {
	op     string
	table  string
	row    domain.Row
	filter domain.Filter
}

// fakeStore is an in-memory domain.Store that records every call.
type fakeStore struct {
	mu         sync.Mutex
	calls      []storeCall
	tables     map[string][]domain.Row
	insertErr  map[string]error
	deleteErr  map[string]error
	selectErr  map[string]error
	insertHook func(table string) // runs before Insert records the call, outside the lock
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables:    make(map[string][]domain.Row),
		insertErr: make(map[string]error),
		deleteErr: make(map[string]error),
		selectErr: make(map[string]error),
	}
}

func (f *fakeStore) Insert(ctx context.Context, table string, row domain.Row) (domain.Row, error) {
	if f.insertHook != nil {
		f.insertHook(table)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, storeCall{op: "insert", table: table, row: row})
	if err := f.insertErr[table]; err != nil {
		return nil, err
	}
	f.tables[table] = append(f.tables[table], row)
	return row, nil
}

func (f *fakeStore) Delete(ctx context.Context, table string, filter domain.Filter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, storeCall{op: "delete", table: table, filter: filter})
	if err := f.deleteErr[table]; err != nil {
		return err
	}
	kept := f.tables[table][:0]
	for _, row := range f.tables[table] {
		if !matches(row, filter) {
			kept = append(kept, row)
		}
	}
	f.tables[table] = kept
	return nil
}

func (f *fakeStore) Select(ctx context.Context, table string, filter domain.Filter) ([]domain.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, storeCall{op: "select", table: table, filter: filter})
	if err := f.selectErr[table]; err != nil {
		return nil, err
	}
	var out []domain.Row
	for _, row := range f.tables[table] {
		if matches(row, filter) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) count(op, table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.op == op && c.table == table {
			n++
		}
	}
	return n
}

func (f *fakeStore) callsOf(op string) []storeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []storeCall
	for _, c := range f.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeStore) rows(table string) []domain.Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Row(nil), f.tables[table]...)
}

func matches(row domain.Row, filter domain.Filter) bool {
	for k, v := range filter {
		if row[k] != v {
			return false
		}
	}
	return true
}

// fakeBlobStore records uploads; err makes every upload fail.
type fakeBlobStore struct {
	err     error
	uploads []string
}

func (f *fakeBlobStore) Upload(ctx context.Context, path, contentType string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.uploads = append(f.uploads, path)
	return nil
}

func (f *fakeBlobStore) PublicURL(path string) string {
	return "https://cdn.test/" + path
}

// fakeIdentity authenticates userID; the empty id means no user.
type fakeIdentity struct {
	userID string
}

func (f fakeIdentity) CurrentUser(ctx context.Context) (string, bool) {
	return f.userID, f.userID != ""
}

// seqIDs generates prefix-1, prefix-2, ...
type seqIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (s *seqIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

type notification struct {
	kind    domain.NotifyKind
	message string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (f *fakeNotifier) Notify(ctx context.Context, kind domain.NotifyKind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, notification{kind: kind, message: message})
}

func (f *fakeNotifier) last() notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return notification{}
	}
	return f.sent[len(f.sent)-1]
}

// fakeCatalog serves fixed items per category.
type fakeCatalog struct {
	items map[domain.CategoryTag][]domain.ContentItem
	err   error
}

func (f *fakeCatalog) List(ctx context.Context, category domain.CategoryTag) ([]domain.ContentItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.ContentItem(nil), f.items[category]...), nil
}

func (f *fakeCatalog) Search(ctx context.Context, category domain.CategoryTag, query string) ([]domain.ContentItem, error) {
	items, err := f.List(ctx, category)
	if err != nil || query == "" {
		return items, err
	}
	var out []domain.ContentItem
	for _, it := range items {
		if matchesQuery(it, strings.ToLower(query)) {
			out = append(out, it)
		}
	}
	return out, nil
}
