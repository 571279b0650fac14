package domain

import "context"

// Row is one record of a table, keyed by column name.
type Row map[string]any

// Filter is a set of column equality conditions joined with AND.
type Filter map[string]any

// Store is the generic row store behind the application. It offers single-statement
// writes only: there are no transactions and no cascading deletes.
type Store interface {
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Delete(ctx context.Context, table string, filter Filter) error
	Select(ctx context.Context, table string, filter Filter) ([]Row, error)
}

// BlobStore stores uploaded assets and resolves their public URLs.
type BlobStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) error
	PublicURL(path string) string
}

// Identity resolves the authenticated user of a request.
type Identity interface {
	CurrentUser(ctx context.Context) (userID string, ok bool)
}

// IDGenerator returns globally unique identifiers.
type IDGenerator interface {
	NewID() string
}

// NotifyKind is the severity of a user-facing notification.
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)

// Notifier surfaces the outcome of an operation to the user.
type Notifier interface {
	Notify(ctx context.Context, kind NotifyKind, message string)
}
