package storage

// SnapshotWriter is the interface any export backend must satisfy. The
// payload is the delimited text produced by the table engine; storage only
// packages it.
type SnapshotWriter interface {
	Write(data string) error
	Close() error
}
