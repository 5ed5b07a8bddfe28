// Package rowlog is the persistence boundary for the record store: an
// append-only tabular log where each row holds one observation's fields in a
// fixed column order. The column set and ordering are a compatibility
// contract; changing them requires a migration outside this package.
package rowlog

// Columns is the fixed column order for every row.
var Columns = []string{
	"id",
	"location_name",
	"latitude",
	"longitude",
	"hard_authenticity",
	"hard_emotion",
	"soft_authenticity",
	"soft_emotion",
	"timestamp",
	"photo_reference",
	"note",
}

// Log is an append-only row log. Implementations must make AppendRow
// all-or-nothing: a row is either durably written or not present at all.
type Log interface {
	// AppendRow durably appends one row of len(Columns) fields.
	AppendRow(row []string) error

	// ReadAllRows returns every stored row in insertion order.
	ReadAllRows() ([][]string, error)

	// Close releases the underlying resource.
	Close() error
}
