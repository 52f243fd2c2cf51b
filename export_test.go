package minibank

import (
	"io"
	"time"
)

// WriteStatementPlain writes the statement with uncompressed page streams so
// tests can search the rendered text.
func WriteStatementPlain(w io.Writer, accts []*Account, at time.Time) error {
	return writeStatement(w, accts, at, false)
}
