package utils

import (
	"io"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes rows, a slice of structs with `csv` tags, with a header line.
func WriteCSV(w io.Writer, rows any) error {
	return gocsv.Marshal(rows, w)
}
