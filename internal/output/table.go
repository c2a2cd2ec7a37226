package output

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// TableWriter wraps tabwriter for formatted output
type TableWriter struct {
	writer *tabwriter.Writer
}

// NewTableWriter creates a new table writer on stdout
func NewTableWriter() *TableWriter {
	return newTableWriter(os.Stdout)
}

func newTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// WriteHeader writes table headers
func (t *TableWriter) WriteHeader(headers ...string) {
	t.WriteRow(headers...)
}

// WriteRow writes one table row
func (t *TableWriter) WriteRow(cells ...string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(t.writer, "\t")
		}
		fmt.Fprint(t.writer, c)
	}
	fmt.Fprintln(t.writer)
}

// Flush flushes buffered output to the underlying writer
func (t *TableWriter) Flush() error {
	return t.writer.Flush()
}
