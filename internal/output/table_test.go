package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct {
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestTableWriter_Flush(t *testing.T) {
	var buf bytes.Buffer
	w := newTableWriter(&buf)

	w.WriteHeader("NAME", "SSID")
	w.WriteRow("home", "MyHomeWiFi")
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "MyHomeWiFi")
}

func TestTableWriter_FlushReportsWriteError(t *testing.T) {
	wantErr := errors.New("pipe closed")
	w := newTableWriter(&failingWriter{err: wantErr})

	w.WriteRow("home", "MyHomeWiFi")
	assert.ErrorIs(t, w.Flush(), wantErr)
}
