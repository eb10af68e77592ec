package konto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// recordWriter builds a JSON object whose keys keep the order in which they
// were written. Its zero value is ready to use; after the first error every
// call is a no-op and MarshalJSON returns that error.
type recordWriter struct {
	buf bytes.Buffer
	err error
}

// Field appends a key-value pair. Decimals are written as bare JSON numbers,
// everything else goes through json.Marshal.
func (w *recordWriter) Field(key string, value any) *recordWriter {
	if w.err != nil {
		return w
	}
	var raw []byte
	switch v := value.(type) {
	case decimal.Decimal:
		raw = []byte(v.String())
	default:
		var err error
		if raw, err = json.Marshal(value); err != nil {
			w.err = fmt.Errorf("cannot marshal value for key %q: %w", key, err)
			return w
		}
	}
	k, err := json.Marshal(key)
	if err != nil {
		w.err = fmt.Errorf("cannot marshal key %q: %w", key, err)
		return w
	}
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(raw)
	return w
}

// MarshalJSON wraps the fields written so far into an object.
func (w *recordWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.buf.Len()+2)
	out = append(out, '{')
	out = append(out, w.buf.Bytes()...)
	return append(out, '}'), nil
}
