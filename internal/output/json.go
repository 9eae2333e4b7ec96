package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// jsonWriter buffers results and emits them on Close: a single result is
// emitted directly, multiple results as an array.
type jsonWriter struct {
	w      *bufio.Writer
	pretty bool
	indent string
	items  []any
}

func newJSONWriter(w io.Writer, pretty bool, indent string) *jsonWriter {
	return &jsonWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
	}
}

func (w *jsonWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

func (w *jsonWriter) Close() error {
	var out any = w.items
	if len(w.items) == 1 {
		out = w.items[0]
	}

	var encoded []byte
	var err error
	if w.pretty {
		encoded, err = json.MarshalIndent(out, "", w.indent)
	} else {
		encoded, err = json.Marshal(out)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(encoded); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

// jsonlWriter streams each result as one JSON line, flushed immediately.
type jsonlWriter struct {
	w *bufio.Writer
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	return &jsonlWriter{w: bufio.NewWriter(w)}
}

func (w *jsonlWriter) Write(data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := w.w.Write(encoded); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *jsonlWriter) Close() error {
	return w.w.Flush()
}
