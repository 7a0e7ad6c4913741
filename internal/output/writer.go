package output

import (
	"io"
)

// ReportWriter is the interface for writing replay reports.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w         io.Writer
	showBoard bool
}

// NewTextWriter creates a new text writer. showBoard appends the final diagram.
func NewTextWriter(w io.Writer, showBoard bool) *TextWriter {
	return &TextWriter{
		w:         w,
		showBoard: showBoard,
	}
}

// WriteReport writes a report immediately.
func (tw *TextWriter) WriteReport(r *Report) error {
	return writeText(tw.w, r, tw.showBoard)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	showBoard bool
	reports   []*Report
	single    bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer, showBoard bool) *JSONWriter {
	return &JSONWriter{
		w:         w,
		showBoard: showBoard,
		reports:   make([]*Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, showBoard bool) *JSONWriter {
	return &JSONWriter{
		w:         w,
		showBoard: showBoard,
		single:    true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		return encodeJSON(jw.w, ReportToJSON(r, jw.showBoard))
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	out := &JSONOutput{
		Scripts: make([]*JSONReport, 0, len(jw.reports)),
	}
	for _, r := range jw.reports {
		out.Scripts = append(out.Scripts, ReportToJSON(r, jw.showBoard))
	}

	err := encodeJSON(jw.w, out)
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
