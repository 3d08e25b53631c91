package rendering

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonathan/resumed/internal/logging"
)

// PDFPrinter converts markup into PDF bytes.
type PDFPrinter interface {
	PrintPDF(ctx context.Context, markup string, opts Options) ([]byte, error)
}

// Writer writes rendered markup to its destination, printing PDFs through a PDFPrinter.
type Writer struct {
	printer PDFPrinter
}

// NewWriter creates a Writer. A nil printer uses headless Chrome.
func NewWriter(printer PDFPrinter) *Writer {
	if printer == nil {
		printer = &ChromePrinter{}
	}
	return &Writer{printer: printer}
}

// Write stores markup at opts.Output: printed to PDF when the path ends in .pdf,
// verbatim otherwise.
func (w *Writer) Write(ctx context.Context, markup string, opts Options) error {
	logger := logging.GetLogger("rendering")

	if err := opts.Validate(); err != nil {
		return err
	}

	data := []byte(markup)
	if IsPDF(opts.Output) {
		done := logging.LogOperationStart(logger, "print-pdf")
		pdf, err := w.printer.PrintPDF(ctx, markup, opts)
		done()
		if err != nil {
			return err
		}
		data = pdf
	}

	if err := writeFileAtomic(opts.Output, data); err != nil {
		return err
	}

	logger.Info().Str("path", opts.Output).Int("bytes", len(data)).Msg("Wrote output")
	return nil
}

// writeFileAtomic writes data to a uniquely named sibling file and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &OutputError{Path: path, Message: "failed to create output directory", Cause: err}
		}
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &OutputError{Path: path, Message: "failed to write output file", Cause: err}
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &OutputError{Path: path, Message: "failed to move output into place", Cause: err}
	}

	return nil
}
