package rendering

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Options controls where and how rendered markup is written.
type Options struct {
	Output      string `validate:"required"`
	BrowserBin  string
	Timeout     time.Duration `validate:"gt=0"`
	PaperFormat string        `validate:"required,oneof=A4 a4 Letter letter"`
}

var validate = validator.New()

// Validate checks the options before any output is attempted.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid render options: %w", err)
	}
	return nil
}

// IsPDF reports whether path ends in ".pdf". The match is case-sensitive.
func IsPDF(path string) bool {
	return strings.HasSuffix(path, ".pdf")
}

// PaperSize returns the width and height in inches for a paper format.
func PaperSize(format string) (width, height float64, ok bool) {
	switch strings.ToLower(format) {
	case "a4":
		return 8.27, 11.7, true
	case "letter":
		return 8.5, 11, true
	}
	return 0, 0, false
}
