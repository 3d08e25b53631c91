package themes

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resumed/internal/types"
)

//go:embed templates/*.html.tmpl
var bundledFS embed.FS

// TemplateTheme renders the typed JSON Resume view through an html/template.
type TemplateTheme struct {
	name string
	tmpl *template.Template
}

// Name returns the theme name.
func (t *TemplateTheme) Name() string {
	return t.name
}

// Render executes the template with the document's typed view.
func (t *TemplateTheme) Render(_ context.Context, doc *types.Resume) (string, error) {
	jr, err := doc.Typed()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := t.tmpl.Execute(&sb, jr); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", t.name, err)
	}
	return sb.String(), nil
}

// Bundled returns the themes shipped inside the binary.
func Bundled() []Theme {
	entries, err := bundledFS.ReadDir("templates")
	if err != nil {
		panic(fmt.Sprintf("failed to read bundled templates: %v", err))
	}

	out := make([]Theme, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".html.tmpl")
		content, err := bundledFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("failed to read bundled template %s: %v", entry.Name(), err))
		}
		out = append(out, &TemplateTheme{
			name: name,
			tmpl: template.Must(newTemplate(name).Parse(string(content))),
		})
	}
	return out
}

// LoadTemplateFile parses an html/template file on disk as a theme.
func LoadTemplateFile(path string) (Theme, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Name: path, Cause: err}
	}

	name := filepath.Base(path)
	tmpl, err := newTemplate(name).Parse(string(content))
	if err != nil {
		return nil, &LoadError{Name: path, Cause: err}
	}

	return &TemplateTheme{name: path, tmpl: tmpl}, nil
}

func newTemplate(name string) *template.Template {
	return template.New(name).Funcs(template.FuncMap{
		"join":       strings.Join,
		"formatDate": FormatDate,
		"dateRange":  DateRange,
		"initials":   Initials,
	})
}

// FormatDate turns an ISO 8601 date (YYYY, YYYY-MM or YYYY-MM-DD) into "Jan 2006" or "2006".
// Unrecognised input is returned unchanged.
func FormatDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return date
}

// DateRange formats a start and end date; an empty end date means "Present".
func DateRange(start, end string) string {
	start = FormatDate(start)
	if start == "" {
		return FormatDate(end)
	}
	end = FormatDate(end)
	if end == "" {
		end = "Present"
	}
	return start + " – " + end
}

// Initials returns up to two uppercase initials for a name.
func Initials(name string) string {
	var sb strings.Builder
	for i, part := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(part)
		sb.WriteString(strings.ToUpper(string(r[0])))
	}
	return sb.String()
}
