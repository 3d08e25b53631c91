package rendering

import (
	"context"

	"github.com/jonathan/resumed/internal/logging"
	"github.com/jonathan/resumed/internal/themes"
	"github.com/jonathan/resumed/internal/types"
)

// Render asks the theme for the document's markup. The markup is returned as-is.
func Render(ctx context.Context, theme themes.Theme, doc *types.Resume) (string, error) {
	logger := logging.GetLogger("rendering")
	done := logging.LogOperationStart(logger, "render")
	defer done()

	markup, err := theme.Render(ctx, doc)
	if err != nil {
		return "", &RenderError{Theme: theme.Name(), Cause: err}
	}

	logger.Info().Str("theme", theme.Name()).Int("bytes", len(markup)).Msg("Rendered resume")
	return markup, nil
}
