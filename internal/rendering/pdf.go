package rendering

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/resumed/internal/logging"
)

// ChromePrinter prints markup to PDF with a headless Chrome/Chromium process.
// Each call launches its own browser and shuts it down before returning.
type ChromePrinter struct{}

// PrintPDF loads markup in a fresh browser, waits for the network to go idle and
// prints the page with backgrounds at the configured paper size.
// The whole browser session is bounded by opts.Timeout.
func (p *ChromePrinter) PrintPDF(ctx context.Context, markup string, opts Options) ([]byte, error) {
	logger := logging.GetLogger("browser")

	width, height, ok := PaperSize(opts.PaperFormat)
	if !ok {
		return nil, fmt.Errorf("unsupported paper format %q", opts.PaperFormat)
	}

	pageDir, pagePath, err := writeTempPage(markup)
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(pageDir) }()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if bin := strings.TrimSpace(opts.BrowserBin); bin != "" {
		logger.Debug().Str("browser", bin).Msg("Using explicit browser executable")
		allocOpts = append(allocOpts, chromedp.ExecPath(bin))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	watcher := newIdleWatcher()
	chromedp.ListenTarget(browserCtx, watcher.handle)

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return page.SetLifecycleEventsEnabled(true).Do(ctx)
		}),
		chromedp.ActionFunc(func(context.Context) error {
			watcher.arm()
			return nil
		}),
		chromedp.Navigate(fileURL(pagePath)),
		chromedp.ActionFunc(watcher.wait),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			pdf = data
			return err
		}),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(browserCtx.Err(), context.DeadlineExceeded) {
			return nil, &TimeoutError{Timeout: opts.Timeout, Cause: err}
		}
		return nil, &BrowserError{Message: "failed to print PDF", Cause: err}
	}

	logger.Debug().Int("bytes", len(pdf)).Msg("Printed PDF")
	return pdf, nil
}

// writeTempPage stores markup as index.html in a new private directory, so relative
// URLs in the page resolve inside an otherwise empty directory.
func writeTempPage(markup string) (dir, path string, err error) {
	dir, err = os.MkdirTemp("", "resumed-page-")
	if err != nil {
		return "", "", &BrowserError{Message: "failed to create temporary page", Cause: err}
	}

	path = filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(markup), 0600); err != nil {
		_ = os.RemoveAll(dir)
		return "", "", &BrowserError{Message: "failed to write temporary page", Cause: err}
	}
	return dir, path, nil
}

func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

// idleWatcher tracks page lifecycle events and signals once the navigation started
// after arm reaches networkIdle.
type idleWatcher struct {
	mu     sync.Mutex
	armed  bool
	loader cdp.LoaderID
	idle   chan struct{}
	once   sync.Once
}

func newIdleWatcher() *idleWatcher {
	return &idleWatcher{idle: make(chan struct{})}
}

func (w *idleWatcher) arm() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.armed = true
}

// handle runs on the chromedp event goroutine and must not block.
func (w *idleWatcher) handle(ev interface{}) {
	e, ok := ev.(*page.EventLifecycleEvent)
	if !ok {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.armed {
		return
	}

	switch e.Name {
	case "init":
		// first init after arming belongs to the main frame navigation
		if w.loader == "" {
			w.loader = e.LoaderID
		}
	case "networkIdle":
		if w.loader != "" && e.LoaderID == w.loader {
			w.once.Do(func() { close(w.idle) })
		}
	}
}

func (w *idleWatcher) wait(ctx context.Context) error {
	select {
	case <-w.idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
