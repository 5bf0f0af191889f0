package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/PGifts2025/Site2026-sub000/models"
	"github.com/PGifts2025/Site2026-sub000/repository"
	"github.com/PGifts2025/Site2026-sub000/utils"
)

// ExportService renders saved quotes as printable sheets and exports them
// as PDF or PNG through headless Chrome
type ExportService struct {
	quoteRepo repository.QuoteRepositoryInterface
	baseURL   string // Base URL the render endpoint is reachable on (e.g. "http://localhost:8080")
}

// NewExportService creates a new ExportService
func NewExportService(quoteRepo repository.QuoteRepositoryInterface, baseURL string) *ExportService {
	return &ExportService{
		quoteRepo: quoteRepo,
		baseURL:   baseURL,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// quoteSheetLine is one colour row prepared for the template.
type quoteSheetLine struct {
	ColourName string
	ColourCode string
	Sizes      []int
	Subtotal   int
}

// RenderQuoteHTML renders the printable quote sheet for a reference
func (s *ExportService) RenderQuoteHTML(ctx context.Context, reference string) (string, error) {
	quote, err := s.quoteRepo.GetByReference(ctx, reference)
	if err != nil {
		return "", err
	}

	lines := make([]quoteSheetLine, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		lines = append(lines, quoteSheetLine{
			ColourName: line.ColourName,
			ColourCode: line.ColourCode,
			Sizes:      []int{line.SizeS, line.SizeM, line.SizeL, line.SizeXL, line.SizeXXL},
			Subtotal:   line.Subtotal,
		})
	}

	templateData := struct {
		Quote       *models.QuoteDetail
		Lines       []quoteSheetLine
		SizeLabels  []string
		UnitPrice   string
		TotalPrice  string
		GeneratedAt string
	}{
		Quote:       quote,
		Lines:       lines,
		SizeLabels:  models.SizeLabels,
		UnitPrice:   utils.FormatGBP(quote.UnitPrice),
		TotalPrice:  utils.FormatGBP(quote.TotalPrice),
		GeneratedAt: time.Now().Format("2 January 2006"),
	}

	templatePath := filepath.Join("templates", "quote.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// newChromeContext builds an allocator and browser context, honouring a
// detected Chrome path. The caller must invoke every returned cancel func.
func newChromeContext(ctx context.Context) (context.Context, []context.CancelFunc) {
	var cancels []context.CancelFunc

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	cancels = append(cancels, allocCancel)

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	cancels = append(cancels, chromedpCancel)

	return chromedpCtx, cancels
}

// waitForAssets waits for web fonts and every image on the page, with a
// per-image timeout so one broken URL cannot hang the export.
var waitForAssets = chromedp.Evaluate(`
	(function() {
		return Promise.all([
			document.fonts.ready,
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
				return new Promise((resolve) => {
					if (img.complete && img.naturalWidth > 0 && img.naturalHeight > 0) {
						resolve();
						return;
					}
					const timeout = setTimeout(() => resolve(), 5000);
					img.onload = () => { clearTimeout(timeout); resolve(); };
					img.onerror = () => { clearTimeout(timeout); resolve(); };
				});
			}))
		]);
	})();
`, nil)

// GeneratePDF renders the quote sheet for a reference and prints it to an
// A4 PDF through headless Chrome
func (s *ExportService) GeneratePDF(ctx context.Context, reference string) ([]byte, error) {
	// Verify the quote exists before spinning up a browser.
	if _, err := s.quoteRepo.GetByReference(ctx, reference); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromedpCtx, cancels := newChromeContext(ctx)
	for _, c := range cancels {
		defer c()
	}

	renderURL := fmt.Sprintf("%s/admin/quotes/render?reference=%s", s.baseURL, reference)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		waitForAssets,
		chromedp.Sleep(500*time.Millisecond), // Final wait for layout
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// GeneratePNG renders the quote sheet for a reference and screenshots it
// as a single PNG
func (s *ExportService) GeneratePNG(ctx context.Context, reference string) ([]byte, error) {
	if _, err := s.quoteRepo.GetByReference(ctx, reference); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromedpCtx, cancels := newChromeContext(ctx)
	for _, c := range cancels {
		defer c()
	}

	renderURL := fmt.Sprintf("%s/admin/quotes/render?reference=%s", s.baseURL, reference)

	var buf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		waitForAssets,
		chromedp.Sleep(500*time.Millisecond),
		chromedp.CaptureScreenshot(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	return buf, nil
}
