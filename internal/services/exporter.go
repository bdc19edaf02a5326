package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// a4WidthIn / a4HeightIn are 210mm x 297mm expressed in inches, with
// 10mm margins on every side.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
	marginIn   = 0.394
)

type ExporterService interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type exporterService struct{}

func NewExporterService() ExporterService {
	return &exporterService{}
}

// RenderHTMLToPDF prints the document through headless Chrome. A failed
// print is retried once with a simpler print configuration before the
// export is reported as failed.
func (e *exporterService) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, 60*time.Second)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "cv-export-")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailure, err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailure, err)
	}

	var pdf []byte
	strategies := printStrategies()
	for i, params := range strategies {
		pdf, err = e.print(runCtx, "file://"+htmlPath, params)
		if err == nil {
			return pdf, nil
		}
		if i < len(strategies)-1 {
			log.Printf("⚠️  PDF print failed (%v), retrying with simpler settings\n", err)
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrExportFailure, err)
}

// printStrategies returns the print configurations in attempt order: the
// full A4 setup first, then the same without CSS page-size preference as
// the one retry.
func printStrategies() []*page.PrintToPDFParams {
	base := func() *page.PrintToPDFParams {
		return page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(a4WidthIn).
			WithPaperHeight(a4HeightIn).
			WithMarginTop(marginIn).
			WithMarginBottom(marginIn).
			WithMarginLeft(marginIn).
			WithMarginRight(marginIn)
	}

	return []*page.PrintToPDFParams{
		base().WithPreferCSSPageSize(true),
		base(),
	}
}

func (e *exporterService) print(ctx context.Context, url string, params *page.PrintToPDFParams) ([]byte, error) {
	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = params.Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
