package render

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"healieve/health-app/internal/config"
	"healieve/health-app/internal/logger"
)

// ErrChartsNotReady is returned when the in-page charts never signal
// completion within the configured timeout. The request fails; no partial
// document is produced.
var ErrChartsNotReady = errors.New("charts did not become ready before the timeout")

// chartsReadyExpr is set by the document script after all three charts are
// constructed.
const chartsReadyExpr = `window.__chartsReady === true`

// A4 page box and the margin bands reserved for the header and footer.
const (
	paperWidthIn   = 8.27
	paperHeightIn  = 11.69
	marginTopIn    = 1.42 // 36mm
	marginBottomIn = 1.02 // 26mm
	marginSideIn   = 0.47 // 12mm
)

const headerTemplate = `<div style="font-size:8px; padding:0 16px; width:100%;"><span style="float:left;">Healieve • Health &amp; Fitness Report</span></div>`

func footerTemplate(year int) string {
	return fmt.Sprintf(`<div style="font-size:8px; padding:0 16px; width:100%%; color:#64748b;"><span style="float:left;">© %d Healieve</span><span style="float:right;">Page <span class="pageNumber"></span> of <span class="totalPages"></span></span></div>`, year)
}

// ChromeRenderer prints documents with a headless Chrome. Every Render call
// launches its own browser and tears it down before returning; instances are
// never pooled or shared between requests.
type ChromeRenderer struct {
	chartTimeout time.Duration
	pageTimeout  time.Duration
	log          *logger.Logger
}

// NewChromeRenderer builds a renderer with the configured timeouts.
func NewChromeRenderer(cfg config.RendererConfig, log *logger.Logger) *ChromeRenderer {
	chartTimeout := cfg.ChartTimeout
	if chartTimeout <= 0 {
		chartTimeout = 15 * time.Second
	}
	pageTimeout := cfg.PageTimeout
	if pageTimeout <= 0 {
		pageTimeout = 60 * time.Second
	}
	return &ChromeRenderer{chartTimeout: chartTimeout, pageTimeout: pageTimeout, log: log}
}

// Render loads the document, waits for the charts-ready signal, and captures
// the page as PDF. Any error—including the chart wait timing out—aborts the
// whole request with no output.
func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.pageTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	start := time.Now()
	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		setDocumentContent(html),
		r.waitForCharts(),
		printToPDF(&pdf),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrChartsNotReady
		}
		r.log.Error("pdf render failed", "error", err, "elapsed", time.Since(start))
		return nil, err
	}

	r.log.Info("pdf rendered", "bytes", len(pdf), "elapsed", time.Since(start))
	return pdf, nil
}

func setDocumentContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		frameTree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
	})
}

// waitForCharts blocks until the chart containers are laid out and the page
// script reports all charts drawn. Both waits share one chart-timeout bound.
func (r *ChromeRenderer) waitForCharts() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		waitCtx, cancel := context.WithTimeout(ctx, r.chartTimeout)
		defer cancel()

		tasks := chromedp.Tasks{
			chromedp.WaitVisible("#pieChart", chromedp.ByID),
			chromedp.WaitVisible("#barChart", chromedp.ByID),
			chromedp.WaitVisible("#lineChart", chromedp.ByID),
			chromedp.Poll(chartsReadyExpr, nil, chromedp.WithPollingInterval(100*time.Millisecond)),
		}
		if err := tasks.Do(waitCtx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, chromedp.ErrPollingTimeout) {
				return ErrChartsNotReady
			}
			return err
		}
		return nil
	})
}

func printToPDF(out *[]byte) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		buf, _, err := page.PrintToPDF().
			WithPaperWidth(paperWidthIn).
			WithPaperHeight(paperHeightIn).
			WithMarginTop(marginTopIn).
			WithMarginBottom(marginBottomIn).
			WithMarginLeft(marginSideIn).
			WithMarginRight(marginSideIn).
			WithPrintBackground(true).
			WithDisplayHeaderFooter(true).
			WithHeaderTemplate(headerTemplate).
			WithFooterTemplate(footerTemplate(time.Now().Year())).
			Do(ctx)
		if err != nil {
			return err
		}
		*out = buf
		return nil
	})
}
