// Package fetch pulls table canvases from their source post pages. A post
// page embeds the canvas as its first <img>; the srcset's last candidate
// is the full-resolution upload.
package fetch

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/tessella-works/tessella/internal/atlas"
	"github.com/tessella-works/tessella/internal/core"
)

// Options tunes the downloader. Zero values get usable defaults.
type Options struct {
	UserAgent     string
	Timeout       time.Duration
	RatePerSecond float64
	Concurrency   int
}

// Fetcher downloads canvases politely: one shared rate limiter across all
// requests and a bounded number of in-flight syncs.
type Fetcher struct {
	client      *http.Client
	limiter     *rate.Limiter
	userAgent   string
	concurrency int
	logger      *zap.Logger
}

func New(opts Options, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = 2
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "tessella/1.0"
	}
	return &Fetcher{
		client:      &http.Client{Timeout: opts.Timeout},
		limiter:     rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1),
		userAgent:   opts.UserAgent,
		concurrency: opts.Concurrency,
		logger:      logger,
	}
}

// PageImage scrapes pageURL for its first image and returns the decoded
// pixels.
func (f *Fetcher) PageImage(ctx context.Context, pageURL string) (*image.NRGBA, error) {
	resp, err := f.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", pageURL, err)
	}

	imgURL, ok := firstImageURL(doc)
	if !ok {
		return nil, fmt.Errorf("page %s has no image", pageURL)
	}
	resolved, err := resolveURL(pageURL, imgURL)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", pageURL, err)
	}

	imgResp, err := f.get(ctx, resolved)
	if err != nil {
		return nil, err
	}
	defer imgResp.Body.Close()
	img, err := atlas.Decode(imgResp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", resolved, err)
	}
	return img, nil
}

// SyncAll downloads every table canvas that has a source page, writing
// each to imagesDir under the table's image path. Tables without a source
// are skipped. Downloads run concurrently up to the configured limit; the
// first failure cancels the rest.
func (f *Fetcher) SyncAll(ctx context.Context, sources map[string]string, cat *core.Catalog, imagesDir string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for _, t := range cat.Tables {
		src, ok := sources[t.Name]
		if !ok {
			f.logger.Debug("table has no source page", zap.String("table", t.Name))
			continue
		}
		name, path := t.Name, t.ImagePath
		if path == "" {
			path = name + ".png"
		}
		g.Go(func() error {
			img, err := f.PageImage(ctx, src)
			if err != nil {
				return fmt.Errorf("sync %s: %w", name, err)
			}
			dest := filepath.Join(imagesDir, path)
			if err := atlas.SavePNG(dest, img); err != nil {
				return fmt.Errorf("sync %s: %w", name, err)
			}
			b := img.Bounds()
			f.logger.Info("canvas synced",
				zap.String("table", name),
				zap.String("dest", dest),
				zap.Int("width", b.Dx()),
				zap.Int("height", b.Dy()))
			return nil
		})
	}
	return g.Wait()
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (*http.Response, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: status %d", rawURL, resp.StatusCode)
	}
	return resp, nil
}

// firstImageURL walks the document for the first <img> carrying a usable
// URL, preferring the last srcset candidate over a plain src.
func firstImageURL(doc *html.Node) (string, bool) {
	var found string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "img" {
			var src, srcset string
			for _, a := range n.Attr {
				switch a.Key {
				case "srcset":
					srcset = a.Val
				case "src":
					src = a.Val
				}
			}
			if srcset != "" {
				found = lastSrcsetCandidate(srcset)
				return true
			}
			if src != "" {
				found = src
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	return found, walk(doc)
}

// lastSrcsetCandidate picks the URL of the final srcset entry, the
// highest-resolution candidate in the pages this scrapes.
func lastSrcsetCandidate(srcset string) string {
	candidates := strings.Split(srcset, ",")
	last := strings.TrimSpace(candidates[len(candidates)-1])
	if fields := strings.Fields(last); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func resolveURL(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}
