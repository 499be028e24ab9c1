package render

import (
	"bytes"
	"context"
	"errors"
	"log"

	"github.com/mithrel/nodehtml/internal/cache"
	"github.com/mithrel/nodehtml/internal/convert"
	"github.com/mithrel/nodehtml/pkg/htmlnode"
	"github.com/mithrel/nodehtml/pkg/textspan"
)

// Output is a rendered document.
type Output struct {
	HTML        string
	Fingerprint string
	Cached      bool
}

// Service decodes documents, renders them and optionally caches the result.
// It holds no per-call state and may be shared between goroutines.
type Service struct {
	cache cache.Store
	log   *log.Logger
}

// New returns a Service. store may be nil to disable caching.
func New(store cache.Store, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(log.Writer(), "", 0)
	}
	return &Service{cache: store, log: logger}
}

// Document renders a JSON node document.
func (s *Service) Document(ctx context.Context, data []byte) (Output, error) {
	return s.cached(ctx, cacheKey("node", "", data), func() (htmlnode.Node, error) {
		return htmlnode.DecodeNode(data)
	})
}

// Spans renders a JSON array or NDJSON stream of text spans wrapped in wrap.
func (s *Service) Spans(ctx context.Context, data []byte, wrap string) (Output, error) {
	return s.cached(ctx, cacheKey("spans", wrap, data), func() (htmlnode.Node, error) {
		spans, err := textspan.ReadSpans(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return convert.Paragraph(spans, wrap)
	})
}

func (s *Service) cached(ctx context.Context, key string, build func() (htmlnode.Node, error)) (Output, error) {
	if s.cache != nil {
		html, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			return Output{HTML: html, Fingerprint: htmlnode.HashString(html), Cached: true}, nil
		case !errors.Is(err, cache.ErrNotFound):
			s.log.Printf("cache get %s: %v", key[:12], err)
		}
	}

	n, err := build()
	if err != nil {
		return Output{}, err
	}
	html, err := htmlnode.Render(n)
	if err != nil {
		return Output{}, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, key, html); err != nil {
			s.log.Printf("cache put %s: %v", key[:12], err)
		}
	}
	return Output{HTML: html, Fingerprint: htmlnode.HashString(html)}, nil
}

func cacheKey(kind, wrap string, data []byte) string {
	buf := make([]byte, 0, len(kind)+len(wrap)+len(data)+2)
	buf = append(buf, kind...)
	buf = append(buf, 0)
	buf = append(buf, wrap...)
	buf = append(buf, 0)
	buf = append(buf, data...)
	return htmlnode.HashBytes(buf)
}
