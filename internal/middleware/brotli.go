package middleware

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

type BrotliConfig struct {
	Quality   int
	Skipper   func(c *gin.Context) bool
	MinLength int
}

var DefaultBrotliConfig = BrotliConfig{
	Quality:   brotli.DefaultCompression,
	MinLength: 1024,
}

// brotliWriter holds the whole body until the handler returns, so the
// compress-or-not decision is made once on the final length.
type brotliWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (bw *brotliWriter) Write(data []byte) (int, error) {
	return bw.buf.Write(data)
}

func (bw *brotliWriter) WriteString(s string) (int, error) {
	return bw.buf.WriteString(s)
}

func (bw *brotliWriter) Written() bool {
	return bw.buf.Len() > 0 || bw.ResponseWriter.Written()
}

func (bw *brotliWriter) Size() int {
	return bw.buf.Len()
}

func Brotli() gin.HandlerFunc {
	return BrotliWithConfig(DefaultBrotliConfig)
}

func BrotliWithConfig(cfg BrotliConfig) gin.HandlerFunc {
	if cfg.Quality < 0 || cfg.Quality > 11 {
		cfg.Quality = brotli.DefaultCompression
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultBrotliConfig.MinLength
	}

	return func(c *gin.Context) {
		if shouldSkip(c) || (cfg.Skipper != nil && cfg.Skipper(c)) || !acceptsBrotli(c.Request) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")

		original := c.Writer
		bw := &brotliWriter{ResponseWriter: original}
		c.Writer = bw
		c.Next()
		c.Writer = original

		body := bw.buf.Bytes()
		if len(body) < cfg.MinLength {
			if len(body) > 0 {
				if _, err := original.Write(body); err != nil {
					_ = c.Error(err)
				}
			}
			return
		}

		original.Header().Set("Content-Encoding", "br")
		original.Header().Del("Content-Length")

		w := brotli.NewWriterLevel(original, cfg.Quality)
		if _, err := w.Write(body); err != nil {
			_ = c.Error(err)
		}
		if err := w.Close(); err != nil {
			_ = c.Error(err)
		}
	}
}

// shouldSkip reports requests that must stream or be hijacked untouched.
func shouldSkip(c *gin.Context) bool {
	if strings.Contains(c.GetHeader("Accept"), "text/event-stream") {
		return true
	}
	if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
		return true
	}
	return false
}

// acceptsBrotli reports whether Accept-Encoding lists br with a non-zero
// q-value. "br;q=0" is an explicit refusal.
func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		parts := strings.Split(enc, ";")
		if !strings.EqualFold(strings.TrimSpace(parts[0]), "br") {
			continue
		}
		for _, param := range parts[1:] {
			k, v, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(k), "q") {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || q <= 0 {
				return false
			}
		}
		return true
	}
	return false
}
