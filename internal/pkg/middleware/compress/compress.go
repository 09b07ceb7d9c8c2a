package compress

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type GzipWriter struct {
	OldW   http.ResponseWriter
	Writer *gzip.Writer
	Log    *zap.SugaredLogger
}

func (w GzipWriter) WriteHeader(statusCode int) {
	w.OldW.Header().Del("Content-Length")
	w.OldW.WriteHeader(statusCode)
}

func (w GzipWriter) Header() http.Header {
	return w.OldW.Header()
}

func (w GzipWriter) Write(b []byte) (int, error) {
	w.Log.Debugf("Encoding %d bytes of '%s'", len(b), w.OldW.Header().Get("Content-Type"))
	return w.Writer.Write(b)
}

func GzipHandle(next http.Handler, log *zap.SugaredLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}
		gz, err := gzip.NewWriterLevel(w, gzip.BestSpeed)
		if err != nil {
			io.WriteString(w, err.Error())
			return
		}
		defer gz.Close()

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		next.ServeHTTP(GzipWriter{OldW: w, Writer: gz, Log: log}, r)
	})
}
