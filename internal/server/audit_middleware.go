package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
		}
		if username, _, ok := r.BasicAuth(); ok {
			entry.Actor = username
		}
		if id, ok := mux.Vars(r)["id"]; ok {
			entry.EntityID = id
		}

		wrw := newResponseWriterWrapper(w)
		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.StatusCode()
		s.AuditManager.LogEntry(r.Context(), entry)
	})
}
