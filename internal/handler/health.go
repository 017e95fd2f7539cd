package handler

import (
	"context"
	"net/http"
	"sort"
	"time"
)

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// health handles GET /healthz.
// It returns 200 with {"status":"ok"} when every configured check passes,
// 503 with {"status":"degraded"} and per-check results otherwise.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if len(s.opts.Checks) == 0 {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(s.opts.Checks))
	for name := range s.opts.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	status := http.StatusOK
	for _, name := range names {
		if err := s.opts.Checks[name].Ping(ctx); err != nil {
			s.log.WarnContext(ctx, "health check failed", "check", name, "error", err)
			resp.Checks[name] = "fail"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	writeJSON(w, status, resp)
}
