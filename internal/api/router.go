package api

import (
	"net/http"

	"github.com/advisorkit/advisor/internal/advisor"
	"log/slog"
)

// SetupRoutes configures the allocation API routes.
func SetupRoutes(mux *http.ServeMux, completions advisor.CompletionClient, initErr error, logger *slog.Logger) {
	handler := NewAllocationHandler(completions, initErr, logger)

	mux.HandleFunc("/allocate-investment", handler.AllocateInvestment)
}
