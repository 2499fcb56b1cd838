package api

import (
	"encoding/json"
	"net/http"

	"github.com/advisorkit/advisor/internal/advisor"
	"github.com/advisorkit/advisor/internal/market"
	"github.com/advisorkit/advisor/internal/models"
	"log/slog"
)

// AllocationHandler orchestrates prompt building, the completion call and
// response extraction for allocation requests.
//
// completions may be nil when the completion client failed to initialize at
// startup; initErr records why. Every request then fails fast without a
// network call.
type AllocationHandler struct {
	completions advisor.CompletionClient
	initErr     error
	extractor   *advisor.Extractor
	logger      *slog.Logger
}

// NewAllocationHandler constructs the handler. Pass a nil client together
// with the recorded initialization error when startup configuration was
// incomplete.
func NewAllocationHandler(completions advisor.CompletionClient, initErr error, logger *slog.Logger) *AllocationHandler {
	return &AllocationHandler{
		completions: completions,
		initErr:     initErr,
		extractor:   advisor.NewExtractor(market.AssetNames()),
		logger:      logger,
	}
}

// AllocateInvestment handles POST /allocate-investment.
func (h *AllocationHandler) AllocateInvestment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if h.initErr != nil || h.completions == nil {
		h.logger.Error("allocation request rejected, completion client unavailable", "error", h.initErr)
		writeError(w, http.StatusInternalServerError, advisor.ErrClientUnavailable.Error())
		return
	}

	prompt := advisor.BuildAllocationPrompt(req, market.Trends())

	raw, err := h.completions.Complete(r.Context(), advisor.SystemPrompt, prompt)
	if err != nil {
		h.logger.Error("completion call failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	result := h.extractor.Extract(raw)

	h.logger.Info("allocation produced",
		"age", req.Age,
		"amount", req.InvestmentAmount,
		"assets", len(result.Allocation))

	writeJSON(w, http.StatusOK, models.AllocationResponse{
		AllocationPercentage: result.Allocation,
		Recommendation:       result.Explanation,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}
