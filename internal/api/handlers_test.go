package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"log/slog"

	"github.com/advisorkit/advisor/internal/advisor"
	"github.com/advisorkit/advisor/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postAllocation(t *testing.T, handler *AllocationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/allocate-investment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.AllocateInvestment(rr, req)
	return rr
}

func TestAllocateInvestmentEndToEnd(t *testing.T) {
	stub := &advisor.StubClient{
		Response: `{"allocation": {"NIFTY 50": 40, "Bonds": 60}, "explanation": "balanced"}`,
	}
	handler := NewAllocationHandler(stub, nil, discardLogger())

	rr := postAllocation(t, handler, `{"age": 30, "investment_amount": 100000, "market_forecast": null}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", rr.Code, rr.Body.String())
	}

	var resp models.AllocationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := map[string]float64{"NIFTY 50": 40, "Bonds": 60}
	if !reflect.DeepEqual(resp.AllocationPercentage, want) {
		t.Errorf("expected allocation %v, got %v", want, resp.AllocationPercentage)
	}
	if resp.Recommendation != "balanced" {
		t.Errorf("expected recommendation %q, got %q", "balanced", resp.Recommendation)
	}
	if stub.Calls() != 1 {
		t.Errorf("expected exactly one completion call, got %d", stub.Calls())
	}
}

func TestAllocateInvestmentClientUnavailable(t *testing.T) {
	// The stub stands in for a network-backed client; with a recorded init
	// error the handler must fail fast without ever invoking it.
	stub := &advisor.StubClient{Response: "should never be used"}
	handler := NewAllocationHandler(stub, advisor.ErrClientUnavailable, discardLogger())

	rr := postAllocation(t, handler, `{"age": 30, "investment_amount": 100000}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Detail != advisor.ErrClientUnavailable.Error() {
		t.Errorf("unexpected detail %q", resp.Detail)
	}
	if stub.Calls() != 0 {
		t.Errorf("expected zero completion calls, got %d", stub.Calls())
	}
}

func TestAllocateInvestmentUpstreamError(t *testing.T) {
	stub := &advisor.StubClient{Err: errors.New("completion call failed: quota exceeded")}
	handler := NewAllocationHandler(stub, nil, discardLogger())

	rr := postAllocation(t, handler, `{"age": 45, "investment_amount": 5000}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if !strings.Contains(resp.Detail, "quota exceeded") {
		t.Errorf("expected upstream message in detail, got %q", resp.Detail)
	}
	if stub.Calls() != 1 {
		t.Errorf("expected one completion call, got %d", stub.Calls())
	}
}

func TestAllocateInvestmentParseDegradedStillSucceeds(t *testing.T) {
	stub := &advisor.StubClient{Response: "I am unable to produce a breakdown right now."}
	handler := NewAllocationHandler(stub, nil, discardLogger())

	rr := postAllocation(t, handler, `{"age": 60, "investment_amount": 75000}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 despite parse failure, got %d", rr.Code)
	}

	var resp models.AllocationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := map[string]float64{"Cash": 100}
	if !reflect.DeepEqual(resp.AllocationPercentage, want) {
		t.Errorf("expected fallback allocation %v, got %v", want, resp.AllocationPercentage)
	}
}

func TestAllocateInvestmentRejectsBadBody(t *testing.T) {
	stub := &advisor.StubClient{Response: "unused"}
	handler := NewAllocationHandler(stub, nil, discardLogger())

	rr := postAllocation(t, handler, `{"age": "thirty"}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if stub.Calls() != 0 {
		t.Errorf("expected zero completion calls, got %d", stub.Calls())
	}
}

func TestAllocateInvestmentMethodNotAllowed(t *testing.T) {
	handler := NewAllocationHandler(&advisor.StubClient{}, nil, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/allocate-investment", nil)
	rr := httptest.NewRecorder()
	handler.AllocateInvestment(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}
