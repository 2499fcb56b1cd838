package advisor

import (
	"context"
	"sync/atomic"
)

// StubClient is a CompletionClient returning a canned response or error.
// It counts calls so tests can assert that no upstream call was attempted.
type StubClient struct {
	Response string
	Err      error

	calls atomic.Int64
}

// Complete returns the canned response after recording the call.
func (s *StubClient) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls.Add(1)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

// Calls reports how many times Complete was invoked.
func (s *StubClient) Calls() int {
	return int(s.calls.Load())
}
