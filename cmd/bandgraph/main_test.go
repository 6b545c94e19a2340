package main

import (
	stderrors "errors"
	"strings"
	"testing"

	bgerrors "github.com/matzehuels/bandgraph/pkg/errors"
)

func TestErrorMessage(t *testing.T) {
	coded := bgerrors.New(bgerrors.ErrCodeInvalidFormat, "invalid format: gif")
	got := errorMessage(coded)
	if !strings.Contains(got, "invalid format: gif") {
		t.Errorf("errorMessage(%v) = %q, want the user message", coded, got)
	}
	if !strings.Contains(got, string(bgerrors.ErrCodeInvalidFormat)) {
		t.Errorf("errorMessage(%v) = %q, want the code appended", coded, got)
	}

	plain := stderrors.New("boom")
	if got := errorMessage(plain); got != "boom" {
		t.Errorf("errorMessage(plain) = %q, want %q", got, "boom")
	}
}
