package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestErrService_CarriesRawBody(t *testing.T) {
	err := ErrService("Jira", http.StatusBadRequest, `{"errorMessages":["bad"]}`)

	if err.Code != ErrorCode_SERVICE {
		t.Fatalf("expected SERVICE code, got %s", err.Code)
	}
	if err.HTTPCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", err.HTTPCode)
	}
	if err.Details["body"] != `{"errorMessages":["bad"]}` {
		t.Fatalf("unexpected body detail %q", err.Details["body"])
	}
	want := `[SERVICE] Jira API error (status 400): {"errorMessages":["bad"]}`
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestErrNotFound_Message(t *testing.T) {
	err := ErrNotFound("user", "Alice")
	if err.Error() != "[NOT_FOUND] user not found: Alice" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.Details["entity"] != "user" || err.Details["term"] != "Alice" {
		t.Fatalf("unexpected details %v", err.Details)
	}
}

func TestIsCode_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("resolve project: %w", ErrNotFound("project", "Apollo"))

	if !IsCode(wrapped, ErrorCode_NOT_FOUND) {
		t.Fatal("expected NOT_FOUND to be detected through wrapping")
	}
	if IsCode(wrapped, ErrorCode_SERVICE) {
		t.Fatal("did not expect SERVICE")
	}
	if IsCode(New("plain"), ErrorCode_INTERNAL) {
		t.Fatal("plain errors carry no code")
	}
}

func TestIs_MatchesSentinelThroughWrapping(t *testing.T) {
	sentinel := New("upload too large")
	wrapped := fmt.Errorf("save transcript: %w", sentinel)

	if !Is(wrapped, sentinel) {
		t.Fatal("expected sentinel to be found through wrapping")
	}
	if Is(wrapped, New("upload too large")) {
		t.Fatal("distinct error values must not match")
	}
}

func TestWithDetail_DoesNotMutateOriginal(t *testing.T) {
	base := ErrNotFound("user", "Bob")
	extended := base.WithDetail("item", "2")

	if _, ok := base.Details["item"]; ok {
		t.Fatal("original details were mutated")
	}
	if extended.Details["item"] != "2" {
		t.Fatalf("missing detail on copy: %v", extended.Details)
	}
}

func TestErrorCode_MarshalText(t *testing.T) {
	b, err := ErrorCode_CONFIGURATION.MarshalText()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != "CONFIGURATION" {
		t.Fatalf("unexpected text %q", b)
	}
	if ErrorCode(42).String() != "UNKNOWN" {
		t.Fatal("expected UNKNOWN for unmapped code")
	}
}
