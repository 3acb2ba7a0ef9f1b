package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstructorsMatchSentinels(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
		kind     Kind
	}{
		{"validation", Validation("title is required"), ErrValidation, KindValidation},
		{"not found", NotFound("notice %s", "abc"), ErrNotFound, KindNotFound},
		{"forbidden", Forbidden("role %s cannot decide", "staff"), ErrForbidden, KindForbidden},
		{"conflict", Conflict("already decided"), ErrConflict, KindConflict},
		{"storage", Storage(errors.New("dial tcp")), ErrStorage, KindStorage},
	}
	for _, tc := range cases {
		if !errors.Is(tc.err, tc.sentinel) {
			t.Fatalf("%s: errors.Is against its sentinel = false", tc.name)
		}
		if KindOf(tc.err) != tc.kind {
			t.Fatalf("%s: KindOf = %q, want %q", tc.name, KindOf(tc.err), tc.kind)
		}
	}
}

func TestSentinelsDoNotCrossMatch(t *testing.T) {
	if errors.Is(Validation("x"), ErrConflict) {
		t.Fatal("validation error matched conflict sentinel")
	}
	if errors.Is(Conflict("x"), ErrNotFound) {
		t.Fatal("conflict error matched not-found sentinel")
	}
	if errors.Is(errors.New("plain"), ErrStorage) {
		t.Fatal("plain error matched storage sentinel")
	}
}

func TestMatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("decide submission: %w", Conflict("already decided"))
	if !errors.Is(wrapped, ErrConflict) {
		t.Fatal("wrapped conflict did not match sentinel")
	}
	if KindOf(wrapped) != KindConflict {
		t.Fatalf("KindOf(wrapped) = %q, want %q", KindOf(wrapped), KindConflict)
	}
}

func TestStorageKeepsCauseButNotMessage(t *testing.T) {
	cause := errors.New("Error 1062: Duplicate entry")
	err := Storage(cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable via Unwrap")
	}
	if err.Error() != "storage failure" {
		t.Fatalf("message leaks internals: %q", err.Error())
	}
}

func TestKindOfUnknownDefaultsToStorage(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != KindStorage {
		t.Fatalf("KindOf(plain) = %q, want %q", got, KindStorage)
	}
}

func TestMessageFallsBackToKind(t *testing.T) {
	e := &Error{Kind: KindForbidden}
	if e.Error() != "forbidden" {
		t.Fatalf("Error() = %q, want %q", e.Error(), "forbidden")
	}
}
