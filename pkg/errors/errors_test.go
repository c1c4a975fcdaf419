package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestLoadErrorHelpers(t *testing.T) {
	le := NewLoadError("/etc/zlib-accel.conf", ErrConfigSymlink)
	wrapped := fmt.Errorf("startup: %w", le)

	if !IsLoadError(wrapped) {
		t.Fatal("IsLoadError failed through wrapping")
	}
	if got := AsLoadError(wrapped); got == nil || got.Path != "/etc/zlib-accel.conf" {
		t.Fatalf("AsLoadError = %+v", got)
	}
	if !errors.Is(wrapped, ErrConfigSymlink) {
		t.Fatal("sentinel not reachable through LoadError")
	}
	if IsLoadError(errors.New("plain")) {
		t.Fatal("plain error misclassified")
	}
}

func TestShimErrorCategory(t *testing.T) {
	e := NewShimError(ErrorSink, "open log file", errors.New("permission denied"))
	if e.Category.String() != "sink" {
		t.Fatalf("category = %q", e.Category)
	}
	if !e.IsRetryAble() {
		t.Fatal("sink errors should be retryable")
	}
	if NewShimError(ErrorParse, "parse", errors.New("bad")).IsRetryAble() {
		t.Fatal("parse errors should not be retryable")
	}
	if ErrorCategory(0).String() != "unknown" {
		t.Fatalf("zero category = %q", ErrorCategory(0))
	}
}
