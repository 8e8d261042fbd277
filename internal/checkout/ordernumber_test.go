package checkout

import (
	"strings"
	"testing"
	"time"
)

func TestNewOrderNumberShape(t *testing.T) {
	now := time.Now()
	n := newOrderNumber(now)

	parts := strings.Split(n, "-")
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %q", n)
	}
	if parts[0] != "RG" {
		t.Errorf("expected RG prefix, got %q", parts[0])
	}
	if len(parts[2]) != 6 {
		t.Errorf("expected 6-char suffix, got %q", parts[2])
	}
	if parts[2] != strings.ToUpper(parts[2]) {
		t.Errorf("suffix must be uppercase, got %q", parts[2])
	}
}

func TestNewOrderNumberUnique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		n := newOrderNumber(now)
		if _, dup := seen[n]; dup {
			t.Fatalf("duplicate order number %q", n)
		}
		seen[n] = struct{}{}
	}
}
