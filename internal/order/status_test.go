package order

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, true},

		{StatusPending, StatusShipped, false},
		{StatusPending, StatusDelivered, false},
		{StatusProcessing, StatusPending, false},
		{StatusDelivered, StatusProcessing, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusDelivered, false},
		{StatusFailed, StatusPending, false},
		{StatusPending, StatusFailed, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected allowed=%v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusDelivered, StatusCancelled, StatusFailed} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusProcessing, StatusShipped} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("shipped"); err != nil {
		t.Errorf("shipped should parse: %v", err)
	}
	if _, err := ParseStatus("failed"); err == nil {
		t.Error("failed is internal and must not parse as an operator status")
	}
	if _, err := ParseStatus("bogus"); err == nil {
		t.Error("bogus should not parse")
	}
}
