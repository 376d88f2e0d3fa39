package application

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   Status
		want Status
	}{
		{"", StatusPending},
		{"pending", StatusPending},
		{"accepted", StatusAccepted},
		{"ACCEPTED", StatusAccepted},
		{"  rejected ", StatusRejected},
		{"waitlisted", StatusPending},
		{"unknown", StatusPending},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsAllowedTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusAccepted, StatusPending, true},
		{StatusRejected, StatusPending, true},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusAccepted, false},
		{StatusPending, StatusPending, false},
		// legacy or absent statuses behave like pending
		{"", StatusAccepted, true},
		{"waitlisted", StatusRejected, true},
	}
	for _, tc := range cases {
		if got := IsAllowedTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("IsAllowedTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
