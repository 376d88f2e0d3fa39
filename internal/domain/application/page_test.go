package application

import "testing"

func withStatuses(statuses ...Status) []Application {
	items := make([]Application, 0, len(statuses))
	for _, status := range statuses {
		items = append(items, Application{Status: status})
	}
	return items
}

func TestCountByStatus(t *testing.T) {
	items := withStatuses(StatusPending, StatusAccepted, StatusAccepted, StatusRejected, "", "waitlisted")
	counts := CountByStatus(items)
	if counts.Total != 6 {
		t.Fatalf("expected total 6, got %d", counts.Total)
	}
	if counts.Pending != 3 || counts.Accepted != 2 || counts.Rejected != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestFilterByStatus_EmptySetKeepsAll(t *testing.T) {
	items := withStatuses(StatusPending, StatusAccepted, StatusRejected)
	got := FilterByStatus(items, nil)
	if len(got) != 3 {
		t.Fatalf("expected all items for empty filter, got %d", len(got))
	}
}

func TestFilterByStatus_NormalizesBothSides(t *testing.T) {
	items := withStatuses("", "waitlisted", StatusAccepted)
	got := FilterByStatus(items, []Status{"PENDING"})
	if len(got) != 2 {
		t.Fatalf("expected 2 pending-equivalent items, got %d", len(got))
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := PageCount(tc.total, tc.pageSize); got != tc.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

func TestPage(t *testing.T) {
	items := withStatuses(StatusPending, StatusPending, StatusPending, StatusPending, StatusPending)

	if got := Page(items, 1, 2); len(got) != 2 {
		t.Fatalf("expected 2 items on page 1, got %d", len(got))
	}
	if got := Page(items, 3, 2); len(got) != 1 {
		t.Fatalf("expected 1 item on the last page, got %d", len(got))
	}
	if got := Page(items, 4, 2); len(got) != 0 {
		t.Fatalf("expected empty out-of-range page, got %d", len(got))
	}
	if got := Page(items, 0, 2); len(got) != 0 {
		t.Fatalf("expected empty page for page 0, got %d", len(got))
	}
	if got := Page(items, 1, 10); len(got) != 5 {
		t.Fatalf("expected all items when page size exceeds total, got %d", len(got))
	}
}
