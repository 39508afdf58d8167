package schedule

import (
	"testing"

	"github.com/tavolo/backoffice/internal/model"
)

func res(id, date string) model.Reservation {
	return model.Reservation{
		ID:             id,
		Name:           "Mr Smith",
		Phone:          "0123456789",
		NumberOfGuests: 2,
		TableID:        "T1",
		Date:           date,
		Status:         model.StatusConfirmed,
	}
}

func bucketIDs(frs []model.FormattedReservation) []string {
	ids := make([]string, len(frs))
	for i, fr := range frs {
		ids[i] = fr.ID
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPartitionBuckets(t *testing.T) {
	cases := []struct {
		name   string
		date   string
		bucket string
	}{
		{"early morning", "2024-03-15T06:00:00Z", "morning"},
		{"last morning minute", "2024-03-15T11:59:00Z", "morning"},
		{"noon starts afternoon", "2024-03-15T12:00:00Z", "afternoon"},
		{"last afternoon minute", "2024-03-15T16:59:00Z", "afternoon"},
		{"five pm starts evening", "2024-03-15T17:00:00Z", "evening"},
		{"late evening", "2024-03-15T23:30:00Z", "evening"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := Partition([]model.Reservation{res("r1", tc.date)})
			got := map[string]int{
				"morning":   len(ds.Morning),
				"afternoon": len(ds.Afternoon),
				"evening":   len(ds.Evening),
			}
			for bucket, n := range got {
				want := 0
				if bucket == tc.bucket {
					want = 1
				}
				if n != want {
					t.Errorf("%s: bucket %s has %d entries, want %d", tc.date, bucket, n, want)
				}
			}
		})
	}
}

func TestPartitionTotalAndDisjoint(t *testing.T) {
	input := []model.Reservation{
		res("a", "2024-03-15T09:30:00Z"),
		res("b", "2024-03-15T12:00:00Z"),
		res("c", "2024-03-15T18:00:00Z"),
		res("d", "not-a-date"),
		res("e", "2024-03-15T11:00:00Z"),
		res("f", ""),
	}
	ds := Partition(input)

	seen := map[string]int{}
	for _, bucket := range [][]model.FormattedReservation{ds.Morning, ds.Afternoon, ds.Evening} {
		for _, fr := range bucket {
			seen[fr.ID]++
		}
	}
	for _, id := range []string{"a", "b", "c", "e"} {
		if seen[id] != 1 {
			t.Errorf("reservation %s appears %d times, want exactly once", id, seen[id])
		}
	}
	for _, id := range []string{"d", "f"} {
		if seen[id] != 0 {
			t.Errorf("malformed reservation %s leaked into a bucket", id)
		}
	}
	if total := len(ds.Morning) + len(ds.Afternoon) + len(ds.Evening); total != 4 {
		t.Errorf("total bucketed = %d, want 4", total)
	}
}

// Buckets order by the parsed 12-hour display time, not the underlying
// timestamp, so a 9:00am on a later date sorts before a 9:30am on an
// earlier one.  Entries with the same clock reading keep input order.
func TestPartitionSortsByDisplayClock(t *testing.T) {
	ds := Partition([]model.Reservation{
		res("late-clock", "2024-03-14T09:30:00Z"),
		res("early-clock", "2024-03-20T09:00:00Z"),
		res("tie-1", "2024-03-15T10:15:00Z"),
		res("tie-2", "2024-03-16T10:15:00Z"),
	})
	want := []string{"early-clock", "late-clock", "tie-1", "tie-2"}
	if got := bucketIDs(ds.Morning); !equalIDs(got, want) {
		t.Errorf("morning order = %v, want %v", got, want)
	}
}

func TestPartitionEmptyInput(t *testing.T) {
	ds := Partition(nil)
	if ds.Morning == nil || ds.Afternoon == nil || ds.Evening == nil {
		t.Fatal("buckets must be non-nil for empty input")
	}
	if len(ds.Morning)+len(ds.Afternoon)+len(ds.Evening) != 0 {
		t.Fatal("empty input must produce empty buckets")
	}
}

func TestFormat(t *testing.T) {
	r := model.Reservation{
		ID:             "r9",
		Name:           "Dr Maria Lopez",
		Phone:          "0777000111",
		NumberOfGuests: 4,
		TableID:        "T3",
		Date:           "2024-03-15T18:00:00Z",
		Status:         model.StatusPending,
	}
	fr, ok := Format(r)
	if !ok {
		t.Fatal("valid reservation rejected")
	}
	if fr.CustomerName != "Dr Maria Lopez" {
		t.Errorf("CustomerName = %q", fr.CustomerName)
	}
	if fr.Title != "Dr" || fr.FirstName != "Dr" || fr.Surname != "Maria Lopez" {
		t.Errorf("name split = %q/%q/%q", fr.Title, fr.FirstName, fr.Surname)
	}
	if fr.Time != "6:00pm" {
		t.Errorf("Time = %q, want 6:00pm", fr.Time)
	}
	if fr.Date != "2024-03-15T18:00:00Z" {
		t.Errorf("Date = %q, want RFC3339 echo", fr.Date)
	}
	if fr.Persons != 4 || fr.TableID != "T3" || fr.Phone != "0777000111" {
		t.Errorf("carried fields wrong: %+v", fr)
	}

	if _, ok := Format(res("bad", "not-a-date")); ok {
		t.Error("malformed date must not format")
	}
}

func TestFormatEmptyNameDefaultsTitle(t *testing.T) {
	r := res("r2", "2024-03-15T09:30:00Z")
	r.Name = ""
	fr, ok := Format(r)
	if !ok {
		t.Fatal("empty name must still format")
	}
	if fr.Title != "Mr" {
		t.Errorf("Title = %q, want default Mr", fr.Title)
	}
	if fr.FirstName != "" || fr.Surname != "" {
		t.Errorf("empty name split = %q/%q, want empty", fr.FirstName, fr.Surname)
	}
}
