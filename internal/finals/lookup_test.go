package finals

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/fifa-dashboard-service/internal/testutil"
)

func TestFindByYear(t *testing.T) {
	table := Build(testutil.SampleRecords())

	entry, ok := FindByYear(table, 1958)
	if !ok {
		t.Fatal("expected 1958 to be present")
	}
	if entry.Year != 1958 || entry.Winner != "Brazil" || entry.RunnerUp != "Sweden" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	for _, year := range []int{0, 1929, 1954, 2030} {
		if _, ok := FindByYear(table, year); ok {
			t.Fatalf("expected %d to be absent", year)
		}
	}
	if _, ok := FindByYear(nil, 1958); ok {
		t.Fatal("expected empty table lookup to miss")
	}
}

func TestYears(t *testing.T) {
	table := Table{{Year: 1930}, {Year: 1934}, {Year: 1938}}
	if diff := cmp.Diff([]int{1930, 1934, 1938}, Years(table)); diff != "" {
		t.Fatalf("unexpected years (-want +got):\n%s", diff)
	}
	if got := Years(nil); len(got) != 0 {
		t.Fatalf("expected no years, got %v", got)
	}
}

func TestSummary(t *testing.T) {
	table := Build(testutil.SampleRecords())
	year := func(y int) *int { return &y }

	cases := []struct {
		name string
		year *int
		want string
	}{
		{"no selection", nil, Placeholder},
		{"absent year", year(1954), Placeholder},
		{"full final", year(1958), "1958- Brazil won with Sweden as the runner-up."},
		{"missing runner-up", year(1966), "1966- United Kingdom won with N/A as the runner-up."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summary(table, tc.year); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSummaryIsRepeatable(t *testing.T) {
	table := Build(testutil.SampleRecords())
	y := 1950
	first := Summary(table, &y)
	for i := 0; i < 3; i++ {
		if got := Summary(table, &y); got != first {
			t.Fatalf("expected stable summary, got %q then %q", first, got)
		}
	}
}
