package catalog

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"pgregory.net/rapid"

	pkgcatalog "github.com/HerbHall/apidex/pkg/catalog"
)

var (
	genCategory = rapid.SampledFrom([]string{"AI & ML", "Payment", "Weather", "Maps & Location"})
	genAuth     = rapid.SampledFrom([]string{"API Key", "OAuth", "None"})
	genWord     = rapid.StringMatching(`[a-zA-Z]{0,6}`)
)

func genRecords(t *rapid.T) []pkgcatalog.APIRecord {
	n := rapid.IntRange(0, 12).Draw(t, "n")
	records := make([]pkgcatalog.APIRecord, n)
	for i := range records {
		records[i] = pkgcatalog.APIRecord{
			ID:          fmt.Sprintf("r%d", i),
			Name:        genWord.Draw(t, "name"),
			Category:    genCategory.Draw(t, "category"),
			Description: genWord.Draw(t, "description"),
			AuthType:    genAuth.Draw(t, "auth"),
		}
	}
	return records
}

func genQuery(t *rapid.T) Query {
	return Query{
		Search:   rapid.StringMatching(`[a-zA-Z]{0,2}`).Draw(t, "search"),
		Category: rapid.SampledFrom([]string{All, "", "Payment", "Weather", "Unknown"}).Draw(t, "qcategory"),
		AuthType: rapid.SampledFrom([]string{All, "", "OAuth", "None"}).Draw(t, "qauth"),
		Sort:     rapid.SampledFrom([]SortKey{SortByName, SortByCategory}).Draw(t, "sort"),
	}
}

func TestParseSortKey(t *testing.T) {
	for in, want := range map[string]SortKey{"": SortByName, "name": SortByName, "category": SortByCategory} {
		got, err := ParseSortKey(in)
		if err != nil || got != want {
			t.Errorf("ParseSortKey(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseSortKey("price"); !errors.Is(err, pkgcatalog.ErrInvalidSortKey) {
		t.Errorf("ParseSortKey(price) error = %v", err)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records, q := genRecords(t), genQuery(t)
		once := Filter(records, q, language.English)
		twice := Filter(once, q, language.English)
		if strings.Join(ids(once), ",") != strings.Join(ids(twice), ",") {
			t.Fatalf("filter not idempotent: %v then %v", ids(once), ids(twice))
		}
	})
}

func TestFilter_Conjunctive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records, q := genRecords(t), genQuery(t)
		got := make(map[string]bool)
		for _, r := range Filter(records, q, language.English) {
			got[r.ID] = true
		}
		needle := strings.ToLower(q.Search)
		for i := range records {
			r := &records[i]
			want := (strings.Contains(strings.ToLower(r.Name), needle) || strings.Contains(strings.ToLower(r.Description), needle)) &&
				(q.Category == "" || q.Category == All || q.Category == r.Category) &&
				(q.AuthType == "" || q.AuthType == All || q.AuthType == r.AuthType)
			if got[r.ID] != want {
				t.Fatalf("record %+v: in result = %v, want %v for %+v", *r, got[r.ID], want, q)
			}
		}
	})
}

func TestFilter_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records, q := genRecords(t), genQuery(t)
		first := Filter(records, q, language.English)
		second := Filter(records, q, language.English)
		if strings.Join(ids(first), ",") != strings.Join(ids(second), ",") {
			t.Fatalf("same input gave %v then %v", ids(first), ids(second))
		}
	})
}

func TestQueryMatches_AgreesWithFilter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records, q := genRecords(t), genQuery(t)
		kept := make(map[string]bool)
		for _, r := range Filter(records, q, language.English) {
			kept[r.ID] = true
		}
		for i := range records {
			if got := q.Matches(&records[i]); got != kept[records[i].ID] {
				t.Fatalf("Matches(%+v) = %v, Filter kept it: %v", records[i], got, kept[records[i].ID])
			}
		}
	})
}

func TestFilter_Monotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records, q := genRecords(t), genQuery(t)
		narrower := q
		narrower.Search = q.Search + genWord.Draw(t, "extra")
		if narrower.Category == All || narrower.Category == "" {
			narrower.Category = genCategory.Draw(t, "narrowCategory")
		}

		wide := make(map[string]bool)
		for _, r := range Filter(records, q, language.English) {
			wide[r.ID] = true
		}
		for _, r := range Filter(records, narrower, language.English) {
			if !wide[r.ID] {
				t.Fatalf("narrower query returned %q missing from the wider result", r.ID)
			}
		}
	})
}

func TestFilter_StableOnTies(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := genRecords(t)
		got := Filter(records, Query{Sort: SortByCategory}, language.English)
		pos := make(map[string]int, len(records))
		for i := range records {
			pos[records[i].ID] = i
		}
		for i := 1; i < len(got); i++ {
			if got[i-1].Category == got[i].Category && pos[got[i-1].ID] > pos[got[i].ID] {
				t.Fatalf("tie on %q broke source order: %v", got[i].Category, ids(got))
			}
		}
	})
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	records := []pkgcatalog.APIRecord{{ID: "a", Name: "b", Features: []string{"x"}}, {ID: "b", Name: "a"}}
	got := Filter(records, Query{}, language.English)
	got[1].Features[0] = "changed"
	if records[0].ID != "a" || records[0].Features[0] != "x" {
		t.Error("Filter modified or aliased its input")
	}
}

func TestRelated_Bounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := genRecords(t)
		if len(records) == 0 {
			return
		}
		focal := records[rapid.IntRange(0, len(records)-1).Draw(t, "focal")]
		limit := rapid.IntRange(-1, 5).Draw(t, "limit")

		got := Related(records, &focal, limit)
		if len(got) > max(limit, 0) {
			t.Fatalf("got %d related, limit %d", len(got), limit)
		}
		last := -1
		for _, r := range got {
			if r.ID == focal.ID || r.Category != focal.Category {
				t.Fatalf("bad related record %+v for %+v", r, focal)
			}
			var idx int
			fmt.Sscanf(r.ID, "r%d", &idx)
			if idx <= last {
				t.Fatalf("related not in source order: %v", ids(got))
			}
			last = idx
		}
	})
}
