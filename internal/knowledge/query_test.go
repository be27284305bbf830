package knowledge

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/pdiddy/knowledge-manager/pkg/types"
)

func ingestDoc(t *testing.T, store *Store, query, content string) *types.Document {
	t.Helper()
	doc, err := store.Ingest(context.Background(), query, types.ResearchResult{
		Findings: []types.Finding{{Title: "Findings", Content: content}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestSearchScenario(t *testing.T) {
	store, _ := testStore(t)
	ingestGraph(t, store)

	results := store.Search("graph", 5)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].RelevanceScore <= 0 {
		t.Errorf("score = %f, want > 0", results[0].RelevanceScore)
	}
	if results[0].Title != "Research: graph databases" {
		t.Errorf("title = %q", results[0].Title)
	}
	if results[0].Source != "research-agent" {
		t.Errorf("source = %q", results[0].Source)
	}

	if results := store.Search("unrelated term xyz", 5); len(results) != 0 {
		t.Errorf("got %d results for unrelated query, want 0", len(results))
	}
}

func TestSearchScore(t *testing.T) {
	store, _ := testStore(t)
	ingestDoc(t, store, "scoring", "alpha beta gamma")

	tests := []struct {
		name  string
		query string
		want  float64
	}{
		{"all terms present", "alpha beta", 1.0},
		{"half present", "alpha missing", 0.5},
		{"one of three", "alpha nope nada", 1.0 / 3.0},
		{"duplicates collapse", "alpha alpha missing", 0.5},
		{"case insensitive", "ALPHA Beta", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := store.Search(tt.query, 5)
			if len(results) != 1 {
				t.Fatalf("got %d results, want 1", len(results))
			}
			if got := results[0].RelevanceScore; got != tt.want {
				t.Errorf("score = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSearchExcludesZeroOverlap(t *testing.T) {
	store, _ := testStore(t)
	ingestDoc(t, store, "matching", "shared keyword here")
	ingestDoc(t, store, "nonmatching", "entirely different text")

	results := store.Search("keyword", 10)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (zero-overlap documents excluded)", len(results))
	}
	for _, r := range results {
		if r.RelevanceScore <= 0 {
			t.Errorf("result %s has non-positive score %f", r.ID, r.RelevanceScore)
		}
	}
}

func TestSearchLimit(t *testing.T) {
	store, _ := testStore(t)
	for i := 0; i < 8; i++ {
		ingestDoc(t, store, fmt.Sprintf("query-%d", i), "shared term plus filler")
	}

	tests := []struct {
		limit int
		want  int
	}{
		{3, 3},
		{8, 8},
		{100, 8},
		{0, 0},
		{-1, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit=%d", tt.limit), func(t *testing.T) {
			results := store.Search("shared", tt.limit)
			if len(results) != tt.want {
				t.Errorf("got %d results, want %d", len(results), tt.want)
			}
		})
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	store, _ := testStore(t)
	ingestGraph(t, store)

	// A query with no terms matches nothing rather than faulting.
	for _, query := range []string{"", "   ", "\t\n"} {
		if results := store.Search(query, 5); len(results) != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", query, len(results))
		}
	}
}

func TestSearchRanking(t *testing.T) {
	store, _ := testStore(t)
	ingestDoc(t, store, "strong match", "apple banana cherry")
	ingestDoc(t, store, "weak match", "apple only")

	results := store.Search("apple banana", 5)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].RelevanceScore < results[1].RelevanceScore {
		t.Errorf("results not sorted by score descending: %f then %f",
			results[0].RelevanceScore, results[1].RelevanceScore)
	}
	if results[0].Title != "Research: strong match" {
		t.Errorf("top result = %q, want the stronger match", results[0].Title)
	}
}

func TestSearchTieBreakByID(t *testing.T) {
	store, _ := testStore(t)
	a := ingestDoc(t, store, "tie one", "identical keyword content")
	b := ingestDoc(t, store, "tie two", "identical keyword content")

	wantFirst, wantSecond := a.ID, b.ID
	if wantSecond < wantFirst {
		wantFirst, wantSecond = wantSecond, wantFirst
	}

	// Equal scores order by id ascending, so repeated searches agree.
	for i := 0; i < 3; i++ {
		results := store.Search("keyword", 5)
		if len(results) != 2 {
			t.Fatalf("got %d results, want 2", len(results))
		}
		if results[0].ID != wantFirst || results[1].ID != wantSecond {
			t.Errorf("tie order = [%s, %s], want [%s, %s]",
				results[0].ID, results[1].ID, wantFirst, wantSecond)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases and splits", "Graph Databases", []string{"graph", "databases"}},
		{"collapses duplicates", "go go go", []string{"go"}},
		{"mixed whitespace", "a\tb\n c", []string{"a", "b", "c"}},
		{"empty", "", nil},
		{"whitespace only", "  \n ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.in)
			want := make(map[string]bool)
			for _, w := range tt.want {
				want[w] = true
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, want)
			}
		})
	}
}
