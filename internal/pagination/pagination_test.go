package pagination

import (
	"testing"
)

func TestPage(t *testing.T) {
	items := make([]int, 0, 25)
	for i := 1; i <= 25; i++ {
		items = append(items, i)
	}

	cases := []struct {
		name      string
		page      int
		items     []int
		wantLen   int
		wantFirst int
	}{
		{name: "first page", page: 1, items: items, wantLen: 10, wantFirst: 1},
		{name: "middle page", page: 2, items: items, wantLen: 10, wantFirst: 11},
		{name: "short last page", page: 3, items: items, wantLen: 5, wantFirst: 21},
		{name: "past the end", page: 4, items: items, wantLen: 0},
		{name: "zero clamps to one", page: 0, items: items, wantLen: 10, wantFirst: 1},
		{name: "negative clamps to one", page: -3, items: items, wantLen: 10, wantFirst: 1},
		{name: "empty collection", page: 1, items: nil, wantLen: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Page(tc.page, tc.items)
			if len(got) != tc.wantLen {
				t.Fatalf("page %d: got %d items, want %d", tc.page, len(got), tc.wantLen)
			}
			if tc.wantLen > 0 && got[0] != tc.wantFirst {
				t.Fatalf("page %d: first item %d, want %d", tc.page, got[0], tc.wantFirst)
			}
		})
	}
}

func TestPageConcatenationCoversAll(t *testing.T) {
	items := make([]int, 0, 37)
	for i := 0; i < 37; i++ {
		items = append(items, i)
	}

	var combined []int
	for page := 1; ; page++ {
		chunk := Page(page, items)
		if len(chunk) == 0 {
			break
		}
		if len(chunk) > QuestionsPerPage {
			t.Fatalf("page %d has %d items, max is %d", page, len(chunk), QuestionsPerPage)
		}
		combined = append(combined, chunk...)
	}

	if len(combined) != len(items) {
		t.Fatalf("pages combined to %d items, want %d", len(combined), len(items))
	}
	for i, v := range combined {
		if v != items[i] {
			t.Fatalf("item %d: got %d, want %d", i, v, items[i])
		}
	}
}
