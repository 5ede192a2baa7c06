package chat

import (
	"reflect"
	"testing"
)

func TestInRanges(t *testing.T) {
	ranges := []LinkRange{{0, 3}, {10, 20}}
	tests := []struct {
		loc  int
		want bool
	}{
		{5, false},
		{2, true},
		{0, true},
		{3, true},
		{4, false},
		{10, true},
		{20, true},
		{21, false},
		{-1, false},
	}
	for _, tc := range tests {
		if got := InRanges(tc.loc, ranges); got != tc.want {
			t.Errorf("InRanges(%d) = %v, want %v", tc.loc, got, tc.want)
		}
	}
	if InRanges(0, nil) {
		t.Error("InRanges on no ranges = true")
	}

	unsorted := []LinkRange{{30, 40}, {1, 2}}
	if !InRanges(2, unsorted) {
		t.Error("InRanges(2) on unsorted ranges = false")
	}
}

func TestTopLevelDomainsTable(t *testing.T) {
	if len(TopLevelDomains) != 60 {
		t.Fatalf("len(TopLevelDomains) = %d, want 60", len(TopLevelDomains))
	}
	if TopLevelDomains[0] != ".com " || TopLevelDomains[20] != ".com\n" || TopLevelDomains[40] != ".com/" {
		t.Errorf("unexpected delimiter grouping: %q %q %q", TopLevelDomains[0], TopLevelDomains[20], TopLevelDomains[40])
	}
	if TopLevelDomains[59] != ".mil/" {
		t.Errorf("last entry = %q, want %q", TopLevelDomains[59], ".mil/")
	}
}

func TestEndIndexOfURL(t *testing.T) {
	end, dom := EndIndexOfURL(0, nil, "visit fics.org now")
	if end != 10 || dom != ".org " {
		t.Errorf("EndIndexOfURL = %d, %q, want 10, %q", end, dom, ".org ")
	}

	end, dom = EndIndexOfURL(0, nil, "see chess.com\n")
	if end != 9 || dom != ".com\n" {
		t.Errorf("EndIndexOfURL = %d, %q, want 9, %q", end, dom, ".com\n")
	}

	end, dom = EndIndexOfURL(0, nil, "no links here")
	if end != -1 || dom != ".mil/" {
		t.Errorf("EndIndexOfURL = %d, %q, want -1, %q", end, dom, ".mil/")
	}
}

func TestEndIndexOfURLTableOrder(t *testing.T) {
	// .org appears first in the text, but .com comes first in the table.
	end, dom := EndIndexOfURL(0, nil, "x.org y.com ")
	if end != 7 || dom != ".com " {
		t.Errorf("EndIndexOfURL = %d, %q, want 7, %q", end, dom, ".com ")
	}
}

func TestEndIndexOfURLInsideLink(t *testing.T) {
	message := "http://a.com b.com "
	ranges := []LinkRange{{0, 11}}

	end, dom := EndIndexOfURL(3, ranges, message)
	if end != -1 {
		t.Errorf("EndIndexOfURL inside link = %d, want -1", end)
	}
	if dom != ".mil/" {
		t.Errorf("dom = %q, want the last table entry", dom)
	}

	end, _ = EndIndexOfURL(13, ranges, message)
	if end != 8 {
		t.Errorf("EndIndexOfURL outside link = %d, want 8", end)
	}
}

func TestEndIndexOfURLFrom(t *testing.T) {
	message := "a.com b.com "
	end, dom := EndIndexOfURLFrom(0, nil, message, 3)
	if end != 7 || dom != ".com " {
		t.Errorf("EndIndexOfURLFrom = %d, %q, want 7, %q", end, dom, ".com ")
	}

	if end, _ := EndIndexOfURLFrom(0, nil, message, len(message)+5); end != -1 {
		t.Errorf("EndIndexOfURLFrom past the end = %d, want -1", end)
	}
	if end, _ := EndIndexOfURLFrom(0, nil, message, -4); end != 1 {
		t.Errorf("EndIndexOfURLFrom negative from = %d, want 1", end)
	}
}

func TestFindLinks(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []LinkRange
	}{
		{
			name:    "scheme",
			message: "see http://www.freechess.org/ for help",
			want:    []LinkRange{{4, 28}},
		},
		{
			name:    "bare domain",
			message: "visit fics.org today",
			want:    []LinkRange{{6, 13}},
		},
		{
			name:    "bare domain at line end",
			message: "go to chess.com\n",
			want:    []LinkRange{{6, 14}},
		},
		{
			name:    "domain with path",
			message: "try lichess.org/tv now",
			want:    []LinkRange{{4, 17}},
		},
		{
			name:    "www prefix",
			message: "www.example.xyz is new",
			want:    []LinkRange{{0, 14}},
		},
		{
			name:    "scheme then bare",
			message: "https://a.net/x and b.com more",
			want:    []LinkRange{{0, 14}, {20, 24}},
		},
		{
			name:    "no links",
			message: "good game, thanks",
			want:    nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindLinks(tc.message)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FindLinks(%q) = %v, want %v", tc.message, got, tc.want)
			}
		})
	}
}

func TestFindLinksNeverOverlaps(t *testing.T) {
	message := "http://a.com/x.org/ www.b.com http://c.com www.d.org "
	ranges := FindLinks(message)
	for i := 1; i < len(ranges); i++ {
		if ranges[i].Start <= ranges[i-1].End {
			t.Errorf("ranges overlap: %v and %v", ranges[i-1], ranges[i])
		}
	}
	if len(ranges) != 4 {
		t.Errorf("len(FindLinks) = %d, want 4: %v", len(ranges), ranges)
	}
}
