package chat

import (
	"sort"
	"strings"
)

// LinkRange is a closed interval [Start, End] already recognized as a link.
type LinkRange struct {
	Start int
	End   int
}

// Contains reports whether loc lies inside the range.
func (r LinkRange) Contains(loc int) bool {
	return loc >= r.Start && loc <= r.End
}

// TopLevelDomains lists the domain suffixes that end a bare URL, paired with
// the delimiter that follows them. Order is search priority.
var TopLevelDomains = []string{
	".com ", ".org ", ".edu ", ".gov ", ".uk ", ".net ", ".ca ", ".de ", ".jp ", ".fr ",
	".ru ", ".au ", ".us ", ".ch ", ".it ", ".nl ", ".se ", ".no ", ".es ", ".mil ",
	".com\n", ".org\n", ".edu\n", ".gov\n", ".uk\n", ".net\n", ".ca\n", ".de\n", ".jp\n", ".fr\n",
	".ru\n", ".au\n", ".us\n", ".ch\n", ".it\n", ".nl\n", ".se\n", ".no\n", ".es\n", ".mil\n",
	".com/", ".org/", ".edu/", ".gov/", ".uk/", ".net/", ".ca/", ".de/", ".jp/", ".fr/",
	".ru/", ".au/", ".us/", ".ch/", ".it/", ".nl/", ".se/", ".no/", ".es/", ".mil/",
}

var linkPrefixes = []string{"https://", "http://", "www."}

// InRanges reports whether loc falls within any of ranges.
func InRanges(loc int, ranges []LinkRange) bool {
	_, ok := rangeAt(loc, ranges)
	return ok
}

func rangeAt(loc int, ranges []LinkRange) (LinkRange, bool) {
	for _, r := range ranges {
		if r.Contains(loc) {
			return r, true
		}
	}
	return LinkRange{}, false
}

// EndIndexOfURL is EndIndexOfURLFrom searching from the start of message.
func EndIndexOfURL(start int, ranges []LinkRange, message string) (int, string) {
	return EndIndexOfURLFrom(start, ranges, message, 0)
}

// EndIndexOfURLFrom returns the byte offset in message of the first top
// level domain token found at or after from, trying tokens in table order,
// along with the last token tried. It returns -1 when start lies inside one
// of ranges so that part of a link is never linked twice.
func EndIndexOfURLFrom(start int, ranges []LinkRange, message string, from int) (int, string) {
	inLink := InRanges(start, ranges)

	dom := TopLevelDomains[0]
	end := indexFrom(message, dom, from)
	for i := 1; (end == -1 || inLink) && i < len(TopLevelDomains); i++ {
		dom = TopLevelDomains[i]
		end = indexFrom(message, dom, from)
	}

	if inLink {
		end = -1
	}
	return end, dom
}

// FindLinks returns the byte ranges of message that look like links.
func FindLinks(message string) []LinkRange {
	var ranges []LinkRange

	for _, prefix := range linkPrefixes {
		from := 0
		for {
			i := indexFrom(message, prefix, from)
			if i == -1 {
				break
			}
			end := wordEnd(message, i)
			if !InRanges(i, ranges) {
				ranges = append(ranges, LinkRange{Start: i, End: end})
			}
			from = end + 1
		}
	}

	for from := 0; from < len(message); {
		if r, ok := rangeAt(from, ranges); ok {
			from = r.End + 1
			continue
		}

		end, dom := EndIndexOfURLFrom(from, ranges, message, from)
		if end == -1 {
			break
		}

		start := wordStart(message, end)
		last := end + len(dom) - 2
		if strings.HasSuffix(dom, "/") {
			last = wordEnd(message, end)
		}
		if !InRanges(start, ranges) {
			ranges = append(ranges, LinkRange{Start: start, End: last})
		}
		from = last + 1
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Start < ranges[j].Start
	})
	return ranges
}

func indexFrom(s, substr string, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i == -1 {
		return -1
	}
	return from + i
}

// wordStart returns the offset just after the whitespace preceding i.
func wordStart(s string, i int) int {
	return strings.LastIndexAny(s[:i], whiteSpaceChars) + 1
}

// wordEnd returns the offset of the last byte before the whitespace following i.
func wordEnd(s string, i int) int {
	j := strings.IndexAny(s[i:], whiteSpaceChars)
	if j == -1 {
		return len(s) - 1
	}
	return i + j - 1
}
