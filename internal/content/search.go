package content

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Match is one search hit. Distance is 0 for substring hits.
type Match struct {
	Kind     Kind
	ID       string
	Title    string
	Distance int
}

// Search finds feed titles matching query, either as a substring or within
// an edit distance of a third of the query length. Hits are ordered by
// distance, then images before videos in feed order.
func (f Feed) Search(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	limit := max(1, len([]rune(q))/3)

	var out []Match
	consider := func(kind Kind, id, title string) {
		t := strings.ToLower(title)
		if strings.Contains(t, q) {
			out = append(out, Match{Kind: kind, ID: id, Title: title})
			return
		}
		if d := levenshtein.ComputeDistance(q, t); d <= limit {
			out = append(out, Match{Kind: kind, ID: id, Title: title, Distance: d})
		}
	}
	for _, img := range f.Images {
		consider(KindImage, img.ID, img.Title)
	}
	for _, v := range f.Videos {
		consider(KindVideo, v.ID, v.Title)
	}
	slices.SortStableFunc(out, func(a, b Match) int { return a.Distance - b.Distance })
	return out
}
