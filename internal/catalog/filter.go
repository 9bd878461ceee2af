package catalog

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Filter is the three-way predicate applied to the catalog. Empty OS or
// Category behave like All.
type Filter struct {
	OS       string
	Category string
	Search   string
}

// FuzzyConfig bundles tuning parameters for fuzzy search.
type FuzzyConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
}

func (f Filter) matchesOS(s Shortcut) bool {
	return f.OS == "" || f.OS == All || s.OS == f.OS
}

func (f Filter) matchesCategory(s Shortcut) bool {
	return f.Category == "" || f.Category == All || s.Category == f.Category
}

// Apply returns the indices of records matching f, in source order.
func Apply(records []Shortcut, f Filter) []int {
	q := strings.ToLower(f.Search)
	idx := make([]int, 0, len(records))
	for i, s := range records {
		if !f.matchesOS(s) || !f.matchesCategory(s) {
			continue
		}
		if q == "" || containsFold(s, q) {
			idx = append(idx, i)
		}
	}
	return idx
}

// ApplyFuzzy behaves like Apply but falls back to fuzzy matching over the
// searchable fields when the substring clause yields nothing. Results keep
// source order.
func ApplyFuzzy(records []Shortcut, f Filter, cfg FuzzyConfig) []int {
	sub := Apply(records, f)
	if len(sub) > 0 || f.Search == "" {
		return sub
	}

	scope := Apply(records, Filter{OS: f.OS, Category: f.Category})
	if len(scope) == 0 {
		return scope
	}
	base := make([]string, len(scope))
	for j, i := range scope {
		base[j] = searchText(records[i])
	}
	return filterByFuzzy(strings.ToLower(f.Search), base, scope, cfg)
}

func containsFold(s Shortcut, q string) bool {
	return strings.Contains(strings.ToLower(s.Description), q) ||
		strings.Contains(strings.ToLower(s.Detailed), q) ||
		strings.Contains(strings.ToLower(s.Keys), q)
}

func searchText(s Shortcut) string {
	return strings.ToLower(s.Description + "  " + s.Detailed + "  " + s.Keys)
}

// filterByFuzzy applies fuzzy matching on base (parallel to scope) and
// filters results based on coverage and spread thresholds from cfg.
func filterByFuzzy(q string, base []string, scope []int, cfg FuzzyConfig) []int {
	matches := fuzzy.Find(q, base)

	pruned := make([]int, 0, len(matches))
	for _, mt := range matches {
		if matchCoverage(q, mt) < cfg.MinCoverage {
			continue
		}
		if cfg.MaxSpread > 0 && matchSpread(mt) > cfg.MaxSpread {
			continue
		}
		pruned = append(pruned, scope[mt.Index])
	}
	sort.Ints(pruned)
	return pruned
}

// matchCoverage returns the ratio of matched characters to the query length.
func matchCoverage(q string, m fuzzy.Match) float64 {
	if len(q) == 0 {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

// matchSpread returns the distance between the first and last matched index.
func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	return m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0]
}

var osOrder = map[string]int{"mac": 0, "windows": 1, "linux": 2}

// OSes returns the distinct OS values, known platforms first, then the rest
// in first-seen order.
func OSes(records []Shortcut) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, 4)
	for _, s := range records {
		if !seen[s.OS] {
			seen[s.OS] = true
			out = append(out, s.OS)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, iok := osOrder[out[i]]
		oj, jok := osOrder[out[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok:
			return true
		default:
			return false
		}
	})
	return out
}

// Categories returns the distinct categories in first-seen order.
func Categories(records []Shortcut) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range records {
		if s.Category == "" || seen[s.Category] {
			continue
		}
		seen[s.Category] = true
		out = append(out, s.Category)
	}
	return out
}
