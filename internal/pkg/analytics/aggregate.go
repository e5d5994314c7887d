// Package analytics computes the dashboard aggregates over internship and project records.
package analytics

import (
	"sort"
	"strings"

	"github.com/yigit/stit/internal/app/models"
)

// Count is one labelled bar of an aggregate
type Count struct {
	Label string
	Count int
}

// Summary groups the three dashboard aggregates. A nil slice means the component is skipped.
type Summary struct {
	StatusCounts []Count
	DomainCounts []Count
	ToolCounts   []Count
}

// IsEmpty reports whether every component was skipped
func (s Summary) IsEmpty() bool {
	return len(s.StatusCounts) == 0 && len(s.DomainCounts) == 0 && len(s.ToolCounts) == 0
}

// Compute builds the summary for the given records
func Compute(internships []models.Internship, projects []models.Project) Summary {
	return Summary{
		StatusCounts: StatusCounts(internships),
		DomainCounts: DomainCounts(internships),
		ToolCounts:   ToolCounts(projects),
	}
}

var statusOrder = map[models.RecordStatus]int{
	models.StatusPending:  0,
	models.StatusVerified: 1,
}

// StatusCounts counts internships per status. Only statuses present are returned,
// Pending before Verified.
func StatusCounts(internships []models.Internship) []Count {
	if len(internships) == 0 {
		return nil
	}

	tally := make(map[string]int)
	for _, in := range internships {
		tally[string(in.Status)]++
	}

	counts := toCounts(tally)
	sort.SliceStable(counts, func(i, j int) bool {
		ri, iKnown := statusOrder[models.RecordStatus(counts[i].Label)]
		rj, jKnown := statusOrder[models.RecordStatus(counts[j].Label)]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return counts[i].Label < counts[j].Label
		}
	})
	return counts
}

// DomainCounts counts internships per non-empty trimmed domain
func DomainCounts(internships []models.Internship) []Count {
	tally := make(map[string]int)
	for _, in := range internships {
		if d := strings.TrimSpace(in.Domain); d != "" {
			tally[d]++
		}
	}
	return sortedByCount(tally)
}

// ToolCounts counts every tool token across projects
func ToolCounts(projects []models.Project) []Count {
	tally := make(map[string]int)
	for _, p := range projects {
		for _, tool := range SplitTools(p.Tools) {
			tally[tool]++
		}
	}
	return sortedByCount(tally)
}

// SplitTools splits a comma separated tool list, trimming tokens and dropping empty ones
func SplitTools(tools string) []string {
	var out []string
	for _, tok := range strings.Split(tools, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// MaxCount returns the largest count, or 0 for an empty slice
func MaxCount(counts []Count) int {
	max := 0
	for _, c := range counts {
		if c.Count > max {
			max = c.Count
		}
	}
	return max
}

func toCounts(tally map[string]int) []Count {
	counts := make([]Count, 0, len(tally))
	for label, n := range tally {
		counts = append(counts, Count{Label: label, Count: n})
	}
	return counts
}

// sortedByCount orders by count descending, ties by label ascending; nil when empty
func sortedByCount(tally map[string]int) []Count {
	if len(tally) == 0 {
		return nil
	}
	counts := toCounts(tally)
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}
