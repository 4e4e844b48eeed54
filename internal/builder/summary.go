package builder

import (
	"math"
	"strings"

	"github.com/mansoorceksport/kinetic/internal/domain"
)

// Summary is the overview shown above the plan
type Summary struct {
	Exercises        int      `json:"exercises"`
	TotalSets        int      `json:"total_sets"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	Equipment        string   `json:"equipment"`
	Coverage         Coverage `json:"coverage"`
}

// CategoryCount is one bar of the coverage chart
type CategoryCount struct {
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
}

// Coverage counts plan items per category. Max is never below 1 so it
// can be used as a divisor for bar widths.
type Coverage struct {
	Categories []CategoryCount `json:"categories"`
	Max        int             `json:"max"`
}

func (d *Draft) Summary() Summary {
	return Summary{
		Exercises:        len(d.items),
		TotalSets:        d.TotalSets(),
		EstimatedMinutes: d.EstimatedMinutes(),
		Equipment:        d.EquipmentSummary(),
		Coverage:         d.Coverage(),
	}
}

func (d *Draft) TotalSets() int {
	total := 0
	for _, item := range d.items {
		total += item.Sets
	}
	return total
}

// EstimatedMinutes allows 2.5 minutes per set
func (d *Draft) EstimatedMinutes() int {
	return int(math.Round(float64(d.TotalSets()) * minutesPerSet))
}

// EquipmentSummary lists distinct equipment labels in first-use order,
// e.g. "BW · DB", or "—" for an empty plan.
func (d *Draft) EquipmentSummary() string {
	var labels []string
	seen := make(map[domain.Equipment]bool, 3)
	for _, item := range d.items {
		eq := item.Exercise.Equipment
		if seen[eq] {
			continue
		}
		seen[eq] = true
		labels = append(labels, eq.Label())
	}
	if len(labels) == 0 {
		return "—"
	}
	return strings.Join(labels, " · ")
}

func (d *Draft) Coverage() Coverage {
	counts := make(map[domain.Category]int, len(domain.Categories))
	for _, item := range d.items {
		counts[item.Exercise.Category]++
	}
	cov := Coverage{
		Categories: make([]CategoryCount, 0, len(domain.Categories)),
		Max:        1,
	}
	for _, cat := range domain.Categories {
		n := counts[cat]
		cov.Categories = append(cov.Categories, CategoryCount{Category: cat, Label: cat.Title(), Count: n})
		if n > cov.Max {
			cov.Max = n
		}
	}
	return cov
}
