package stats

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/pescuma/oldtodos/lib/model"
)

type Stats struct {
	MeanAgeDays   float64 `json:"mean_age_days"`
	MedianAgeDays int64   `json:"median_age_days"`
}

func Compute(todos []*model.Todo) *Stats {
	return ComputeFromDays(lo.Map(todos, func(t *model.Todo, _ int) int64 { return t.AgeDays() }))
}

// ComputeFromDays computes the stats from ages in whole days.
func ComputeFromDays(days []int64) *Stats {
	ages := make([]int64, len(days))
	copy(ages, days)
	sort.Slice(ages, func(i, j int) bool { return ages[i] < ages[j] })

	result := &Stats{}

	if len(ages) == 0 {
		return result
	}

	result.MeanAgeDays = float64(lo.Sum(ages)) / float64(len(ages))

	mid := len(ages) / 2
	if len(ages)%2 == 0 {
		result.MedianAgeDays = (ages[mid-1] + ages[mid]) / 2
	} else {
		result.MedianAgeDays = ages[mid]
	}

	return result
}

var valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

func Format(s *Stats, shown int, total int) string {
	count := valueStyle.Render(fmt.Sprintf("%v/%v", humanize.Comma(int64(shown)), humanize.Comma(int64(total))))
	mean := valueStyle.Render(fmt.Sprintf("%.1f days", s.MeanAgeDays))
	median := valueStyle.Render(fmt.Sprintf("%v days", s.MedianAgeDays))

	return fmt.Sprintf("Todos: %v  ||  Mean: %v  ||  Median: %v", count, mean, median)
}
