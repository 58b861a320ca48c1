package quiz

import (
	"math"
	"sort"
	"strings"
	"time"
)

// AttemptFilter narrows a history list. Filters are conjunctive. From and To
// bound the completion timestamp; To is a date and covers its entire day.
type AttemptFilter struct {
	Search   string
	Category string
	From     time.Time
	To       time.Time
}

func (f AttemptFilter) matches(a AttemptWithQuiz) bool {
	if search := strings.TrimSpace(f.Search); search != "" {
		needle := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(a.Quiz.Title), needle) &&
			!strings.Contains(strings.ToLower(a.Quiz.Category), needle) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(a.Quiz.Category, f.Category) {
		return false
	}
	if !f.From.IsZero() && a.CompletedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !a.CompletedAt.Before(f.To.AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// FilterAttempts returns the attempts matching the filter, preserving input order.
func FilterAttempts(attempts []AttemptWithQuiz, filter AttemptFilter) []AttemptWithQuiz {
	out := make([]AttemptWithQuiz, 0, len(attempts))
	for _, a := range attempts {
		if filter.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

type AttemptSort string

const (
	AttemptSortRecent    AttemptSort = "recent"
	AttemptSortOldest    AttemptSort = "oldest"
	AttemptSortScoreHigh AttemptSort = "score-high"
	AttemptSortScoreLow  AttemptSort = "score-low"
	AttemptSortTitle     AttemptSort = "title"
)

// SortAttempts returns a sorted copy. Stable, so ties keep the incoming order.
func SortAttempts(attempts []AttemptWithQuiz, key AttemptSort) []AttemptWithQuiz {
	sorted := make([]AttemptWithQuiz, len(attempts))
	copy(sorted, attempts)

	sort.SliceStable(sorted, func(i, j int) bool {
		switch key {
		case AttemptSortOldest:
			return sorted[i].CompletedAt.Before(sorted[j].CompletedAt)
		case AttemptSortScoreHigh:
			return sorted[i].Score > sorted[j].Score
		case AttemptSortScoreLow:
			return sorted[i].Score < sorted[j].Score
		case AttemptSortTitle:
			return sorted[i].Quiz.Title < sorted[j].Quiz.Title
		default:
			return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
		}
	})
	return sorted
}

// HistoryStats aggregates a user's attempt history for the summary cards.
type HistoryStats struct {
	TotalQuizzes int `json:"total_quizzes"`
	AverageScore int `json:"average_score"`
	BestScore    int `json:"best_score"`
	TotalTime    int `json:"total_time"` // seconds
}

func ComputeHistoryStats(attempts []AttemptWithQuiz) HistoryStats {
	stats := HistoryStats{TotalQuizzes: len(attempts)}
	if len(attempts) == 0 {
		return stats
	}

	sum := 0
	for _, a := range attempts {
		sum += a.Score
		stats.TotalTime += a.TimeSpent
		if a.Score > stats.BestScore {
			stats.BestScore = a.Score
		}
	}
	stats.AverageScore = int(math.Round(float64(sum) / float64(len(attempts))))
	return stats
}
