package quiz

import (
	"sort"
	"strings"
)

// QuizFilter narrows a quiz list. Zero-valued fields match everything and
// the populated ones are conjunctive, so application order never changes
// the result set.
type QuizFilter struct {
	Search     string
	Category   string
	Difficulty Difficulty
}

func (f QuizFilter) matches(q Quiz) bool {
	if search := strings.TrimSpace(f.Search); search != "" {
		needle := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(q.Title), needle) &&
			!strings.Contains(strings.ToLower(q.Description), needle) &&
			!strings.Contains(strings.ToLower(q.Category), needle) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(q.Category, f.Category) {
		return false
	}
	if f.Difficulty != "" && !strings.EqualFold(string(q.Difficulty), string(f.Difficulty)) {
		return false
	}
	return true
}

// FilterQuizzes returns the quizzes matching the filter, preserving input order.
func FilterQuizzes(quizzes []Quiz, filter QuizFilter) []Quiz {
	out := make([]Quiz, 0, len(quizzes))
	for _, q := range quizzes {
		if filter.matches(q) {
			out = append(out, q)
		}
	}
	return out
}

type QuizSort string

const (
	QuizSortTitle      QuizSort = "title"      // lexicographic ascending
	QuizSortDifficulty QuizSort = "difficulty" // Beginner < Intermediate < Advanced
	QuizSortQuestions  QuizSort = "questions"  // question count descending
	QuizSortDuration   QuizSort = "duration"   // time limit ascending
)

// SortQuizzes returns a sorted copy. The sort is stable so ties keep the
// incoming order.
func SortQuizzes(quizzes []Quiz, key QuizSort) []Quiz {
	sorted := make([]Quiz, len(quizzes))
	copy(sorted, quizzes)

	sort.SliceStable(sorted, func(i, j int) bool {
		switch key {
		case QuizSortDifficulty:
			return sorted[i].Difficulty.Rank() < sorted[j].Difficulty.Rank()
		case QuizSortQuestions:
			return sorted[i].QuestionCount > sorted[j].QuestionCount
		case QuizSortDuration:
			return sorted[i].TimeLimit < sorted[j].TimeLimit
		default:
			return sorted[i].Title < sorted[j].Title
		}
	})
	return sorted
}
