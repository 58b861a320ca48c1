package quiz

import "math"

// Submission is one answer handed to grading. Selected is nil when the
// question was left unanswered.
type Submission struct {
	QuestionID string `json:"question_id"`
	Selected   *int   `json:"selected"`
}

type GradeResult struct {
	CorrectAnswers int
	Score          int
	Answers        []AnswerRecord
}

// Grade scores submissions against the quiz's questions. Correctness never
// leaks back to the caller mid-quiz; this runs once, at submission time.
//
// Invariants:
//   - CorrectAnswers equals the count of records whose selected index matches
//     the question's correct index.
//   - Score = round(100 * correct / total), half rounded up.
//   - A submission referencing an unknown question is recorded as incorrect
//     with correct index -1 rather than dropped, so the record count always
//     mirrors the submitted list.
func Grade(questions []Question, submissions []Submission) (GradeResult, error) {
	if len(questions) == 0 {
		return GradeResult{}, ErrNoQuestions
	}

	lookup := make(map[string]Question, len(questions))
	for _, question := range questions {
		lookup[question.ID] = question
	}

	result := GradeResult{Answers: make([]AnswerRecord, 0, len(submissions))}
	for _, sub := range submissions {
		question, ok := lookup[sub.QuestionID]
		if !ok {
			result.Answers = append(result.Answers, AnswerRecord{
				QuestionID:   sub.QuestionID,
				Selected:     copyIndex(sub.Selected),
				CorrectIndex: -1,
			})
			continue
		}

		correct := sub.Selected != nil && *sub.Selected == question.CorrectIndex
		if correct {
			result.CorrectAnswers++
		}
		result.Answers = append(result.Answers, AnswerRecord{
			QuestionID:   question.ID,
			Selected:     copyIndex(sub.Selected),
			Correct:      correct,
			CorrectIndex: question.CorrectIndex,
			Explanation:  question.Explanation,
		})
	}

	result.Score = RoundScore(result.CorrectAnswers, len(questions))
	return result, nil
}

// RoundScore computes round(100 * correct / total) with half rounded up.
func RoundScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

func copyIndex(index *int) *int {
	if index == nil {
		return nil
	}
	value := *index
	return &value
}
