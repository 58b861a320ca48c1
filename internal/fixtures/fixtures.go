// Package fixtures holds the static sample data the mock gateway serves.
// Every function returns a fresh copy so callers can never mutate the
// canonical set.
package fixtures

import (
	"time"

	"quizhub/internal/auth"
	"quizhub/internal/quiz"
)

// DemoPassword is the password every fixture user accepts when the gateway
// runs with real credential checks. Test/demo data only.
const DemoPassword = "password123"

var demoPasswordHash = auth.MustHashPassword(DemoPassword)

func Quizzes() []quiz.Quiz {
	return []quiz.Quiz{
		{
			ID:            "1",
			Title:         "JavaScript Fundamentals",
			Description:   "Test your knowledge of JavaScript basics including variables, functions, and data types",
			Category:      "Programming",
			Difficulty:    quiz.DifficultyBeginner,
			TimeLimit:     1800,
			QuestionCount: 10,
			Thumbnail:     "/images/js-quiz.jpg",
		},
		{
			ID:            "2",
			Title:         "React.js Essentials",
			Description:   "Master the core concepts of React including components, state, and props",
			Category:      "Programming",
			Difficulty:    quiz.DifficultyIntermediate,
			TimeLimit:     2400,
			QuestionCount: 15,
			Thumbnail:     "/images/react-quiz.jpg",
		},
		{
			ID:            "3",
			Title:         "Web Development Basics",
			Description:   "Learn the fundamentals of HTML, CSS, and web technologies",
			Category:      "Web Development",
			Difficulty:    quiz.DifficultyBeginner,
			TimeLimit:     1200,
			QuestionCount: 8,
			Thumbnail:     "/images/web-quiz.jpg",
		},
		{
			ID:            "4",
			Title:         "Database Design",
			Description:   "Understand database concepts, SQL, and relational design principles",
			Category:      "Database",
			Difficulty:    quiz.DifficultyAdvanced,
			TimeLimit:     3600,
			QuestionCount: 20,
			Thumbnail:     "/images/db-quiz.jpg",
		},
		{
			ID:            "5",
			Title:         "Python Programming",
			Description:   "Test your Python skills with syntax, libraries, and best practices",
			Category:      "Programming",
			Difficulty:    quiz.DifficultyIntermediate,
			TimeLimit:     2100,
			QuestionCount: 12,
			Thumbnail:     "/images/python-quiz.jpg",
		},
	}
}

// Questions covers quizzes 1-3; quizzes 4 and 5 intentionally have none so
// the empty-question paths stay exercised.
func Questions() []quiz.Question {
	return []quiz.Question{
		{
			ID:           "q1",
			QuizID:       "1",
			Prompt:       "What is the correct way to declare a variable in JavaScript?",
			Type:         quiz.QuestionMultipleChoice,
			Options:      []string{"var myVar;", "variable myVar;", "v myVar;", "declare myVar;"},
			CorrectIndex: 0,
			Explanation:  "The 'var' keyword is used to declare variables in JavaScript.",
		},
		{
			ID:           "q2",
			QuizID:       "1",
			Prompt:       "Which of the following is NOT a primitive data type in JavaScript?",
			Type:         quiz.QuestionMultipleChoice,
			Options:      []string{"string", "number", "object", "boolean"},
			CorrectIndex: 2,
			Explanation:  "Object is not a primitive data type. The primitive types are string, number, boolean, null, undefined, symbol, and bigint.",
		},
		{
			ID:           "q3",
			QuizID:       "1",
			Prompt:       "JavaScript is a compiled language.",
			Type:         quiz.QuestionTrueFalse,
			Options:      []string{"True", "False"},
			CorrectIndex: 1,
			Explanation:  "JavaScript is an interpreted language, not compiled.",
		},
		{
			ID:           "q4",
			QuizID:       "1",
			Prompt:       "What does '===' operator do in JavaScript?",
			Type:         quiz.QuestionMultipleChoice,
			Options:      []string{"Checks for equality without type conversion", "Checks for equality with type conversion", "Assigns a value", "Compares references"},
			CorrectIndex: 0,
			Explanation:  "The '===' operator checks for strict equality without type conversion.",
		},
		{
			ID:           "q5",
			QuizID:       "1",
			Prompt:       "Which method is used to add an element to the end of an array?",
			Type:         quiz.QuestionMultipleChoice,
			Options:      []string{"append()", "push()", "add()", "insert()"},
			CorrectIndex: 1,
			Explanation:  "The push() method adds one or more elements to the end of an array.",
		},
		{
			ID:           "q6",
			QuizID:       "2",
			Prompt:       "What is JSX in React?",
			Type:         quiz.QuestionMultipleChoice,
			Options:      []string{"A JavaScript library", "A syntax extension for JavaScript", "A CSS framework", "A database query language"},
			CorrectIndex: 1,
			Explanation:  "JSX is a syntax extension for JavaScript that allows you to write HTML-like code in React components.",
		},
		{
			ID:           "q7",
			QuizID:       "2",
			Prompt:       "React components must always return a single parent element.",
			Type:         quiz.QuestionTrueFalse,
			Options:      []string{"True", "False"},
			CorrectIndex: 1,
			Explanation:  "With React Fragments, components can return multiple elements without a single parent wrapper.",
		},
		{
			ID:           "q8",
			QuizID:       "2",
			Prompt:       "Which hook is used to manage state in functional components?",
			Type:         quiz.QuestionMultipleChoice,
			Options:      []string{"useEffect", "useState", "useContext", "useReducer"},
			CorrectIndex: 1,
			Explanation:  "useState is the hook used to add state to functional components.",
		},
		{
			ID:           "q9",
			QuizID:       "3",
			Prompt:       "What does HTML stand for?",
			Type:         quiz.QuestionMultipleChoice,
			Options:      []string{"Hypertext Markup Language", "High Tech Modern Language", "Home Tool Markup Language", "Hyperlink and Text Markup Language"},
			CorrectIndex: 0,
			Explanation:  "HTML stands for Hypertext Markup Language.",
		},
		{
			ID:           "q10",
			QuizID:       "3",
			Prompt:       "CSS stands for Cascading Style Sheets.",
			Type:         quiz.QuestionTrueFalse,
			Options:      []string{"True", "False"},
			CorrectIndex: 0,
			Explanation:  "Yes, CSS stands for Cascading Style Sheets.",
		},
	}
}

func Users() []quiz.User {
	return []quiz.User{
		{
			ID:           "u1",
			Username:     "john_doe",
			Email:        "john@example.com",
			FirstName:    "John",
			LastName:     "Doe",
			Avatar:       "/images/avatar1.jpg",
			JoinedAt:     time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
			TotalQuizzes: 15,
			AverageScore: 78,
			PasswordHash: demoPasswordHash,
		},
		{
			ID:           "u2",
			Username:     "jane_smith",
			Email:        "jane@example.com",
			FirstName:    "Jane",
			LastName:     "Smith",
			Avatar:       "/images/avatar2.jpg",
			JoinedAt:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			TotalQuizzes: 8,
			AverageScore: 85,
			PasswordHash: demoPasswordHash,
		},
	}
}

func Attempts() []quiz.Attempt {
	return []quiz.Attempt{
		{
			ID:             "a1",
			UserID:         "u1",
			QuizID:         "1",
			Score:          80,
			TotalQuestions: 10,
			CorrectAnswers: 8,
			TimeSpent:      1200,
			CompletedAt:    time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC),
			Answers: []quiz.AnswerRecord{
				{QuestionID: "q1", Selected: intPtr(0), Correct: true, CorrectIndex: 0},
				{QuestionID: "q2", Selected: intPtr(2), Correct: true, CorrectIndex: 2},
				{QuestionID: "q3", Selected: intPtr(1), Correct: true, CorrectIndex: 1},
				{QuestionID: "q4", Selected: intPtr(0), Correct: true, CorrectIndex: 0},
				{QuestionID: "q5", Selected: intPtr(1), Correct: true, CorrectIndex: 1},
			},
		},
		{
			ID:             "a2",
			UserID:         "u1",
			QuizID:         "2",
			Score:          75,
			TotalQuestions: 15,
			CorrectAnswers: 11,
			TimeSpent:      1800,
			CompletedAt:    time.Date(2024, 1, 22, 16, 45, 0, 0, time.UTC),
			Answers: []quiz.AnswerRecord{
				{QuestionID: "q6", Selected: intPtr(1), Correct: true, CorrectIndex: 1},
				{QuestionID: "q7", Selected: intPtr(0), Correct: false, CorrectIndex: 1},
				{QuestionID: "q8", Selected: intPtr(1), Correct: true, CorrectIndex: 1},
			},
		},
		{
			ID:             "a3",
			UserID:         "u2",
			QuizID:         "1",
			Score:          90,
			TotalQuestions: 10,
			CorrectAnswers: 9,
			TimeSpent:      900,
			CompletedAt:    time.Date(2024, 1, 21, 11, 20, 0, 0, time.UTC),
			Answers: []quiz.AnswerRecord{
				{QuestionID: "q1", Selected: intPtr(0), Correct: true, CorrectIndex: 0},
				{QuestionID: "q2", Selected: intPtr(2), Correct: true, CorrectIndex: 2},
				{QuestionID: "q3", Selected: intPtr(1), Correct: true, CorrectIndex: 1},
				{QuestionID: "q4", Selected: intPtr(0), Correct: true, CorrectIndex: 0},
				{QuestionID: "q5", Selected: intPtr(1), Correct: true, CorrectIndex: 1},
			},
		},
	}
}

func intPtr(v int) *int {
	return &v
}
