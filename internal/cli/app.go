// Package cli is a small interactive terminal client for taking quizzes
// against the gateway. It exists mostly for demos and manual testing; the
// HTTP API is the primary surface.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"quizhub/internal/gateway"
	"quizhub/internal/quiz"
	"quizhub/internal/session"
)

const helpText = `Commands:
  quizzes [title|difficulty|questions|duration]  list quizzes
  take <quiz_id>                                 start a timed attempt
  history                                        past attempts and stats
  login <email> <password>                       check credentials
  help                                           this text
  exit`

func Run(ctx context.Context, service *gateway.Service, userID string, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	fmt.Fprintln(out, "quizhub - type 'help' for commands")

	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprintln(out, helpText)
		case "quizzes":
			sortKey := quiz.QuizSortTitle
			if len(fields) > 1 {
				sortKey = quiz.QuizSort(fields[1])
			}
			if err := printQuizList(ctx, service, sortKey, out); err != nil {
				fmt.Fprintf(out, "could not list quizzes: %v\n", err)
			}
		case "history":
			if err := printHistory(ctx, service, userID, out); err != nil {
				fmt.Fprintf(out, "could not load history: %v\n", err)
			}
		case "login":
			if len(fields) != 3 {
				fmt.Fprintln(out, "usage: login <email> <password>")
				continue
			}
			user, _, err := service.Login(ctx, fields[1], fields[2])
			if err != nil {
				fmt.Fprintf(out, "login failed: %v\n", err)
				continue
			}
			userID = user.ID
			fmt.Fprintf(out, "logged in as %s (%s)\n", user.Username, user.ID)
		case "take":
			if len(fields) != 2 {
				fmt.Fprintln(out, "usage: take <quiz_id>")
				continue
			}
			if err := takeQuiz(ctx, service, userID, fields[1], reader, out); err != nil {
				fmt.Fprintf(out, "attempt ended: %v\n", err)
			}
		default:
			fmt.Fprintf(out, "unknown command %q, type 'help'\n", fields[0])
		}
	}
}

func printQuizList(ctx context.Context, service *gateway.Service, sortKey quiz.QuizSort, out io.Writer) error {
	quizzes, err := service.ListQuizzes(ctx)
	if err != nil {
		return err
	}
	quizzes = quiz.SortQuizzes(quizzes, sortKey)

	fmt.Fprintln(out, "Available quizzes:")
	for _, q := range quizzes {
		fmt.Fprintf(out, "  [%s] %s (%s, %d questions, %d min)\n",
			q.ID, q.Title, q.Difficulty, q.QuestionCount, q.TimeLimit/60)
	}
	return nil
}

func printHistory(ctx context.Context, service *gateway.Service, userID string, out io.Writer) error {
	attempts, err := service.GetUserAttempts(ctx, userID)
	if err != nil {
		return err
	}
	attempts = quiz.SortAttempts(attempts, quiz.AttemptSortRecent)
	stats := quiz.ComputeHistoryStats(attempts)

	fmt.Fprintf(out, "%d attempts, average score %d, best %d\n",
		stats.TotalQuizzes, stats.AverageScore, stats.BestScore)
	for _, a := range attempts {
		fmt.Fprintf(out, "  %s  %s  score %d (%d/%d)\n",
			a.CompletedAt.Format("2006-01-02"), a.Quiz.Title, a.Score, a.CorrectAnswers, a.TotalQuestions)
	}
	return nil
}

func takeQuiz(ctx context.Context, service *gateway.Service, userID, quizID string, reader *bufio.Reader, out io.Writer) error {
	sess := session.NewSession(service, session.RealClock{}, userID, quizID)
	if err := sess.Start(ctx); err != nil {
		return err
	}
	defer sess.Close()

	runCtx, stopTimer := context.WithCancel(ctx)
	defer stopTimer()
	go func() { _ = sess.Run(runCtx) }()

	fmt.Fprintf(out, "Starting %s. Answer with a letter, 'n'/'p' to move, 'g N' to jump, 'f' to finish, 'q' to quit.\n", sess.Quiz().Title)

	for sess.State() == session.StateInProgress {
		printCurrentQuestion(sess, out)

		line, err := reader.ReadString('\n')
		if err != nil {
			sess.Close()
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		// The countdown may have submitted while we were blocked on input.
		if sess.State() != session.StateInProgress {
			break
		}

		input := strings.ToLower(strings.TrimSpace(line))
		switch {
		case input == "":
		case input == "q":
			sess.Close()
			return nil
		case input == "f":
			if err := sess.Finish(ctx); err != nil && !errors.Is(err, session.ErrNotInProgress) {
				fmt.Fprintf(out, "submission failed, try 'f' again: %v\n", err)
			}
		case input == "n":
			_ = sess.Next()
		case input == "p":
			_ = sess.Prev()
		case strings.HasPrefix(input, "g "):
			var number int
			if _, err := fmt.Sscanf(input, "g %d", &number); err != nil {
				fmt.Fprintln(out, "usage: g <question number>")
				continue
			}
			if err := sess.Jump(number - 1); err != nil {
				fmt.Fprintln(out, "no such question")
			}
		default:
			if err := answer(sess, input); err != nil {
				fmt.Fprintln(out, "enter a letter, 'n', 'p', 'g N', 'f' or 'q'")
			}
		}
	}

	if result, ok := sess.Result(); ok {
		printResult(result, out)
	} else {
		fmt.Fprintln(out, "Time ran out and the attempt could not be submitted.")
	}
	return nil
}

func answer(sess *session.Session, input string) error {
	if len(input) != 1 || input[0] < 'a' || input[0] > 'z' {
		return session.ErrOptionOutOfRange
	}
	if err := sess.Select(int(input[0] - 'a')); err != nil {
		return err
	}
	return sess.Next()
}

func printCurrentQuestion(sess *session.Session, out io.Writer) {
	questions := sess.Questions()
	index := sess.Current()
	if index >= len(questions) {
		return
	}
	question := questions[index]

	fmt.Fprintf(out, "\n[%d:%02d left] Q%d/%d: %s\n",
		sess.Remaining()/60, sess.Remaining()%60, index+1, len(questions), question.Prompt)
	for i, option := range question.Options {
		marker := " "
		if selected, ok := sess.Selected(); ok && selected == i {
			marker = "*"
		}
		fmt.Fprintf(out, " %s %c. %s\n", marker, 'A'+i, option)
	}
	fmt.Fprint(out, "? ")
}

func printResult(result quiz.Attempt, out io.Writer) {
	fmt.Fprintf(out, "\nScore: %d (%d/%d correct, %ds)\n",
		result.Score, result.CorrectAnswers, result.TotalQuestions, result.TimeSpent)
	for _, record := range result.Answers {
		status := "correct"
		if !record.Correct {
			status = "wrong"
		}
		fmt.Fprintf(out, "  %s: %s\n", record.QuestionID, status)
	}
}
