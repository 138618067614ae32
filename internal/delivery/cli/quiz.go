package cli

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/gagannsingh/iQuiz/internal/domain/entities"
)

// startQuiz resolves the topic argument and runs a full session walk.
func (h *Handler) startQuiz(ctx context.Context, arg string) {
	if len(h.quiz.Topics()) == 0 {
		fmt.Fprintln(h.out, "No topics loaded yet. Try \"refresh\".")
		return
	}

	topicID, err := h.parseTopicNumber(arg)
	if err != nil {
		fmt.Fprintf(h.out, "%v\n", err)
		return
	}

	session, err := h.quiz.StartSession(topicID)
	if err != nil {
		fmt.Fprintf(h.out, "Could not start the quiz: %v\n", err)
		return
	}

	if err := h.runSession(ctx, session); err != nil {
		h.logger.Error("quiz session aborted", zap.Error(err))
	}
}

// runSession walks the session through its answering and reviewing states
// until it finishes, printing per-question feedback along the way.
func (h *Handler) runSession(ctx context.Context, session *entities.QuizSession) error {
	fmt.Fprintf(h.out, "\n%s\n%s\n", session.Topic().Title, session.Topic().Description)

	for session.State() == entities.StateAnswering {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		question, err := session.CurrentQuestion()
		if err != nil {
			return err
		}

		fmt.Fprintf(h.out, "\nQuestion %d of %d: %s\n", session.CurrentIndex()+1, session.TotalQuestions(), question.Text)
		for i, a := range question.Answers {
			fmt.Fprintf(h.out, "  %d. %s\n", i+1, a)
		}

		picked, ok := h.readChoice(len(question.Answers))
		if !ok {
			fmt.Fprintln(h.out, "\nQuiz aborted.")
			return nil
		}

		correct, answer, err := session.SubmitAnswer(question.Answers[picked-1])
		if err != nil {
			return err
		}

		if correct {
			fmt.Fprintln(h.out, "Correct!")
		} else {
			fmt.Fprintf(h.out, "Wrong. The correct answer is: %s\n", answer)
		}
		fmt.Fprintf(h.out, "Score so far: %d of %d\n", session.Score(), session.TotalQuestions())

		if err := session.Advance(); err != nil {
			return err
		}
	}

	fmt.Fprintf(h.out, "\nFinal score: %d of %d. %s\n\n", session.Score(), session.TotalQuestions(), session.ScoreText())

	return nil
}

// readChoice prompts until the user picks one of the listed answers and
// returns its 1-based position. A truncated input stream reports not-ok so
// the caller can abort the walk instead of fabricating answers.
func (h *Handler) readChoice(count int) (int, bool) {
	for {
		fmt.Fprintf(h.out, "Your answer (1-%d): ", count)

		line, ok := h.readLine()
		if !ok {
			return 0, false
		}

		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= count {
			return n, true
		}

		fmt.Fprintf(h.out, "Please enter a number between 1 and %d.\n", count)
	}
}
