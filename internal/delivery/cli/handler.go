// Package cli implements the line-oriented terminal delivery layer.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Handler reads commands from the input stream and drives the quiz and
// settings services. It holds no quiz state beyond the session of the walk
// currently on screen.
type Handler struct {
	in        *bufio.Scanner
	out       io.Writer
	quiz      Quiz
	settings  Settings
	refresher Refresher
	logger    *zap.Logger
}

// NewHandler creates a Handler bound to the given streams and services.
func NewHandler(in io.Reader, out io.Writer, quiz Quiz, settings Settings, refresher Refresher, logger *zap.Logger) *Handler {
	return &Handler{
		in:        bufio.NewScanner(in),
		out:       out,
		quiz:      quiz,
		settings:  settings,
		refresher: refresher,
		logger:    logger,
	}
}

// Run processes commands until EOF, "quit" or context cancellation.
func (h *Handler) Run(ctx context.Context) error {
	h.printHelp()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(h.out, "> ")
		line, ok := h.readLine()
		if !ok {
			return h.in.Err()
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "":
			continue
		case "topics":
			h.printTopics()
		case "quiz":
			h.startQuiz(ctx, arg)
		case "refresh":
			if err := h.quiz.Refresh(ctx); err != nil {
				fmt.Fprintf(h.out, "Refresh failed: %v\n", err)
				continue
			}
			fmt.Fprintf(h.out, "Loaded %d topics.\n", len(h.quiz.Topics()))
		case "url":
			h.setURL(arg)
		case "interval":
			h.setInterval(ctx, arg)
		case "settings":
			p := h.settings.Current()
			fmt.Fprintf(h.out, "Data source: %s\nRefresh interval: %s\n", p.DataSourceURL, p.RefreshInterval)
		case "help":
			h.printHelp()
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(h.out, "Unknown command %q. Type \"help\" for the command list.\n", cmd)
		}
	}
}

func (h *Handler) readLine() (string, bool) {
	if !h.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(h.in.Text()), true
}

func (h *Handler) printHelp() {
	fmt.Fprint(h.out, `Commands:
  topics          list the loaded topics
  quiz <n>        start the quiz for topic number n
  refresh         re-fetch the topic list now
  settings        show the current settings
  url <u>         set the data source URL
  interval <d>    set the refresh interval (e.g. 60s, 5m)
  help            show this list
  quit            exit
`)
}

func (h *Handler) printTopics() {
	topics := h.quiz.Topics()
	if len(topics) == 0 {
		fmt.Fprintln(h.out, "No topics loaded yet. Try \"refresh\".")
		return
	}

	for i, t := range topics {
		fmt.Fprintf(h.out, "%d. %s - %s (%d questions)\n", i+1, t.Title, t.Description, len(t.Questions))
	}
}

func (h *Handler) setURL(arg string) {
	if arg == "" {
		fmt.Fprintln(h.out, "Usage: url <data source URL>")
		return
	}

	if err := h.settings.SetDataSourceURL(arg); err != nil {
		fmt.Fprintf(h.out, "Invalid URL: %v\n", err)
		return
	}

	fmt.Fprintln(h.out, "Data source updated. Run \"refresh\" to load it.")
}

func (h *Handler) setInterval(ctx context.Context, arg string) {
	d, err := time.ParseDuration(arg)
	if err != nil {
		fmt.Fprintln(h.out, "Usage: interval <duration>, e.g. interval 60s")
		return
	}

	if err := h.settings.SetRefreshInterval(d); err != nil {
		fmt.Fprintf(h.out, "Invalid interval: %v\n", err)
		return
	}
	if err := h.refresher.SetInterval(ctx, d); err != nil {
		fmt.Fprintf(h.out, "Failed to restart the scheduler: %v\n", err)
		return
	}

	fmt.Fprintf(h.out, "Refresh interval set to %s.\n", d)
}

// parseTopicNumber maps the 1-based list position shown by printTopics back
// to a topic identifier.
func (h *Handler) parseTopicNumber(arg string) (string, error) {
	topics := h.quiz.Topics()

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(topics) {
		return "", fmt.Errorf("pick a topic number between 1 and %d", len(topics))
	}

	return topics[n-1].ID, nil
}
