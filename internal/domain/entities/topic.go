// Package entities contains domain entities used across the application.
package entities

import "strconv"

// Topic is a named collection of quiz questions fetched from the data source.
// The identifier is generated on each load; the image is a local-only field
// and is never populated from the network.
type Topic struct {
	ID          string     `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"desc"`
	Questions   []Question `json:"questions"`
	Image       []byte     `json:"-"`
}

// Question is a prompt with an ordered list of candidate answers.
// AnswerKey is the 1-based index of the correct answer, kept as a string
// for wire compatibility. It is bounds-checked once at decode time.
type Question struct {
	Text      string   `json:"text"`
	AnswerKey string   `json:"answer"`
	Answers   []string `json:"answers"`
}

// CorrectAnswer resolves the answer text designated by AnswerKey.
// Keys are validated at decode time, so an unresolvable key here means the
// question never went through decoding; the empty string is returned rather
// than panicking.
func (q Question) CorrectAnswer() string {
	n, err := strconv.Atoi(q.AnswerKey)
	if err != nil || n < 1 || n > len(q.Answers) {
		return ""
	}
	return q.Answers[n-1]
}
