package service

import (
	"regexp"
	"strings"
)

// RuleDefault names the fallback verdict used when no recognizer matched.
const RuleDefault = "default"

// choice matches an echoed "yes/no" alternative right after the token. A token
// followed by it is a template echo, not an answer.
const choice = `(\s*/\s*(?:yes|no)\b)?`

// Verdict is the correctness signal extracted from judge feedback.
type Verdict struct {
	Correct bool
	Rule    string
}

// Recognizer looks for an explicit yes/no in free-text feedback. Group 1 of
// the pattern is the token; a non-empty group 2 disqualifies the match.
type Recognizer struct {
	Name    string
	pattern *regexp.Regexp
}

func NewRecognizer(name, expr string) Recognizer {
	return Recognizer{Name: name, pattern: regexp.MustCompile(expr)}
}

// Recognize reports the first explicit token found by the rule. ok is false
// when the rule does not apply to the feedback.
func (r Recognizer) Recognize(feedback string) (correct bool, ok bool) {
	for _, m := range r.pattern.FindAllStringSubmatch(feedback, -1) {
		if len(m) > 2 && m[2] != "" {
			continue
		}
		return strings.EqualFold(m[1], "yes"), true
	}
	return false, false
}

// DefaultRecognizers is the fixed priority order. The first match decides.
var DefaultRecognizers = []Recognizer{
	// "Is the answer correct? Yes", "... (Yes/No) No", "... Yes/No: Yes", "... (Yes)", "... **No**"
	NewRecognizer("verdict-question",
		`(?i)is\s+the\s+answer\s+correct\s*\?[*\s]*(?:\(?\s*yes\s*/\s*no\s*\)?[*\s]*)?[:\-–]?[*\s]*\(?\s*(yes|no)\b`+choice),
	// "Correct: yes"
	NewRecognizer("correct-label", `(?i)correct:\s*(yes|no)\b`+choice),
	// "- Yes, ..." at the start of a line
	NewRecognizer("bullet", `(?im)^[ \t]*[-*•]+[ \t*]*(yes|no)\b`+choice),
}

// Judge turns unstructured feedback into a boolean correctness signal.
type Judge struct {
	rules []Recognizer
}

func NewJudge(rules ...Recognizer) *Judge {
	if len(rules) == 0 {
		rules = DefaultRecognizers
	}
	return &Judge{rules: rules}
}

// Decide applies the rules in order. When none matches the answer counts as
// incorrect.
func (j *Judge) Decide(feedback string) Verdict {
	for _, r := range j.rules {
		if correct, ok := r.Recognize(feedback); ok {
			return Verdict{Correct: correct, Rule: r.Name}
		}
	}
	return Verdict{Correct: false, Rule: RuleDefault}
}
