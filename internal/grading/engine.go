package grading

import "strings"

// Q is the minimal view of a question needed for grading.
type Q struct {
	Type      string
	AnswerKey []string
}

// Strategy decides one submission against one question.
type Strategy interface {
	Correct(q Q, response any) bool
}

// Grader routes by question type to the correct Strategy.
type Grader interface {
	Correct(q Q, response any) bool
}

type defaultGrader struct {
	strategies map[string]Strategy
}

// NewGrader installs the built-in strategies for the three question kinds.
// A question with an unknown type is never correct.
func NewGrader() Grader {
	return &defaultGrader{
		strategies: map[string]Strategy{
			"single-choice":   singleChoiceStrategy{},
			"multiple-choice": multiChoiceStrategy{},
			"text":            textStrategy{},
		},
	}
}

func (g *defaultGrader) Correct(q Q, response any) bool {
	s, ok := g.strategies[q.Type]
	if !ok {
		return false
	}
	return s.Correct(q, response)
}

// --- Strategies ---

type singleChoiceStrategy struct{}

func (singleChoiceStrategy) Correct(q Q, response any) bool {
	resp, ok := response.(string)
	if !ok {
		return false
	}
	for _, k := range q.AnswerKey {
		if resp == k {
			return true
		}
	}
	return false
}

type multiChoiceStrategy struct{}

// Correct requires set equality between the submitted option ids and the
// answer key. Duplicates on either side collapse before comparison, so they
// neither help nor hurt. A non-sequence submission is always incorrect.
func (multiChoiceStrategy) Correct(q Q, response any) bool {
	respSlice, ok := toStringSlice(response)
	if !ok {
		return false
	}
	return setEqual(toSet(q.AnswerKey), toSet(respSlice))
}

type textStrategy struct{}

// Correct compares the trimmed, case-folded submission against each key.
// Interior whitespace is significant; only the outer trim is forgiven.
func (textStrategy) Correct(q Q, response any) bool {
	resp, ok := response.(string)
	if !ok {
		return false
	}
	trimmed := strings.TrimSpace(resp)
	for _, k := range q.AnswerKey {
		if strings.EqualFold(trimmed, strings.TrimSpace(k)) {
			return true
		}
	}
	return false
}

// helpers

func toStringSlice(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func toSet(arr []string) map[string]struct{} {
	m := make(map[string]struct{}, len(arr))
	for _, s := range arr {
		m[s] = struct{}{}
	}
	return m
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
