// Package session tracks the learner's answers against a generated
// worksheet. The worksheet itself stays authoritative and untouched; this
// package owns only the answer records keyed by problem id.
package session

import (
	"fmt"
	"time"

	"github.com/abhisek/chainiz/internal/chaingen"
)

// Answer records one graded response to a problem.
type Answer struct {
	ProblemID  string
	Value      int
	Correct    bool
	AnsweredAt time.Time
}

// AnswerSet maps problem ids to answers. Sets are treated as immutable:
// every update goes through With, which returns a fresh copy, so state
// transitions in the UI layer stay observably pure.
type AnswerSet map[string]Answer

// With returns a copy of the set with a recorded or replaced.
func (s AnswerSet) With(a Answer) AnswerSet {
	next := make(AnswerSet, len(s)+1)
	for id, prev := range s {
		next[id] = prev
	}
	next[a.ProblemID] = a
	return next
}

// Get returns the answer for a problem id, if any.
func (s AnswerSet) Get(problemID string) (Answer, bool) {
	a, ok := s[problemID]
	return a, ok
}

// Record grades value against the matching problem in the worksheet and
// returns a new set containing the answer. Correctness is exact equality
// with the problem's result. An unknown problem id is a real error: it
// means the caller's worksheet and answer state have diverged.
func Record(ws chaingen.Worksheet, s AnswerSet, problemID string, value int, at time.Time) (AnswerSet, Answer, error) {
	p, ok := findProblem(ws, problemID)
	if !ok {
		return s, Answer{}, fmt.Errorf("problem not in worksheet: %q", problemID)
	}
	a := Answer{
		ProblemID:  problemID,
		Value:      value,
		Correct:    value == p.Result,
		AnsweredAt: at,
	}
	return s.With(a), a, nil
}

func findProblem(ws chaingen.Worksheet, problemID string) (chaingen.Problem, bool) {
	for _, c := range ws.Chains {
		for _, p := range c.Problems {
			if p.ID == problemID {
				return p, true
			}
		}
	}
	return chaingen.Problem{}, false
}
