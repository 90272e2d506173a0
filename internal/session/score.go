package session

import (
	"math"

	"github.com/abhisek/chainiz/internal/chaingen"
)

// Score summarizes a practice run. Total counts every problem in the
// worksheet; unanswered problems count toward Total but toward neither
// Correct nor Incorrect.
type Score struct {
	Correct    int
	Incorrect  int
	Total      int
	Percentage int // round(Correct/Total*100); 0 for an empty worksheet
}

// ScoreWorksheet computes the score for a worksheet given the answers
// recorded so far.
func ScoreWorksheet(ws chaingen.Worksheet, answers AnswerSet) Score {
	s := Score{Total: ws.TotalProblems()}
	for _, c := range ws.Chains {
		for _, p := range c.Problems {
			a, ok := answers[p.ID]
			if !ok {
				continue
			}
			if a.Correct {
				s.Correct++
			} else {
				s.Incorrect++
			}
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
	}
	return s
}

// ScoreChain computes the score for a single chain, used for the per-chain
// breakdown on the summary screen.
func ScoreChain(c chaingen.Chain, answers AnswerSet) Score {
	s := Score{Total: len(c.Problems)}
	for _, p := range c.Problems {
		a, ok := answers[p.ID]
		if !ok {
			continue
		}
		if a.Correct {
			s.Correct++
		} else {
			s.Incorrect++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
	}
	return s
}
