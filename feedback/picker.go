// Package feedback turns utterance signals into judgment text and per-speaker commentary.
//
// Phrase choice goes through a Picker so production output varies while tests can pin every draw:
//
//	eng := feedback.NewEngine(feedback.NewRandomPicker(0))
//	text := eng.Judge(signals)
//
//	agg := feedback.NewAggregator(&feedback.SequencePicker{Picks: []int{0, 1}})
//	agg.Record("A", 0, 0.91)
//	summaries := agg.Summaries()
package feedback

import (
	"math/rand/v2"
	"time"
)

// Picker draws an index in [0, n).
type Picker interface {
	IntN(n int) int
}

// NewRandomPicker returns a PCG-backed picker. A zero seed draws one from the clock.
// The result is not safe for concurrent use; build one per run.
func NewRandomPicker(seed uint64) Picker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequencePicker replays Picks in order, cycling when exhausted. Each value is reduced modulo n.
type SequencePicker struct {
	Picks []int
	next  int
}

func (s *SequencePicker) IntN(n int) int {
	if n <= 0 || len(s.Picks) == 0 {
		return 0
	}
	v := s.Picks[s.next%len(s.Picks)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
