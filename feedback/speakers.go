package feedback

import (
	"gonum.org/v1/gonum/stat"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

// Aggregator collects per-speaker grammar and relevance signals for one run.
// It is not safe for concurrent use.
type Aggregator struct {
	picker    Picker
	order     []string
	stats     map[string]*debate.SpeakerStats
	summaries map[string]debate.SpeakerSummary
}

func NewAggregator(p Picker) *Aggregator {
	if p == nil {
		panic("feedback: nil picker")
	}
	return &Aggregator{
		picker: p,
		stats:  map[string]*debate.SpeakerStats{},
	}
}

// Record appends one utterance's signals under speaker, creating the entry on first sight.
// Records arriving after Summaries has run are ignored.
func (a *Aggregator) Record(speaker string, grammarErrors int, relevance float64) {
	if a.summaries != nil {
		return
	}
	st, ok := a.stats[speaker]
	if !ok {
		st = &debate.SpeakerStats{Speaker: speaker}
		a.stats[speaker] = st
		a.order = append(a.order, speaker)
	}
	st.GrammarErrors = append(st.GrammarErrors, grammarErrors)
	st.RelevanceScores = append(st.RelevanceScores, relevance)
}

// Speakers lists speakers in first-seen order.
func (a *Aggregator) Speakers() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Stats returns the accumulator for speaker, or nil.
func (a *Aggregator) Stats(speaker string) *debate.SpeakerStats {
	return a.stats[speaker]
}

// Finalize turns one speaker's stats into commentary: a flawless or has-some-errors grammar phrase
// followed by a relevance phrase tiered like per-utterance judgments.
func (a *Aggregator) Finalize(st *debate.SpeakerStats) debate.SpeakerSummary {
	meanGrammar := meanInts(st.GrammarErrors)
	meanRelevance := meanFloats(st.RelevanceScores)

	grammar := someErrorsPhrases
	if meanGrammar == 0 {
		grammar = flawlessPhrases
	}

	return debate.SpeakerSummary{
		Speaker: st.Speaker,
		Commentary: pick(a.picker, grammar) + " " +
			pick(a.picker, speakerRelevancePhrases[RelevanceTierOf(meanRelevance)]),
	}
}

// Summaries finalizes every speaker once, in first-seen order. Later calls return the same map.
func (a *Aggregator) Summaries() map[string]debate.SpeakerSummary {
	if a.summaries != nil {
		return a.summaries
	}
	out := make(map[string]debate.SpeakerSummary, len(a.order))
	for _, spk := range a.order {
		out[spk] = a.Finalize(a.stats[spk])
	}
	a.summaries = out
	return out
}

func meanInts(xs []int) float64 {
	fs := make([]float64, len(xs))
	for i, x := range xs {
		fs[i] = float64(x)
	}
	return meanFloats(fs)
}

func meanFloats(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}
