package orchestrator

import (
	"fmt"
	"time"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

// AssembleReport builds the final report. Speakers keep first-appearance order and the
// timestamp is converted to UTC.
func AssembleReport(
	utts []debate.Utterance,
	records []debate.JudgmentRecord,
	summaries map[string]debate.SpeakerSummary,
	src debate.TopicSource,
	at time.Time,
) *debate.Report {
	speakers := distinctSpeakers(utts)
	if summaries == nil {
		summaries = map[string]debate.SpeakerSummary{}
	}
	if records == nil {
		records = []debate.JudgmentRecord{}
	}
	return &debate.Report{
		Summary:          fmt.Sprintf("Debate involved %d speakers and %d sentences.", len(speakers), len(utts)),
		TotalSpeakers:    len(speakers),
		TotalSentences:   len(utts),
		TotalWords:       countWords(utts),
		Speakers:         speakers,
		Timestamp:        at.UTC(),
		TopicSource:      src,
		Records:          records,
		SpeakerSummaries: summaries,
	}
}
