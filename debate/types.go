// Package debate holds the transcript and report model shared by the analysis packages.
package debate

import "time"

type Utterance struct {
	Position int    `json:"position" yaml:"position"`
	Speaker  string `json:"speaker" yaml:"speaker"`
	Text     string `json:"text" yaml:"text"`
}

// Sentiment labels after provider normalization.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Emotion vocabulary produced by the emotion classifiers.
const (
	EmotionAnger    = "anger"
	EmotionDisgust  = "disgust"
	EmotionFear     = "fear"
	EmotionJoy      = "joy"
	EmotionNeutral  = "neutral"
	EmotionSadness  = "sadness"
	EmotionSurprise = "surprise"
)

type Label struct {
	Label string  `json:"label" yaml:"label"`
	Score float64 `json:"score" yaml:"score"` // 0..1, rounded to 3 decimals
}

type Grammar struct {
	ErrorCount    int    `json:"errors" yaml:"errors"`
	CorrectedText string `json:"corrected_text" yaml:"corrected_text"`
}

// SignalBundle is everything the providers said about one utterance.
type SignalBundle struct {
	Sentiment Label   `json:"sentiment" yaml:"sentiment"`
	Emotion   Label   `json:"emotion" yaml:"emotion"`
	Relevance float64 `json:"relevance" yaml:"relevance"` // cosine to topic, -1..1
	Grammar   Grammar `json:"grammar" yaml:"grammar"`
}

type JudgmentRecord struct {
	Utterance    `yaml:",inline"`
	SignalBundle `yaml:",inline"`
	Judgment     string `json:"judgment" yaml:"judgment"`
}

// SpeakerStats accumulates one speaker's signals across a single run.
type SpeakerStats struct {
	Speaker         string
	GrammarErrors   []int
	RelevanceScores []float64
}

type SpeakerSummary struct {
	Speaker    string `json:"speaker" yaml:"speaker"`
	Commentary string `json:"commentary" yaml:"commentary"`
}

// TopicSource tells where the topic embedding came from.
type TopicSource string

const (
	TopicExplicit   TopicSource = "explicit"
	TopicTranscript TopicSource = "transcript"
)

// Report is the single artifact of an analysis run. Timestamp is UTC.
type Report struct {
	Summary          string                    `json:"summary" yaml:"summary"`
	TotalSpeakers    int                       `json:"total_speakers" yaml:"total_speakers"`
	TotalSentences   int                       `json:"total_sentences" yaml:"total_sentences"`
	TotalWords       int                       `json:"total_words" yaml:"total_words"`
	Speakers         []string                  `json:"speakers" yaml:"speakers"`
	Timestamp        time.Time                 `json:"timestamp" yaml:"timestamp"`
	TopicSource      TopicSource               `json:"topic_source" yaml:"topic_source"`
	Records          []JudgmentRecord          `json:"detailed_analysis" yaml:"detailed_analysis"`
	SpeakerSummaries map[string]SpeakerSummary `json:"speaker_summary" yaml:"speaker_summary"`
}
