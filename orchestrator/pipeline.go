package orchestrator

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/feedback"
)

var errMissingProvider = errors.New("pipeline: all four capability providers are required")

type Pipeline struct {
	providers Providers
	log       logrus.FieldLogger
	newPicker func() feedback.Picker
	clock     func() time.Time
}

// Option customizes pipeline construction.
type Option func(*Pipeline)

func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// WithPicker sets the phrase picker factory. It is called once per run.
func WithPicker(f func() feedback.Picker) Option {
	return func(p *Pipeline) {
		if f != nil {
			p.newPicker = f
		}
	}
}

// WithSeed makes phrase selection reproducible; 0 keeps clock seeding.
func WithSeed(seed uint64) Option {
	return func(p *Pipeline) {
		p.newPicker = func() feedback.Picker { return feedback.NewRandomPicker(seed) }
	}
}

// WithClock allows tests to control the report timestamp.
func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) {
		if clock != nil {
			p.clock = clock
		}
	}
}

func NewPipeline(providers Providers, opts ...Option) *Pipeline {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	p := &Pipeline{
		providers: providers,
		log:       discard,
		newPicker: func() feedback.Picker { return feedback.NewRandomPicker(0) },
		clock:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Run analyzes one transcript in order and returns its report. Any provider failure aborts
// the run with a *debate.ProviderError; nothing partial is returned.
func (p *Pipeline) Run(ctx context.Context, utts []debate.Utterance, topic string) (*debate.Report, error) {
	pr := p.providers
	if pr.Sentiment == nil || pr.Emotion == nil || pr.Embedder == nil || pr.Grammar == nil {
		return nil, errMissingProvider
	}
	if err := validateUtterances(utts, topic); err != nil {
		return nil, err
	}

	scorer := NewRelevanceScorer(pr.Embedder)
	topicVec, src, err := scorer.ResolveTopicEmbedding(ctx, utts, topic)
	if err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{"topic_source": src, "utterances": len(utts)}).Debug("topic resolved")

	picker := p.newPicker()
	engine := feedback.NewEngine(picker)
	agg := feedback.NewAggregator(picker)

	records := make([]debate.JudgmentRecord, 0, len(utts))
	for i, u := range utts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		u.Position = i
		sig, err := p.signals(ctx, scorer, u, topicVec)
		if err != nil {
			return nil, err
		}
		records = append(records, debate.JudgmentRecord{
			Utterance:    u,
			SignalBundle: sig,
			Judgment:     engine.Judge(sig),
		})
		agg.Record(u.Speaker, sig.Grammar.ErrorCount, sig.Relevance)
	}

	rep := AssembleReport(utts, records, agg.Summaries(), src, p.clock())
	p.log.WithFields(logrus.Fields{
		"speakers":  rep.TotalSpeakers,
		"sentences": rep.TotalSentences,
		"words":     rep.TotalWords,
	}).Info("transcript analyzed")
	return rep, nil
}

func (p *Pipeline) signals(ctx context.Context, scorer *RelevanceScorer, u debate.Utterance, topic []float64) (debate.SignalBundle, error) {
	fail := func(capability string, err error) error {
		return &debate.ProviderError{Position: u.Position, Speaker: u.Speaker, Capability: capability, Err: err}
	}
	log := p.log.WithFields(logrus.Fields{"position": u.Position, "speaker": u.Speaker})

	vec, err := p.providers.Embedder.Embed(ctx, u.Text)
	if err != nil {
		return debate.SignalBundle{}, fail(debate.CapEmbedding, err)
	}
	sentiment, err := p.providers.Sentiment.Classify(ctx, u.Text)
	if err != nil {
		return debate.SignalBundle{}, fail(debate.CapSentiment, err)
	}
	emotion, err := p.providers.Emotion.Classify(ctx, u.Text)
	if err != nil {
		return debate.SignalBundle{}, fail(debate.CapEmotion, err)
	}
	relevance, err := scorer.Score(vec, topic)
	if err != nil {
		return debate.SignalBundle{}, fail(debate.CapEmbedding, err)
	}
	grammar, err := p.providers.Grammar.Check(ctx, u.Text)
	if err != nil {
		return debate.SignalBundle{}, fail(debate.CapGrammar, err)
	}
	if grammar.ErrorCount < 0 {
		grammar.ErrorCount = 0
	}

	if _, ok := feedback.SentimentTierOf(sentiment.Label); !ok {
		log.WithField("label", sentiment.Label).Debug("unrecognized sentiment label, judged as neutral")
	}
	if _, ok := feedback.EmotionTierOf(emotion.Label); !ok {
		log.WithField("label", emotion.Label).Debug("unrecognized emotion label, judged as steady")
	}

	sentiment.Score = round3(sentiment.Score)
	emotion.Score = round3(emotion.Score)

	log.WithFields(logrus.Fields{
		"sentiment": sentiment.Label,
		"emotion":   emotion.Label,
		"relevance": relevance,
		"errors":    grammar.ErrorCount,
	}).Debug("utterance scored")

	return debate.SignalBundle{
		Sentiment: sentiment,
		Emotion:   emotion,
		Relevance: relevance,
		Grammar:   grammar,
	}, nil
}
