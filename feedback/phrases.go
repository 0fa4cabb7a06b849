package feedback

import "github.com/AnmolTwari/Ai-Debate-Analyzer/debate"

// Phrases within one pool are interchangeable; the picker chooses among them.
//
//nolint:gochecknoglobals // phrase tables, effectively const
var (
	grammarPhrases = map[GrammarTier][]string{
		GrammarClean: {
			"The sentence is grammatically clean.",
			"Grammar here is spotless.",
			"No grammar issues stand out.",
			"The wording is correct and well formed.",
		},
		GrammarMinor: {
			"There are a couple of small grammar slips.",
			"Grammar is mostly fine, with minor errors.",
			"A light proofread would tidy up the grammar.",
			"Only minor grammatical issues appear.",
		},
		GrammarMany: {
			"Several grammar mistakes make this harder to follow.",
			"The grammar needs noticeable work.",
			"Frequent grammatical errors weaken the delivery.",
			"Many grammar issues distract from the point.",
		},
	}

	relevancePhrases = map[RelevanceTier][]string{
		RelevanceHigh: {
			"The point is squarely on topic.",
			"This stays closely tied to the debate topic.",
			"Highly relevant to the discussion.",
			"It addresses the core of the topic directly.",
		},
		RelevanceModerate: {
			"The point is somewhat related to the topic.",
			"It connects to the topic, though not tightly.",
			"Moderately relevant, with room to sharpen the focus.",
			"Partly on topic.",
		},
		RelevanceLow: {
			"The point drifts away from the topic.",
			"This seems only loosely connected to the debate.",
			"Relevance to the topic is weak.",
			"It strays from the subject under discussion.",
		},
	}

	sentimentPhrases = map[string][]string{
		debate.SentimentPositive: {
			"The tone is positive and constructive.",
			"An upbeat, affirming stance comes through.",
			"The speaker sounds supportive.",
			"There is an optimistic note to it.",
		},
		debate.SentimentNegative: {
			"The tone is critical.",
			"A negative stance comes through clearly.",
			"The speaker sounds skeptical or opposed.",
			"There is a pessimistic edge to it.",
		},
		debate.SentimentNeutral: {
			"The tone is neutral and measured.",
			"The delivery stays even-handed.",
			"No strong sentiment either way.",
			"The speaker keeps a balanced tone.",
		},
	}

	emotionPhrases = map[EmotionTier][]string{
		EmotionTense: {
			"Some frustration is audible.",
			"The remark carries noticeable tension.",
			"Emotions run a little hot here.",
		},
		EmotionExpressive: {
			"The delivery is lively and expressive.",
			"There is visible energy behind the words.",
			"The speaker sounds animated.",
		},
		EmotionSubdued: {
			"The mood is somewhat subdued.",
			"A note of disappointment comes through.",
			"The delivery sounds downcast.",
		},
		EmotionSteady: {
			"Emotionally the delivery is steady.",
			"The speaker stays composed.",
			"The emotional register is calm.",
		},
	}

	upliftingComboPhrases = []string{
		"A strong, on-topic and encouraging contribution.",
		"Relevant and positive, which moves the debate forward.",
		"Well aimed and constructive; keep it up.",
	}

	disconnectedComboPhrases = []string{
		"Negative and off topic, so the point may not land.",
		"The criticism seems disconnected from the debate.",
		"Try tying objections back to the topic.",
	}

	flawlessPhrases = []string{
		"Grammar was flawless throughout.",
		"Every contribution was grammatically clean.",
		"Consistently correct grammar across the debate.",
	}

	someErrorsPhrases = []string{
		"Grammar had some errors worth reviewing.",
		"A few grammar issues showed up across contributions.",
		"Grammar could be tightened in places.",
	}

	speakerRelevancePhrases = map[RelevanceTier][]string{
		RelevanceHigh: {
			"Arguments stayed highly relevant to the topic.",
			"Consistently focused on the debate topic.",
			"Stayed on point from start to finish.",
		},
		RelevanceModerate: {
			"Arguments were moderately relevant overall.",
			"Generally related to the topic, with some drift.",
			"Reasonably focused, though not always on point.",
		},
		RelevanceLow: {
			"Arguments often strayed from the topic.",
			"Relevance to the topic was low overall.",
			"Contributions tended to wander off the subject.",
		},
	}
)

func pick(p Picker, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	i := p.IntN(len(pool))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return pool[i]
}
