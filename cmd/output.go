//nolint:wrapcheck
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/farcloser/primordium/format"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
)

func outputReport(w io.Writer, reportPath string, rep *debate.Report, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}
	data := &format.Data{
		Object: reportPath,
		Meta:   buildFriendlyOutput(rep),
	}
	return formatter.PrintAll([]*format.Data{data}, w)
}

// buildFriendlyOutput condenses a report into the summary shown after analyze.
func buildFriendlyOutput(rep *debate.Report) map[string]any {
	meta := map[string]any{
		"summary":      rep.Summary,
		"total_words":  rep.TotalWords,
		"topic_source": string(rep.TopicSource),
		"timestamp":    rep.Timestamp.Format("2006-01-02 15:04:05 MST"),
	}

	if len(rep.Speakers) > 0 {
		speakers := make(map[string]any, len(rep.Speakers))
		for _, sp := range rep.Speakers {
			speakers[sp] = rep.SpeakerSummaries[sp].Commentary
		}
		meta["speakers"] = speakers
	}

	if len(rep.Records) > 0 {
		lines := make([]any, 0, len(rep.Records))
		for _, r := range rep.Records {
			lines = append(lines, fmt.Sprintf("#%d %s [%s/%s, relevance %.3f, %d grammar issues] %s",
				r.Position, r.Speaker, r.Sentiment.Label, r.Emotion.Label, r.Relevance, r.Grammar.ErrorCount, r.Judgment))
		}
		meta["utterances"] = lines
	}
	return meta
}

//nolint:gochecknoglobals // styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
	speakerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

func sentimentColor(label string) lipgloss.Color {
	switch label {
	case debate.SentimentPositive:
		return lipgloss.Color("42")
	case debate.SentimentNegative:
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("250")
	}
}

// renderPretty draws the report as styled terminal blocks.
func renderPretty(rep *debate.Report, reportPath string) string {
	var b strings.Builder
	for _, r := range rep.Records {
		tag := lipgloss.NewStyle().Foreground(sentimentColor(r.Sentiment.Label)).Render(r.Sentiment.Label)
		fmt.Fprintf(&b, "%s %s %s\n  %s\n",
			speakerStyle.Render(r.Speaker), tag,
			mutedStyle.Render(fmt.Sprintf("(%s, relevance %.3f)", r.Emotion.Label, r.Relevance)),
			r.Judgment)
	}

	var sums []string
	for _, sp := range rep.Speakers {
		sums = append(sums, speakerStyle.Render(sp)+": "+rep.SpeakerSummaries[sp].Commentary)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(rep.Summary),
		mutedStyle.Render(fmt.Sprintf("%d words, topic from %s, saved to %s", rep.TotalWords, rep.TopicSource, reportPath)),
		"",
		strings.TrimRight(b.String(), "\n"),
		"",
		boxStyle.Render(strings.Join(sums, "\n")),
	)
}
