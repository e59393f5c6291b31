package report

import (
	"bytes"
	"fmt"
	"html"
	"time"

	"github.com/lysyi3m/reddit-pulse/app/analytics"
	"github.com/lysyi3m/reddit-pulse/app/cfg"
	"github.com/lysyi3m/reddit-pulse/app/sentiment"
)

// Placeholder rendered for values that have no meaning yet, e.g.
// averages over an empty store.
const absentValue = "n/a"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run renders a snapshot as a self-contained HTML document. Rendering
// is pure: the same snapshot always yields the same document.
func (g *Generator) Run(snapshot *analytics.Snapshot) string {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n")
	buf.WriteString(`<html lang="en">` + "\n<head>\n")
	buf.WriteString(`  <meta charset="utf-8">` + "\n")
	g.writeElement(&buf, "title", "Reddit Pulse Report", 2)
	buf.WriteString("  <style>\n")
	buf.WriteString("    body { font-family: sans-serif; margin: 2em; }\n")
	buf.WriteString("    table { border-collapse: collapse; }\n")
	buf.WriteString("    th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }\n")
	buf.WriteString("  </style>\n</head>\n<body>\n")

	g.writeElement(&buf, "h1", "Reddit Pulse Report", 2)
	generated := fmt.Sprintf("Generated at %s by reddit-pulse/%s",
		snapshot.GeneratedAt.UTC().Format(time.RFC3339), cfg.GetVersion())
	g.writeElement(&buf, "p", generated, 2)

	g.writeOverall(&buf, snapshot)
	g.writeSentiment(&buf, snapshot)
	g.writeTopPosts(&buf, snapshot)

	buf.WriteString("</body>\n</html>\n")

	return buf.String()
}

func (g *Generator) writeOverall(buf *bytes.Buffer, snapshot *analytics.Snapshot) {
	g.writeElement(buf, "h2", "Overall Stats", 2)
	buf.WriteString("  <ul>\n")
	g.writeElement(buf, "li", fmt.Sprintf("Total posts: %d", snapshot.Overall.TotalPosts), 4)
	g.writeElement(buf, "li", "Average score: "+formatAvg(snapshot.Overall.AvgScore), 4)
	g.writeElement(buf, "li", "Average comment count: "+formatAvg(snapshot.Overall.AvgCommentCount), 4)
	buf.WriteString("  </ul>\n")
}

func (g *Generator) writeSentiment(buf *bytes.Buffer, snapshot *analytics.Snapshot) {
	g.writeElement(buf, "h2", "Sentiment", 2)

	positive := absentValue
	negative := absentValue
	if snapshot.Extremes != nil {
		positive = snapshot.Extremes.MostPositiveTitle
		negative = snapshot.Extremes.MostNegativeTitle
	}

	buf.WriteString("  <ul>\n")
	g.writeElement(buf, "li", "Most positive: "+positive, 4)
	g.writeElement(buf, "li", "Most negative: "+negative, 4)
	buf.WriteString("  </ul>\n")

	g.writeElement(buf, "h3", "Distribution", 2)
	buf.WriteString("  <ul>\n")
	for _, label := range []sentiment.Label{sentiment.LabelPositive, sentiment.LabelNeutral, sentiment.LabelNegative} {
		g.writeElement(buf, "li", fmt.Sprintf("%s: %d", label, snapshot.Distribution[label]), 4)
	}
	buf.WriteString("  </ul>\n")
}

func (g *Generator) writeTopPosts(buf *bytes.Buffer, snapshot *analytics.Snapshot) {
	g.writeElement(buf, "h2", "Top Posts", 2)

	if len(snapshot.TopPosts) == 0 {
		g.writeElement(buf, "p", "No posts stored yet.", 2)
		return
	}

	buf.WriteString("  <table>\n")
	buf.WriteString("    <tr><th>#</th><th>Title</th><th>Source</th><th>Score</th><th>Sentiment</th></tr>\n")
	for i, post := range snapshot.TopPosts {
		buf.WriteString(fmt.Sprintf("    <tr><td>%d</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>\n",
			i+1,
			html.EscapeString(post.Title),
			html.EscapeString(post.Source),
			post.Score,
			html.EscapeString(string(post.SentimentLabel))))
	}
	buf.WriteString("  </table>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	buf.WriteString(html.EscapeString(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}

func formatAvg(v *float64) string {
	if v == nil {
		return absentValue
	}
	return fmt.Sprintf("%.2f", *v)
}
