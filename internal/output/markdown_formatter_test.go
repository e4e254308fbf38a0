package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/rpgo/portfolio-simulator/internal/domain"
)

// markdownOutline returns the level-2 headings and the number of list items of a document.
func markdownOutline(t *testing.T, source []byte) ([]string, int) {
	t.Helper()
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var headings []string
	items := 0
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level != 2 {
				return ast.WalkContinue, nil
			}
			var title bytes.Buffer
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					title.Write(txt.Segment.Value(source))
				}
			}
			headings = append(headings, title.String())
		case *ast.ListItem:
			items++
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return headings, items
}

func TestMarkdownFormatter(t *testing.T) {
	report := NewReport(buildTestResult(), 0)
	out, err := MarkdownFormatter{}.Format(report)
	require.NoError(t, err)

	headings, items := markdownOutline(t, out)
	assert.Equal(t, []string{
		"Assumptions",
		"Ending Portfolio Value (Year 2)",
		"Net Present Value (Year 2)",
		"Outcome",
		"Year-by-Year Interquartile Range",
	}, headings)
	assert.Equal(t, len(report.Assumptions), items)
	assert.Contains(t, string(out), "| Median | $1,200.00 |")
	assert.Contains(t, string(out), "| 2 | $1,100.00 | $1,200.00 | $1,320.50 |")
}

func TestMarkdownFormatter_Warnings(t *testing.T) {
	result := buildTestResult()
	result.Warnings = []domain.PathWarning{{Simulation: 2, Year: 1, Reason: "portfolio value is NaN"}}
	report := NewReport(result, 0)
	out, err := MarkdownFormatter{}.Format(report)
	require.NoError(t, err)

	headings, items := markdownOutline(t, out)
	assert.Equal(t, "Warnings", headings[len(headings)-1])
	assert.Equal(t, len(report.Assumptions)+1, items)
}
