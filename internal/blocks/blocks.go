// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package blocks converts blueprint content into the block tree the
// canvas editor consumes. Narrative sections are parsed as markdown so
// headings, lists, tables and inline emphasis survive the conversion
// instead of collapsing into flat paragraphs.
package blocks

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// Inline is a styled text run inside a block.
type Inline struct {
	Type   string          `json:"type"`
	Text   string          `json:"text"`
	Styles map[string]bool `json:"styles"`
}

// Block is one node of the editor's document tree.
type Block struct {
	Type    string         `json:"type"`
	Props   map[string]any `json:"props,omitempty"`
	Content []Inline       `json:"content"`
	// Rows is set only for table blocks.
	Rows [][]Inline `json:"rows,omitempty"`
}

// FromBlueprint lays the blueprint out as a canvas document: title,
// hook, numbered insights, then the remaining narrative sections.
func FromBlueprint(title string, narrative types.Narrative, insights []types.Insight) []Block {
	doc := []Block{heading(1, title), blank()}

	if narrative.Hook != "" {
		doc = append(doc, heading(2, "The Hook"))
		doc = append(doc, FromMarkdown(narrative.Hook)...)
		doc = append(doc, blank())
	}
	if len(insights) > 0 {
		doc = append(doc, heading(2, "Key Insights"))
		for _, in := range insights {
			doc = append(doc, Block{Type: "numberedListItem", Content: text(in.Text)})
		}
		doc = append(doc, blank())
	}
	if narrative.Introduction != "" {
		doc = append(doc, heading(2, "Introduction"))
		doc = append(doc, FromMarkdown(narrative.Introduction)...)
		doc = append(doc, blank())
	}
	if narrative.DeepDive != "" {
		doc = append(doc, heading(2, "The Deep Dive"))
		doc = append(doc, FromMarkdown(narrative.DeepDive)...)
		doc = append(doc, blank())
	}
	if narrative.Conclusion != "" {
		doc = append(doc, heading(2, "Conclusion & Takeaways"))
		doc = append(doc, FromMarkdown(narrative.Conclusion)...)
	}
	return doc
}

// FromMarkdown parses markdown text into top-level blocks.
func FromMarkdown(md string) []Block {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(md))

	var out []Block
	for _, node := range doc.GetChildren() {
		out = append(out, convertNode(node)...)
	}
	return out
}

func convertNode(node ast.Node) []Block {
	switch n := node.(type) {
	case *ast.Heading:
		return []Block{{
			Type:    "heading",
			Props:   map[string]any{"level": n.Level},
			Content: inlines(n, nil),
		}}
	case *ast.Paragraph:
		content := inlines(n, nil)
		if len(content) == 0 {
			return nil
		}
		return []Block{{Type: "paragraph", Content: content}}
	case *ast.List:
		itemType := "bulletListItem"
		if n.ListFlags&ast.ListTypeOrdered != 0 {
			itemType = "numberedListItem"
		}
		var items []Block
		for _, child := range n.GetChildren() {
			items = append(items, Block{Type: itemType, Content: inlines(child, nil)})
		}
		return items
	case *ast.Table:
		return []Block{convertTable(n)}
	case *ast.BlockQuote, *ast.CodeBlock:
		// The editor has no dedicated block for these; flatten to a
		// paragraph so the text is not lost.
		content := inlines(node, nil)
		if cb, ok := node.(*ast.CodeBlock); ok {
			content = []Inline{{Type: "text", Text: strings.TrimRight(string(cb.Literal), "\n"),
				Styles: map[string]bool{"code": true}}}
		}
		if len(content) == 0 {
			return nil
		}
		return []Block{{Type: "paragraph", Content: content}}
	default:
		return nil
	}
}

func convertTable(table *ast.Table) Block {
	var rows [][]Inline
	ast.WalkFunc(table, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if row, ok := node.(*ast.TableRow); ok {
			var cells []Inline
			for _, cell := range row.GetChildren() {
				run := inlines(cell, nil)
				if len(run) == 0 {
					run = text("")
				}
				cells = append(cells, run...)
			}
			rows = append(rows, cells)
			return ast.SkipChildren
		}
		return ast.GoToNext
	})
	return Block{Type: "table", Rows: rows}
}

// inlines flattens a node's inline children into styled text runs,
// merging the style set accumulated on the way down.
func inlines(node ast.Node, active map[string]bool) []Inline {
	var out []Inline
	for _, child := range node.GetChildren() {
		switch n := child.(type) {
		case *ast.Text:
			t := string(n.Literal)
			if t == "" {
				continue
			}
			out = append(out, Inline{Type: "text", Text: t, Styles: copyStyles(active)})
		case *ast.Code:
			out = append(out, Inline{Type: "text", Text: string(n.Literal),
				Styles: withStyle(active, "code")})
		case *ast.Strong:
			out = append(out, inlines(n, withStyle(active, "bold"))...)
		case *ast.Emph:
			out = append(out, inlines(n, withStyle(active, "italic"))...)
		case *ast.Link:
			out = append(out, inlines(n, active)...)
		default:
			out = append(out, inlines(n, active)...)
		}
	}
	return out
}

func withStyle(active map[string]bool, style string) map[string]bool {
	styles := copyStyles(active)
	styles[style] = true
	return styles
}

func copyStyles(active map[string]bool) map[string]bool {
	styles := make(map[string]bool, len(active))
	for k, v := range active {
		styles[k] = v
	}
	return styles
}

func heading(level int, txt string) Block {
	return Block{Type: "heading", Props: map[string]any{"level": level}, Content: text(txt)}
}

func blank() Block {
	return Block{Type: "paragraph", Content: []Inline{}}
}

func text(txt string) []Inline {
	return []Inline{{Type: "text", Text: txt, Styles: map[string]bool{}}}
}
