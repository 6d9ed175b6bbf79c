package jira

import (
	"fmt"
	"strings"
)

// ADF node type tags this transcoder recognises. Anything else is
// treated as an unknown container and recursed into, so new node kinds
// degrade to their text content instead of failing.
const (
	adfDoc       = "doc"
	adfParagraph = "paragraph"
	adfText      = "text"
	adfHardBreak = "hardBreak"
)

// ADFVersion is the document version tag emitted on synthesised trees.
const ADFVersion = 1

// silentADFTypes never contribute text.
var silentADFTypes = map[string]bool{
	"media":       true,
	"mediaGroup":  true,
	"mediaSingle": true,
	"emoji":       true,
}

// ADFNode is one node of an Atlassian Document Format tree. Only doc
// nodes carry a version; only text nodes carry a payload. Marks are
// inline formatting (strong, link, ...) and pass through untouched so
// a valid document survives a round trip without losing formatting.
type ADFNode struct {
	Type    string         `json:"type"`
	Version int            `json:"version,omitempty"`
	Text    string         `json:"text,omitempty"`
	Content []ADFNode      `json:"content,omitempty"`
	Marks   []any          `json:"marks,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
}

// ADFToText flattens a rich-text value to plain text. It accepts the
// decoded JSON forms the API hands back: a map (document or node), an
// array of nodes (treated as children of an implicit doc), an *ADFNode,
// a plain string (passed through), or nil (empty string). Output is
// whitespace-normalised: fragments joined by single spaces, runs
// collapsed, ends trimmed. The normalisation is idempotent.
func ADFToText(v any) string {
	switch node := v.(type) {
	case nil:
		return ""
	case string:
		return collapseWhitespace(node)
	case []any:
		parts := make([]string, 0, len(node))
		for _, child := range node {
			parts = append(parts, extractText(child))
		}
		return collapseWhitespace(strings.Join(parts, " "))
	case []ADFNode:
		parts := make([]string, 0, len(node))
		for _, child := range node {
			parts = append(parts, extractNodeText(child))
		}
		return collapseWhitespace(strings.Join(parts, " "))
	case *ADFNode:
		if node == nil {
			return ""
		}
		return collapseWhitespace(extractNodeText(*node))
	case ADFNode:
		return collapseWhitespace(extractNodeText(node))
	default:
		return collapseWhitespace(extractText(v))
	}
}

// extractText is the fold over a decoded JSON value.
func extractText(v any) string {
	switch node := v.(type) {
	case string:
		return node
	case []any:
		parts := make([]string, 0, len(node))
		for _, child := range node {
			parts = append(parts, extractText(child))
		}
		return strings.Join(parts, " ")
	case map[string]any:
		typ, _ := node["type"].(string)
		switch {
		case typ == adfText:
			text, _ := node["text"].(string)
			return text
		case typ == adfHardBreak:
			return " "
		case silentADFTypes[typ]:
			return ""
		default:
			// Containers and unknown kinds alike: recurse into children.
			return extractText(node["content"])
		}
	default:
		return ""
	}
}

// extractNodeText is the same fold over a typed tree.
func extractNodeText(n ADFNode) string {
	switch {
	case n.Type == adfText:
		return n.Text
	case n.Type == adfHardBreak:
		return " "
	case silentADFTypes[n.Type]:
		return ""
	default:
		parts := make([]string, 0, len(n.Content))
		for _, child := range n.Content {
			parts = append(parts, extractNodeText(child))
		}
		return strings.Join(parts, " ")
	}
}

// collapseWhitespace reduces every whitespace run to a single space and
// trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TextToADF wraps plain text in a minimal document: a doc root holding
// a single paragraph holding a single text node.
func TextToADF(text string) *ADFNode {
	return &ADFNode{
		Type:    adfDoc,
		Version: ADFVersion,
		Content: []ADFNode{
			{
				Type: adfParagraph,
				Content: []ADFNode{
					{Type: adfText, Text: text},
				},
			},
		},
	}
}

// EnsureADF coerces an arbitrary value into a valid document tree. An
// already-valid document passes through unchanged; anything else is
// string-coerced and wrapped via TextToADF. It never fails.
func EnsureADF(v any) *ADFNode {
	switch doc := v.(type) {
	case *ADFNode:
		if doc != nil && doc.Type == adfDoc {
			return doc
		}
	case ADFNode:
		if doc.Type == adfDoc {
			return &doc
		}
	case map[string]any:
		if typ, _ := doc["type"].(string); typ == adfDoc {
			if node, ok := decodeADFMap(doc); ok {
				return node
			}
		}
	case string:
		return TextToADF(doc)
	case nil:
		return TextToADF("")
	}
	return TextToADF(coerceString(v))
}

// decodeADFMap converts a decoded JSON document into a typed tree.
// Returns false if the structure is not a well-formed document.
func decodeADFMap(m map[string]any) (*ADFNode, bool) {
	node := &ADFNode{}
	node.Type, _ = m["type"].(string)
	if v, ok := m["version"].(float64); ok {
		node.Version = int(v)
	}
	node.Text, _ = m["text"].(string)
	if marks, ok := m["marks"].([]any); ok {
		node.Marks = marks
	}
	if attrs, ok := m["attrs"].(map[string]any); ok {
		node.Attrs = attrs
	}
	if raw, ok := m["content"]; ok {
		children, ok := raw.([]any)
		if !ok {
			return nil, false
		}
		node.Content = make([]ADFNode, 0, len(children))
		for _, rawChild := range children {
			childMap, ok := rawChild.(map[string]any)
			if !ok {
				return nil, false
			}
			child, ok := decodeADFMap(childMap)
			if !ok {
				return nil, false
			}
			node.Content = append(node.Content, *child)
		}
	}
	if node.Type == "" {
		return nil, false
	}
	return node, true
}

// coerceString renders a non-document value as text for the fallback
// wrapping path.
func coerceString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	// Flattening recovers whatever text the malformed tree held.
	if text := ADFToText(v); text != "" {
		return text
	}
	return fmt.Sprintf("%v", v)
}
