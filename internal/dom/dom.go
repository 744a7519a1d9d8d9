// Package dom wraps golang.org/x/net/html node trees with the small subset of
// browser DOM operations the storefront pages need: lookup by id and class,
// text content, attribute and class manipulation, deep clone and inner HTML.
package dom

import (
	"bytes"
	"io"
	"strings"

	"github.com/rohanthewiz/serr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse reads a complete HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, serr.Wrap(err, "failed to parse html document")
	}
	return &Document{root: root}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Empty returns a document with an empty body.
func Empty() *Document {
	doc, _ := ParseString("<!DOCTYPE html><html><head></head><body></body></html>")
	return doc
}

// ElementByID returns the first element whose id attribute equals id, or nil.
func (d *Document) ElementByID(id string) *Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return wrap(found)
}

// ElementsByClass returns every element carrying class, in document order.
func (d *Document) ElementsByClass(class string) []*Element {
	return byClass(d.root, class)
}

// Body returns the body element. Parsed documents always have one.
func (d *Document) Body() *Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			found = n
			return false
		}
		return true
	})
	return wrap(found)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return serr.Wrap(err, "failed to render html document")
	}
	return nil
}

func (d *Document) String() string {
	var buf bytes.Buffer
	_ = d.Render(&buf)
	return buf.String()
}

// Element is a single element node inside a Document.
type Element struct {
	n *html.Node
}

// NewElement creates a detached element with the given tag and class attribute.
func NewElement(tag, class string) *Element {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	e := &Element{n: n}
	if class != "" {
		e.SetAttr("class", class)
	}
	return e
}

func wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{n: n}
}

// Node exposes the underlying html node.
func (e *Element) Node() *html.Node { return e.n }

// Tag is the lowercase element name.
func (e *Element) Tag() string { return e.n.Data }

// Attr returns the attribute value, or "" when absent.
func (e *Element) Attr(key string) string { return attr(e.n, key) }

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(key string) bool {
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces an attribute.
func (e *Element) SetAttr(key, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == key {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: key, Val: value})
}

// ID returns the id attribute.
func (e *Element) ID() string { return e.Attr("id") }

// ClassName returns the raw class attribute.
func (e *Element) ClassName() string { return e.Attr("class") }

// SetClassName replaces the class attribute.
func (e *Element) SetClassName(class string) { e.SetAttr("class", class) }

// HasClass reports whether class is one of the element's classes.
func (e *Element) HasClass(class string) bool { return hasClass(e.n, class) }

// AddClass appends class when not already present.
func (e *Element) AddClass(class string) {
	if e.HasClass(class) {
		return
	}
	classes := strings.Fields(e.ClassName())
	e.SetClassName(strings.Join(append(classes, class), " "))
}

// RemoveClass drops every occurrence of class.
func (e *Element) RemoveClass(class string) {
	if !e.HasAttr("class") {
		return
	}
	classes := strings.Fields(e.ClassName())
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	e.SetClassName(strings.Join(kept, " "))
}

// QueryClass returns the first descendant carrying class, or nil.
func (e *Element) QueryClass(class string) *Element {
	var found *html.Node
	walkChildren(e.n, func(n *html.Node) bool {
		if n.Type == html.ElementNode && hasClass(n, class) {
			found = n
			return false
		}
		return true
	})
	return wrap(found)
}

// QueryClassAll returns every descendant carrying class.
func (e *Element) QueryClassAll(class string) []*Element {
	out := make([]*Element, 0)
	walkChildren(e.n, func(n *html.Node) bool {
		if n.Type == html.ElementNode && hasClass(n, class) {
			out = append(out, wrap(n))
		}
		return true
	})
	return out
}

// QueryTag returns the first descendant with the given tag name, or nil.
func (e *Element) QueryTag(tag string) *Element {
	var found *html.Node
	walkChildren(e.n, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			found = n
			return false
		}
		return true
	})
	return wrap(found)
}

// Children returns the element children in order.
func (e *Element) Children() []*Element {
	out := make([]*Element, 0)
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, wrap(c))
		}
	}
	return out
}

// TextContent concatenates all descendant text nodes.
func (e *Element) TextContent() string {
	var sb strings.Builder
	walkChildren(e.n, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		return true
	})
	return sb.String()
}

// SetTextContent replaces all children with a single text node.
func (e *Element) SetTextContent(text string) {
	e.Clear()
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Value returns the value attribute (form inputs).
func (e *Element) Value() string { return e.Attr("value") }

// SetValue sets the value attribute.
func (e *Element) SetValue(v string) { e.SetAttr("value", v) }

// Clone returns a detached deep copy of the element.
func (e *Element) Clone() *Element {
	return wrap(cloneNode(e.n))
}

// AppendChild moves child to the end of e's children.
func (e *Element) AppendChild(child *Element) {
	if child.n.Parent != nil {
		child.n.Parent.RemoveChild(child.n)
	}
	e.n.AppendChild(child.n)
}

// Clear removes every child node.
func (e *Element) Clear() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
}

// SetInnerHTML replaces the children with the parsed markup.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.contextNode())
	if err != nil {
		return serr.Wrap(err, "failed to parse html fragment")
	}
	e.Clear()
	for _, n := range nodes {
		e.n.AppendChild(n)
	}
	return nil
}

// InnerHTML renders the element's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// OuterHTML renders the element itself.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	_ = html.Render(&buf, e.n)
	return buf.String()
}

// contextNode is the parent used for fragment parsing. ParseFragment needs an
// element context, detached nodes fall back to a div.
func (e *Element) contextNode() *html.Node {
	if e.n.Type == html.ElementNode {
		return &html.Node{Type: html.ElementNode, Data: e.n.Data, DataAtom: e.n.DataAtom}
	}
	return &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
}

// ParseFragment parses markup into detached elements, dropping top level text.
func ParseFragment(markup string) ([]*Element, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, serr.Wrap(err, "failed to parse html fragment")
	}
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			out = append(out, wrap(n))
		}
	}
	return out, nil
}

func byClass(root *html.Node, class string) []*Element {
	out := make([]*Element, 0)
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && hasClass(n, class) {
			out = append(out, wrap(n))
		}
		return true
	})
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}

// walk visits n and its descendants depth first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	return walkChildren(n, visit)
}

func walkChildren(n *html.Node, visit func(*html.Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}
