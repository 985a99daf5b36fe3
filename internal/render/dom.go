package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// findIn searches a list of sibling roots, such as a cloned template row.
func findIn(roots []*html.Node, match func(*html.Node) bool) *html.Node {
	for _, r := range roots {
		if found := findFirst(r, match); found != nil {
			return found
		}
	}
	return nil
}

func byID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return n.Type == html.ElementNode && ok && v == id
	}
}

// byData matches elements carrying a data-<name> attribute.
func byData(name string) func(*html.Node) bool {
	key := "data-" + name
	return func(n *html.Node) bool {
		_, ok := attr(n, key)
		return n.Type == html.ElementNode && ok
	}
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, class)
	}
}

func byAtom(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

func hasClass(n *html.Node, class string) bool {
	v, _ := attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func removeClass(n *html.Node, class string) {
	v, ok := attr(n, "class")
	if !ok {
		return
	}
	var kept []string
	for _, c := range strings.Fields(v) {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		removeAttr(n, "class")
		return
	}
	setAttr(n, "class", strings.Join(kept, " "))
}

// setText replaces every child of n with a single text node.
func setText(n *html.Node, text string) {
	removeChildren(n, nil)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// removeChildren detaches the children of n, except keep.
func removeChildren(n *html.Node, keep *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c != keep {
			n.RemoveChild(c)
		}
		c = next
	}
}

// cloneTree deep-copies n. The copy has no parent or siblings.
func cloneTree(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneTree(child))
	}
	return c
}

// cloneContent copies the children of a <template> element.
func cloneContent(tmpl *html.Node) []*html.Node {
	var out []*html.Node
	for c := tmpl.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, cloneTree(c))
	}
	return out
}
