package service

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// parseHTML reduces a page to plain text and collects absolute links whose
// anchor text or href contains one of the hints
func parseHTML(body []byte, base *url.URL, hints []string) (string, []string, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return "", nil, err
	}

	var text strings.Builder
	var links []string
	walk(doc, &text, &links, base, hints)
	return text.String(), links, nil
}

func walk(n *html.Node, text *strings.Builder, links *[]string, base *url.URL, hints []string) {
	switch n.Type {
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "head":
			return
		case "a":
			if link := hintedLink(n, base, hints); link != "" {
				*links = append(*links, link)
			}
		case "br", "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			text.WriteByte('\n')
		}
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			text.WriteString(t)
			text.WriteByte('\n')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, text, links, base, hints)
	}
}

// hintedLink resolves the anchor href against base when its text or href
// matches a hint; "" otherwise
func hintedLink(a *html.Node, base *url.URL, hints []string) string {
	var href string
	for _, attr := range a.Attr {
		if attr.Key == "href" {
			href = strings.TrimSpace(attr.Val)
			break
		}
	}
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") {
		return ""
	}

	anchor := strings.ToLower(anchorText(a))
	lowHref := strings.ToLower(href)
	matched := false
	for _, h := range hints {
		if strings.Contains(anchor, h) || strings.Contains(lowHref, h) {
			matched = true
			break
		}
	}
	if !matched {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	abs := base.ResolveReference(u)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return ""
	}
	abs.Fragment = ""
	return abs.String()
}

func anchorText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteByte(' ')
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			visit(k)
		}
	}
	visit(n)
	return strings.TrimSpace(b.String())
}
