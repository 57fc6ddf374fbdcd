// Package parser turns rendered HTML into plain text for summarization.
package parser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Page holds the textual content extracted from a single web page.
type Page struct {
	URL   string
	Title string
	Text  string
}

type Parser struct{}

// ExtractText produces the page's visible text. go-readability isolates
// the main article first; when it finds nothing usable the whole document
// is stripped of tags instead, so pages without article structure
// (search results, dashboards) still yield their text.
func (p *Parser) ExtractText(rawURL, html string) (*Page, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL %q: %w", rawURL, err)
	}

	page := &Page{URL: rawURL}

	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(html), parsedURL)
	if err == nil {
		page.Title = strings.TrimSpace(article.Title)
		page.Text = strings.TrimSpace(article.TextContent)
	}

	if page.Text == "" {
		text, title, err := stripTags(html)
		if err != nil {
			return nil, err
		}
		page.Text = text
		if page.Title == "" {
			page.Title = title
		}
	}

	return page, nil
}

// stripTags removes markup from the full document and joins the remaining
// text nodes with spaces.
func stripTags(html string) (text, title string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())

	// Script, style and template contents are not visible text.
	doc.Find("script, style, noscript, template").Remove()

	var sb strings.Builder
	doc.Find("body *").Each(func(i int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return // only leaf nodes; parents would duplicate text
		}
		if t := strings.TrimSpace(s.Text()); t != "" {
			sb.WriteString(t)
			sb.WriteString(" ")
		}
	})

	text = strings.TrimSpace(sb.String())
	if text == "" {
		// No body markup at all; fall back to every text node.
		text = strings.TrimSpace(doc.Text())
	}
	return text, title, nil
}
