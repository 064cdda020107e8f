package render

import (
	"bytes"
	stdhtml "html"
	"strings"

	"github.com/russross/blackfriday"
	"golang.org/x/net/html"
)

// Tags Telegram accepts in HTML parse mode.
var allowedTags = map[string]bool{
	"b": true, "strong": true,
	"i": true, "em": true,
	"u": true, "ins": true,
	"s": true, "strike": true, "del": true,
	"code": true, "pre": true,
	"blockquote": true,
}

// ToHTML renders markdown into the HTML subset Telegram accepts.
// Block elements Telegram does not know are flattened into plain text
// with newlines.
func ToHTML(markdown string) string {
	rendered := blackfriday.MarkdownCommon([]byte(markdown))
	return sanitize(rendered)
}

func sanitize(in []byte) string {
	z := html.NewTokenizer(bytes.NewReader(in))
	var sb strings.Builder

	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())

		case html.TextToken:
			sb.WriteString(stdhtml.EscapeString(z.Token().Data))

		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			switch {
			case allowedTags[t.Data]:
				sb.WriteString("<" + t.Data + ">")
			case t.Data == "a":
				for _, attr := range t.Attr {
					if attr.Key == "href" {
						sb.WriteString(`<a href="` + stdhtml.EscapeString(attr.Val) + `">`)
						break
					}
				}
			case t.Data == "br":
				sb.WriteString("\n")
			case t.Data == "li":
				sb.WriteString("• ")
			case isHeading(t.Data):
				sb.WriteString("<b>")
			}

		case html.EndTagToken:
			t := z.Token()
			switch {
			case allowedTags[t.Data]:
				sb.WriteString("</" + t.Data + ">")
			case t.Data == "a":
				sb.WriteString("</a>")
			case t.Data == "p", t.Data == "li", t.Data == "ul", t.Data == "ol":
				sb.WriteString("\n")
			case isHeading(t.Data):
				sb.WriteString("</b>\n")
			}
		}
	}
}

func isHeading(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'
}
