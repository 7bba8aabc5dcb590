package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags
	textPolicy = bluemonday.UGCPolicy()
)

// MarkdownToText renders command output written in markdown as plain
// terminal text.
func MarkdownToText(md []byte) (string, error) {
	if len(strings.TrimSpace(string(md))) == 0 {
		return "", nil
	}

	// 1. Render HTML
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	// 2. Sanitize tags
	sanitized := textPolicy.SanitizeBytes(unsafeHTML)

	// 3. Flatten to text
	text, err := html2text.FromString(string(sanitized), html2text.Options{
		OmitLinks:    true,
		PrettyTables: true,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\n") + "\n", nil
}
