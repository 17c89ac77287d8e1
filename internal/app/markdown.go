package app

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"
)

// Glamour drives the article reading view and the note preview. Renderers
// are cached per width and theme so resizes and theme toggles reuse them.

// maxProseWidth caps the text measure on wide terminals; article paragraphs
// at full width are hard to read.
const maxProseWidth = 88

var (
	rendererMu       sync.Mutex
	renderersByStyle = map[markdownRendererKey]*glamour.TermRenderer{}
	markdownDarkMode = true
)

func renderMarkdown(input string, width int) string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	if width > maxProseWidth {
		width = maxProseWidth
	}
	r := getRenderer(width, markdownBackgroundDark())
	if r == nil {
		return input
	}
	out, err := r.Render(input)
	if err != nil {
		return input
	}
	out = strings.TrimRight(out, "\n")
	out = xansi.Hardwrap(out, width, true)
	return strings.TrimRight(out, "\n")
}

type markdownRendererKey struct {
	width int
	dark  bool
}

func markdownBackgroundDark() bool {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	return markdownDarkMode
}

func setMarkdownBackgroundDark(dark bool) bool {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	changed := markdownDarkMode != dark
	markdownDarkMode = dark
	return changed
}

func getRenderer(width int, dark bool) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	key := markdownRendererKey{width: width, dark: dark}
	if renderer, ok := renderersByStyle[key]; ok && renderer != nil {
		return renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(readerStyleConfig(dark)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderersByStyle[key] = r
	return r
}

func readerStyleConfig(dark bool) glamouransi.StyleConfig {
	base := styles.LightStyleConfig
	if dark {
		base = styles.DarkStyleConfig
	}
	// The viewport frame provides the spacing; Glamour's own document
	// margin and prefix newlines would double it.
	base.Document.StylePrimitive.BlockPrefix = ""
	base.Document.StylePrimitive.BlockSuffix = ""
	zero := uint(0)
	base.Document.Margin = &zero

	// Headings and links use the same palette as the surrounding chrome.
	heading := "63"
	base.H1.StylePrimitive.Color = &heading
	base.H2.StylePrimitive.Color = &heading
	link := "69"
	underline := true
	base.Link.Color = &link
	base.Link.Underline = &underline

	faint := true
	quote := "245"
	base.BlockQuote.StylePrimitive.Faint = &faint
	base.BlockQuote.StylePrimitive.Color = &quote
	return base
}
