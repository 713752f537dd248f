package render

import (
	"fmt"
	"io"

	"github.com/aster-ui/aster/pkg/vdom"
)

// PageData describes one full HTML document.
type PageData struct {
	// Title is the document title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// SessionID is exposed to the client script so the live channel can
	// resume this session.
	SessionID string

	// Body is the server-rendered component tree.
	Body *vdom.VNode

	// ScriptPath is the client script URL. Empty disables the live channel
	// (static rendering).
	ScriptPath string

	// Head is appended verbatim inside <head>. Trusted content only.
	Head string
}

// RenderPage writes a complete HTML document around the rendered body.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<meta charset="utf-8">`+"\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	if page.SessionID != "" {
		if _, err := fmt.Fprintf(w, `<meta name="aster-session" content="%s">`+"\n", escapeAttr(page.SessionID)); err != nil {
			return err
		}
	}
	if page.Head != "" {
		if _, err := io.WriteString(w, page.Head+"\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
		return err
	}

	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}

	if page.ScriptPath != "" {
		if _, err := fmt.Fprintf(w, "\n<script src=\"%s\" defer></script>", escapeAttr(page.ScriptPath)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}
