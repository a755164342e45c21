package partials

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/nfrund/lessonhub/internal/view"
)

// Alerts renders pending alerts as a stack of notices. It renders nothing
// when there are none.
func Alerts(data view.FlashData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.Empty() {
			return nil
		}

		var b strings.Builder
		b.WriteString(`<div id="alerts" class="alerts" role="alert">`)
		for _, a := range data.Alerts {
			b.WriteString(`<div class="alert alert-`)
			b.WriteString(templ.EscapeString(string(a.Kind)))
			b.WriteString(`"><strong>`)
			b.WriteString(templ.EscapeString(a.Title))
			b.WriteString(`</strong>`)
			if a.Message != "" {
				b.WriteString(`<p>`)
				b.WriteString(templ.EscapeString(a.Message))
				b.WriteString(`</p>`)
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
