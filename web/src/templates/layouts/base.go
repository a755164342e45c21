package layouts

import (
	"context"

	"github.com/nfrund/lessonhub/internal/view"
	"github.com/nfrund/lessonhub/web/src/templates/partials"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the document shell and shows pending alerts above it.
func Base(ctx context.Context, title string, flashes view.FlashData, content g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.StyleEl(g.Raw(stylesheet)),
			h.Script(h.Src(htmxSrc), h.Defer()),
		},
		Body: []g.Node{
			view.TemplToGomponent(ctx, partials.Alerts(flashes)),
			h.Main(content),
		},
	})
}

const stylesheet = `
body { margin: 0; font-family: system-ui, sans-serif; background: #E9C46A; color: #000; }
main { max-width: 420px; margin: 0 auto; padding: 40px 20px; }
h1 { font-size: 24px; text-align: center; margin-bottom: 10px; }
.subtitle { font-size: 14px; text-align: center; color: #666; margin-bottom: 30px; }
.input { display: block; width: 100%; box-sizing: border-box; border: 1px solid #ccc; padding: 12px; border-radius: 5px; background: #fff; margin-bottom: 15px; }
.primary { display: block; width: 100%; background: #F0C987; padding: 15px; border: 0; border-radius: 5px; font-size: 16px; font-weight: bold; cursor: pointer; margin-bottom: 20px; }
.social { display: flex; justify-content: space-around; margin-bottom: 20px; }
.social form, .social a { width: 45%; }
.social button, .social a { display: block; width: 100%; box-sizing: border-box; background: #fff; padding: 10px 15px; border: 0; border-radius: 5px; text-align: center; color: #000; text-decoration: none; font-size: 14px; cursor: pointer; }
.divider { display: flex; align-items: center; margin: 20px 0; color: #666; font-size: 14px; }
.divider::before, .divider::after { content: ""; flex: 1; height: 1px; background: #666; margin: 0 10px; }
.forgot { display: block; text-align: right; color: #666; margin-bottom: 20px; }
.footer-link { text-align: center; font-size: 14px; }
.footer-link a { color: #FF6D00; font-weight: bold; text-decoration: none; }
.overlay { position: fixed; inset: 0; background: rgba(0,0,0,0.5); display: flex; align-items: flex-end; }
.sheet { width: 100%; background: #E9C46A; padding: 20px; border-radius: 20px 20px 0 0; text-align: center; }
.sheet .input { background: #D3D3D3; border-radius: 10px; padding: 15px; }
.link-button { background: none; border: 0; color: #666; cursor: pointer; }
.modules { display: flex; flex-wrap: wrap; justify-content: space-around; margin-bottom: 30px; }
.module { width: 48%; background: #4A90E2; color: #fff; padding: 15px 0; border: 0; border-radius: 10px; margin-bottom: 20px; font-size: 14px; }
.next { width: 60%; margin: 0 auto; }
.alerts { max-width: 420px; margin: 20px auto 0; padding: 0 20px; }
.alert { background: #fff; border-radius: 8px; padding: 12px 16px; margin-bottom: 10px; border-left: 6px solid #666; }
.alert p { margin: 6px 0 0; white-space: pre-line; }
.alert-success { border-color: #2a9d8f; }
.alert-error { border-color: #e76f51; }
.alert-info { border-color: #4A90E2; }
`
