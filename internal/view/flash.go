package view

import (
	"encoding/gob"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/lessonhub/internal/screens"
)

const (
	flashSessionName = "flash-session"
	flashKeyAlert    = "alert"
	formKeyPrefix    = "form_"
)

func init() {
	// Alerts travel through the cookie store's gob encoding.
	gob.Register(screens.Alert{})
}

// FlashData is everything a page needs to show pending alerts.
type FlashData struct {
	Alerts []screens.Alert
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool { return len(f.Alerts) == 0 }

func flashSession(c echo.Context) *sessions.Session {
	sess, err := session.Get(flashSessionName, c)
	if err != nil && sess == nil {
		return nil
	}
	return sess
}

// SetAlerts queues alerts for the next page render.
func SetAlerts(c echo.Context, alerts ...screens.Alert) {
	if len(alerts) == 0 {
		return
	}
	sess := flashSession(c)
	if sess == nil {
		return
	}
	for _, a := range alerts {
		sess.AddFlash(a, flashKeyAlert)
	}
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashError queues an error alert with only a title.
func SetFlashError(c echo.Context, message string) {
	SetAlerts(c, screens.Alert{Kind: screens.AlertError, Title: message})
}

// GetFlashData retrieves and clears pending alerts.
func GetFlashData(c echo.Context) FlashData {
	sess := flashSession(c)
	if sess == nil {
		return FlashData{}
	}

	var data FlashData
	flashes := sess.Flashes(flashKeyAlert)
	for _, f := range flashes {
		if a, ok := f.(screens.Alert); ok {
			data.Alerts = append(data.Alerts, a)
		}
	}
	if len(flashes) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

// SetFormPrefill keeps submitted field values (never passwords) for the next
// render of the same form.
func SetFormPrefill(c echo.Context, values map[string]string) {
	sess := flashSession(c)
	if sess == nil {
		return
	}
	for name, v := range values {
		if v != "" {
			sess.AddFlash(v, formKeyPrefix+name)
		}
	}
	_ = sess.Save(c.Request(), c.Response())
}

// GetFormPrefill consumes the prefilled values for the named fields.
func GetFormPrefill(c echo.Context, names ...string) map[string]string {
	out := make(map[string]string, len(names))
	sess := flashSession(c)
	if sess == nil {
		return out
	}

	consumed := false
	for _, name := range names {
		flashes := sess.Flashes(formKeyPrefix + name)
		if len(flashes) == 0 {
			continue
		}
		consumed = true
		if v, ok := flashes[0].(string); ok {
			out[name] = v
		}
	}
	if consumed {
		_ = sess.Save(c.Request(), c.Response())
	}
	return out
}
