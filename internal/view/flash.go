// Package view holds the helpers shared by the page handlers: flash
// messages and the cross-request form prefills that ride on them.
package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyNotice   = "notice"
	flashKeyEmail    = "form_email"
)

// FlashData is the consumed flash messages of one request, ready for the
// base layout.
type FlashData struct {
	Success []string
	Error   []string
	Notice  []string
}

func setFlash(c echo.Context, key, message string) {
	sess, _ := session.Get(flashSessionName, c)
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess queues a success message for the next render.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError queues an error message for the next render.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// SetFlashNotice queues an informational message for the next render.
func SetFlashNotice(c echo.Context, message string) {
	setFlash(c, flashKeyNotice, message)
}

// GetFlashData retrieves and clears all flash messages. Saving the session
// here is what persists the clearing.
func GetFlashData(c echo.Context) FlashData {
	sess, _ := session.Get(flashSessionName, c)

	data := FlashData{
		Success: asStrings(sess.Flashes(flashKeySuccess)),
		Error:   asStrings(sess.Flashes(flashKeyError)),
		Notice:  asStrings(sess.Flashes(flashKeyNotice)),
	}
	if len(data.Success)+len(data.Error)+len(data.Notice) > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

// SetFormEmail preserves a submitted email across the redirect after a
// failed login or registration, so the form comes back prefilled.
func SetFormEmail(c echo.Context, email string) {
	setFlash(c, flashKeyEmail, email)
}

// PopFormEmail consumes the preserved email, if any.
func PopFormEmail(c echo.Context) string {
	sess, _ := session.Get(flashSessionName, c)
	flashes := sess.Flashes(flashKeyEmail)
	if len(flashes) == 0 {
		return ""
	}
	_ = sess.Save(c.Request(), c.Response())
	if s, ok := flashes[0].(string); ok {
		return s
	}
	return ""
}

func asStrings(flashes []interface{}) []string {
	if len(flashes) == 0 {
		return nil
	}
	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
