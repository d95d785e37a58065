// Package common provides helpers shared by the workbench feature packages:
// cookie-to-session resolution and view-model builders.
package common

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/semstack-labs/semstudio/internal/session"
)

// SessionCookie is the cookie name carrying the session identifier.
const SessionCookie = "semstudio_session"

// SessionState resolves the analyst's working session from the request
// cookie, creating both cookie and session on first contact. Accessing the
// session slides its expiry.
func SessionState(store sessions.Store, manager *session.Manager, w http.ResponseWriter, r *http.Request) *session.State {
	sess, _ := store.Get(r, SessionCookie)
	sid, ok := sess.Values["sid"].(string)
	if !ok || sid == "" {
		sid = uuid.NewString()
		sess.Values["sid"] = sid
		_ = sess.Save(r, w)
	}
	return manager.Get(sid)
}
