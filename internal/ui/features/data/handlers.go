package data

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/semstack-labs/semstudio/internal/dataset"
	"github.com/semstack-labs/semstudio/internal/session"
	"github.com/semstack-labs/semstudio/internal/ui/features/common"
	"github.com/semstack-labs/semstudio/internal/ui/views"
)

// maxUploadBytes caps dataset uploads at 32 MiB.
const maxUploadBytes = 32 << 20

// Handlers provides HTTP handlers for the data feature.
type Handlers struct {
	cache        *dataset.Cache
	sessions     *session.Manager
	sessionStore sessions.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cache *dataset.Cache, manager *session.Manager, sessionStore sessions.Store) *Handlers {
	return &Handlers{
		cache:        cache,
		sessions:     manager,
		sessionStore: sessionStore,
	}
}

// Upload parses an uploaded data file and installs it as the session
// dataset. Loader failures are reported inline in the data panel; the
// session keeps its previous dataset and results.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	st := common.SessionState(h.sessionStore, h.sessions, w, r)
	sse := datastar.NewSSE(w, r)

	name, content, err := readUpload(r)
	if err != nil {
		h.patchPanel(sse, st, err.Error())
		return
	}

	tbl, err := h.cache.Load(name, content)
	if err != nil {
		h.patchPanel(sse, st, uploadErrorMessage(err))
		return
	}

	st.SetDataset(name, tbl)
	h.patchPanel(sse, st, "")
}

// DropIncomplete applies the complete-cases filter after the analyst
// confirms it. Idempotent: the filter is applied at most once per dataset.
func (h *Handlers) DropIncomplete(w http.ResponseWriter, r *http.Request) {
	st := common.SessionState(h.sessionStore, h.sessions, w, r)
	sse := datastar.NewSSE(w, r)

	st.DropIncomplete()
	h.patchPanel(sse, st, "")
}

func (h *Handlers) patchPanel(sse *datastar.ServerSentEventGenerator, st *session.State, errMsg string) {
	fragment, err := views.Fragment("dataset", common.BuildDatasetView(st, errMsg))
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(fragment); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// readUpload extracts the uploaded file from the multipart form.
func readUpload(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", nil, errors.New("upload too large or malformed")
	}
	file, header, err := r.FormFile("dataset")
	if err != nil {
		return "", nil, errors.New("no file selected")
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return "", nil, errors.New("failed to read upload")
	}
	return header.Filename, content, nil
}

// uploadErrorMessage keeps loader errors analyst-readable.
func uploadErrorMessage(err error) string {
	var unsupported *dataset.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return unsupported.Error()
	}
	var parse *dataset.ParseError
	if errors.As(err, &parse) {
		return parse.Error()
	}
	return "failed to load dataset: " + err.Error()
}
