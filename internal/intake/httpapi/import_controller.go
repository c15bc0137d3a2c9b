package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"catalog-server/internal/infra/httpserver"
	intakedomain "catalog-server/internal/intake/domain"
	"catalog-server/internal/intake/httpapi/internal"
	"catalog-server/internal/intake/usecases"
	shareddomain "catalog-server/internal/shared_kernel/domain"
)

const (
	tenantHeaderName         = "X-Tenant-ID"
	tenantRequiredErrMessage = "tenant id is required"

	createSessionErrMessage   = "failed to create import session"
	getSessionErrMessage      = "failed to get import session"
	previewErrMessage         = "failed to preview import"
	commitErrMessage          = "failed to commit import"
	cancelErrMessage          = "failed to cancel import"
	sessionNotFoundErrMessage = "import session not found"
	invalidStateErrMessage    = "import session is not in a valid state for this operation"
)

func NewImportController(service usecases.ImportService) *ImportController {
	return &ImportController{
		service: service,
	}
}

var _ httpserver.Controller = &ImportController{}

type ImportController struct {
	service usecases.ImportService
}

func (c *ImportController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/imports", c.createSession())
	router.Handle("GET /v1/imports/{id}", c.getSession())
	router.Handle("GET /v1/imports/{id}/preview", c.preview())
	router.Handle("POST /v1/imports/{id}/commit", c.commit())
	router.Handle("POST /v1/imports/{id}/cancel", c.cancel())
}

func (c *ImportController) createSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenant := shareddomain.ID(r.Header.Get(tenantHeaderName))
		if tenant == "" {
			http.Error(w, tenantRequiredErrMessage, http.StatusBadRequest)
			return
		}

		session, err := c.service.CreateSession(r.Context(), tenant, r.Body)
		if errors.Is(err, usecases.ErrEmptyInput) {
			http.Error(w, usecases.ErrEmptyInput.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("creating import session", slog.String("error", err.Error()))
			http.Error(w, createSessionErrMessage, http.StatusBadRequest)
			return
		}

		response := internal.ToImportSessionResponse(session)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *ImportController) getSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "import session id is required", http.StatusBadRequest)
			return
		}

		session, err := c.service.GetSession(r.Context(), shareddomain.ID(id))
		if errors.Is(err, usecases.ErrSessionNotFound) {
			http.Error(w, sessionNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting import session", slog.String("error", err.Error()))
			http.Error(w, getSessionErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToImportSessionResponse(session)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *ImportController) preview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "import session id is required", http.StatusBadRequest)
			return
		}

		previews, err := c.service.Preview(r.Context(), shareddomain.ID(id))
		switch {
		case errors.Is(err, usecases.ErrSessionNotFound):
			http.Error(w, sessionNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, intakedomain.ErrInvalidSessionState):
			http.Error(w, invalidStateErrMessage, http.StatusConflict)
			return
		case err != nil:
			slog.Error("previewing import", slog.String("error", err.Error()))
			http.Error(w, previewErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.RowPreviewResponse, len(previews))
		for i, preview := range previews {
			responses[i] = internal.ToRowPreviewResponse(preview)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *ImportController) commit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "import session id is required", http.StatusBadRequest)
			return
		}

		result, err := c.service.Commit(r.Context(), shareddomain.ID(id))
		switch {
		case errors.Is(err, usecases.ErrSessionNotFound):
			http.Error(w, sessionNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, intakedomain.ErrInvalidSessionState):
			http.Error(w, invalidStateErrMessage, http.StatusConflict)
			return
		case err != nil:
			slog.Error("committing import", slog.String("error", err.Error()))
			http.Error(w, commitErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToCommitResultResponse(result)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *ImportController) cancel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "import session id is required", http.StatusBadRequest)
			return
		}

		err := c.service.Cancel(r.Context(), shareddomain.ID(id))
		switch {
		case errors.Is(err, usecases.ErrSessionNotFound):
			http.Error(w, sessionNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, intakedomain.ErrInvalidSessionState):
			http.Error(w, invalidStateErrMessage, http.StatusConflict)
			return
		case err != nil:
			slog.Error("cancelling import", slog.String("error", err.Error()))
			http.Error(w, cancelErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
