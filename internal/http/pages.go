package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-pagemeta/catalog"
	catalogsvc "github.com/goliatone/go-pagemeta/internal/catalog"
)

func (api *API) handleList(w http.ResponseWriter, r *http.Request) {
	records := api.service.GetAllPagesMetadata(r.Context(), api.requestLanguage(r))
	writeSuccess(w, recordsOrEmpty(records))
}

func (api *API) handleGet(w http.ResponseWriter, r *http.Request) {
	path := "/" + strings.Trim(r.PathValue("path"), "/")
	record := api.service.GetPageMetadata(r.Context(), path, api.requestLanguage(r))
	if record == nil {
		writeFailure(w, http.StatusNotFound, codeNotFound, "page not found: "+path)
		return
	}
	writeSuccess(w, record)
}

func (api *API) handleNavigation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	nodes := api.service.GetNavigationStructure(r.Context(), catalogsvc.NavigationQuery{
		Section:     query.Get("section"),
		CurrentPath: query.Get("currentPath"),
		Language:    api.requestLanguage(r),
	})
	if nodes == nil {
		nodes = []catalog.NavigationNode{}
	}
	writeSuccess(w, nodes)
}

func (api *API) handleBreadcrumbs(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSpace(r.URL.Query().Get("path"))
	if path == "" {
		writeFailure(w, http.StatusBadRequest, codeInvalidParameter, "path parameter is required")
		return
	}
	lang := api.requestLanguage(r)
	if api.service.GetPageMetadata(r.Context(), path, lang) == nil {
		writeFailure(w, http.StatusNotFound, codeNotFound, "page not found: "+path)
		return
	}
	crumbs := api.service.GetBreadcrumbs(r.Context(), path, lang)
	if crumbs == nil {
		crumbs = []catalog.BreadcrumbItem{}
	}
	writeSuccess(w, crumbs)
}

func (api *API) handleRelated(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	path := strings.TrimSpace(query.Get("path"))
	if path == "" {
		writeFailure(w, http.StatusBadRequest, codeInvalidParameter, "path parameter is required")
		return
	}
	limit, ok := parseLimit(query.Get("limit"))
	if !ok {
		writeFailure(w, http.StatusBadRequest, codeInvalidParameter, "limit must be a non-negative integer")
		return
	}
	records := api.service.GetRelatedPages(r.Context(), path, limit, api.requestLanguage(r))
	writeSuccess(w, recordsOrEmpty(records))
}

func (api *API) handleSiblings(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSpace(r.URL.Query().Get("path"))
	if path == "" {
		writeFailure(w, http.StatusBadRequest, codeInvalidParameter, "path parameter is required")
		return
	}
	siblings := api.service.GetPageSiblings(r.Context(), path, api.requestLanguage(r))
	writeSuccess(w, siblings)
}

func (api *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeFailure(w, http.StatusBadRequest, codeValidationError, "search query must not be empty")
		return
	}
	records := api.service.SearchPages(r.Context(), query, api.requestLanguage(r))
	writeSuccess(w, recordsOrEmpty(records))
}

func recordsOrEmpty(records []*catalog.PageRecord) []*catalog.PageRecord {
	if records == nil {
		return []*catalog.PageRecord{}
	}
	return records
}
