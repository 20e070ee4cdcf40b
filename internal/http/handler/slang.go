package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"slangopedia/internal/core"
	"slangopedia/internal/http/payload"
)

var (
	CreateSlang   = "POST /api/slang"
	ListSlangs    = "GET /api/slang"
	GetSlang      = "GET /api/slang/{id}"
	UpdateSlang   = "PUT /api/slang/{id}"
	DeleteSlang   = "DELETE /api/slang/{id}"
	LikeSlang     = "POST /api/slang/{id}/like"
	FavoriteSlang = "POST /api/slang/{id}/favorite"
)

type SlangHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	catalog          CatalogService
}

func NewSlangHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, catalogService CatalogService) *SlangHandler {
	return &SlangHandler{
		logs:             logger,
		requestValidator: requestValidator,
		catalog:          catalogService,
	}
}

func (h *SlangHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.CreateSlangRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not create slang",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateSlang,
			"request_id", requestId)
		return
	}

	record, err := h.catalog.Create(r.Context(), userID(r), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not create slang",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrWordExists) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = unexpectedErr
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to create slang",
			"error", err,
			"handler", CreateSlang,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, record, http.StatusCreated, requestId)
}

func (h *SlangHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	values := r.URL.Query()

	listQuery := core.ListQuery{
		Query:    values.Get("q"),
		Category: values.Get("catagory"),
	}

	var err error
	if pageStr := values.Get("page"); pageStr != "" {
		listQuery.Page, err = strconv.Atoi(pageStr)
		if err != nil || listQuery.Page < 1 {
			respond(h.logs, w, Response{
				Message: "Could not list slangs",
				Error:   "page must be a positive integer",
			}, http.StatusBadRequest, requestId)
			h.logs.Errorw("invalid page parameter", "page", pageStr, "handler", ListSlangs, "request_id", requestId)
			return
		}
	}
	if limitStr := values.Get("limit"); limitStr != "" {
		listQuery.Limit, err = strconv.Atoi(limitStr)
		if err != nil || listQuery.Limit < 1 {
			respond(h.logs, w, Response{
				Message: "Could not list slangs",
				Error:   "limit must be a positive integer",
			}, http.StatusBadRequest, requestId)
			h.logs.Errorw("invalid limit parameter", "limit", limitStr, "handler", ListSlangs, "request_id", requestId)
			return
		}
	}

	records, err := h.catalog.List(r.Context(), listQuery)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not list slangs",
			Error:   unexpectedErr,
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list slangs",
			"error", err,
			"handler", ListSlangs,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, records, http.StatusOK, requestId)
}

func (h *SlangHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	details, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		resp := Response{
			Message: "Slang Not Found",
		}
		httpCode := http.StatusNotFound
		if !errors.Is(err, core.ErrSlangNotFound) {
			httpCode = http.StatusInternalServerError
			resp.Message = "Could not retrieve slang"
			resp.Error = unexpectedErr
		}

		respond(h.logs, w, resp, httpCode, requestId)
		h.logs.Errorw("failed to get slang",
			"error", err,
			"handler", GetSlang,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, details, http.StatusOK, requestId)
}

func (h *SlangHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.UpdateSlangRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not update slang",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", UpdateSlang,
			"request_id", requestId)
		return
	}

	record, err := h.catalog.Update(r.Context(), r.PathValue("id"), userID(r), req.ToPatch())
	if err != nil {
		h.respondMutationError(w, err, "Could not update slang", UpdateSlang, requestId)
		return
	}

	respond(h.logs, w, record, http.StatusOK, requestId)
}

func (h *SlangHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if err := h.catalog.Delete(r.Context(), r.PathValue("id"), userID(r)); err != nil {
		h.respondMutationError(w, err, "Could not delete slang", DeleteSlang, requestId)
		return
	}

	respond(h.logs, w, Response{Message: "Slang Deleted"}, http.StatusOK, requestId)
}

func (h *SlangHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	likes, err := h.catalog.ToggleLike(r.Context(), r.PathValue("id"), userID(r))
	if err != nil {
		h.respondMutationError(w, err, "Could not like slang", LikeSlang, requestId)
		return
	}

	respond(h.logs, w, map[string]int{"likes": likes}, http.StatusOK, requestId)
}

func (h *SlangHandler) HandleFavorite(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	favorites, err := h.catalog.ToggleFavorite(r.Context(), userID(r), r.PathValue("id"))
	if err != nil {
		h.respondMutationError(w, err, "Could not favorite slang", FavoriteSlang, requestId)
		return
	}

	respond(h.logs, w, map[string][]string{"favorites": favorites}, http.StatusOK, requestId)
}

func (h *SlangHandler) respondMutationError(w http.ResponseWriter, err error, message, route, requestId string) {
	resp := Response{
		Message: message,
	}
	httpCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrSlangNotFound):
		httpCode = http.StatusNotFound
		resp.Message = "Slang Not Found"
		resp.Error = err.Error()
	case errors.Is(err, core.ErrNotAllowed):
		httpCode = http.StatusForbidden
		resp.Message = "Not Allowed"
		resp.Error = err.Error()
	case errors.Is(err, core.ErrWordExists):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	default:
		resp.Error = unexpectedErr
	}

	respond(h.logs, w, resp, httpCode, requestId)
	h.logs.Errorw("slang mutation failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}
