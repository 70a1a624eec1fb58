package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	buildv1 "github.com/you-humble/pc-builder/internal/api/build/v1"
	"github.com/you-humble/pc-builder/internal/converter"
	"github.com/you-humble/pc-builder/internal/model"
)

type BuildService interface {
	Create(ctx context.Context) (model.Build, error)
	Build(ctx context.Context, id uuid.UUID) (model.Build, error)
	Summary(ctx context.Context, id uuid.UUID) (model.BuildSummary, error)
	Select(ctx context.Context, id uuid.UUID, c model.Category, partID string) (model.Build, error)
	Clear(ctx context.Context, id uuid.UUID, c model.Category) (model.Build, error)
	ClearAll(ctx context.Context, id uuid.UUID) (model.Build, error)
	Candidates(ctx context.Context, id uuid.UUID, c model.Category, filter model.PartsFilter) ([]model.Candidate, error)
	AddToCart(ctx context.Context, id uuid.UUID, c model.Category, partID string) (model.Build, error)
	RemoveFromCart(ctx context.Context, id uuid.UUID, index int) (model.Build, error)
	ClearCart(ctx context.Context, id uuid.UUID) (model.Build, error)
	Checkout(ctx context.Context, id uuid.UUID) (model.CartCheckedOut, error)
}

type CatalogService interface {
	Part(ctx context.Context, partID string) (model.Item, error)
	ListParts(ctx context.Context, c model.Category, filter model.PartsFilter) ([]model.Item, error)
	Brands(ctx context.Context, c model.Category) ([]string, error)
}

type handler struct {
	builds  BuildService
	catalog CatalogService
}

func NewBuildHandler(builds BuildService, catalog CatalogService) *handler {
	return &handler{builds: builds, catalog: catalog}
}

// Routes mounts the v1 API under r.
func (h *handler) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/builds", h.CreateBuild)
		r.Route("/builds/{buildID}", func(r chi.Router) {
			r.Get("/", h.GetBuild)
			r.Get("/summary", h.GetSummary)
			r.Put("/selection/{category}", h.Select)
			r.Delete("/selection/{category}", h.Clear)
			r.Delete("/selection", h.ClearAll)
			r.Get("/candidates/{category}", h.Candidates)
			r.Post("/cart", h.AddToCart)
			r.Delete("/cart/{index}", h.RemoveFromCart)
			r.Delete("/cart", h.ClearCart)
			r.Post("/checkout", h.Checkout)
		})
		r.Get("/catalog/{category}", h.ListParts)
		r.Get("/catalog/{category}/brands", h.Brands)
		r.Get("/parts/{partID}", h.GetPart)
	})
}

func (h *handler) CreateBuild(w http.ResponseWriter, r *http.Request) {
	b, err := h.builds.Create(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.BuildToAPI(b))
}

func (h *handler) GetBuild(w http.ResponseWriter, r *http.Request) {
	id, ok := buildID(w, r)
	if !ok {
		return
	}

	b, err := h.builds.Build(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BuildToAPI(b))
}

func (h *handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := buildID(w, r)
	if !ok {
		return
	}

	s, err := h.builds.Summary(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.SummaryToAPI(s))
}

func (h *handler) Select(w http.ResponseWriter, r *http.Request) {
	id, ok := buildID(w, r)
	if !ok {
		return
	}
	c, ok := category(w, r)
	if !ok {
		return
	}

	var req buildv1.SelectRequest
	if !decode(w, r, &req) {
		return
	}

	b, err := h.builds.Select(r.Context(), id, c, req.PartID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BuildToAPI(b))
}

func (h *handler) Clear(w http.ResponseWriter, r *http.Request) {
	id, ok := buildID(w, r)
	if !ok {
		return
	}
	c, ok := category(w, r)
	if !ok {
		return
	}

	b, err := h.builds.Clear(r.Context(), id, c)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BuildToAPI(b))
}

func (h *handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	id, ok := buildID(w, r)
	if !ok {
		return
	}

	b, err := h.builds.ClearAll(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BuildToAPI(b))
}

func (h *handler) Candidates(w http.ResponseWriter, r *http.Request) {
	id, ok := buildID(w, r)
	if !ok {
		return
	}
	c, ok := category(w, r)
	if !ok {
		return
	}

	filter, err := partsFilter(r, true)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cs, err := h.builds.Candidates(r.Context(), id, c, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.CandidatesToAPI(cs))
}

func (h *handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, ok := buildID(w, r)
	if !ok {
		return
	}

	var req buildv1.AddToCartRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := model.ParseCategory(req.Category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	b, err := h.builds.AddToCart(r.Context(), id, c, req.PartID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BuildToAPI(b))
}

func (h *handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := buildID(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, r, errors.Join(model.ErrInvalidArgument, err))
		return
	}

	b, err := h.builds.RemoveFromCart(r.Context(), id, index)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BuildToAPI(b))
}

func (h *handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	id, ok := buildID(w, r)
	if !ok {
		return
	}

	b, err := h.builds.ClearCart(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BuildToAPI(b))
}

func (h *handler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := buildID(w, r)
	if !ok {
		return
	}

	ev, err := h.builds.Checkout(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.CheckoutToAPI(ev))
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	c, ok := category(w, r)
	if !ok {
		return
	}

	filter, err := partsFilter(r, false)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.catalog.ListParts(r.Context(), c, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartsToAPI(items))
}

func (h *handler) Brands(w http.ResponseWriter, r *http.Request) {
	c, ok := category(w, r)
	if !ok {
		return
	}

	brands, err := h.catalog.Brands(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, brands)
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	it, err := h.catalog.Part(r.Context(), chi.URLParam(r, "partID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartToAPI(it))
}

func buildID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "buildID"))
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, buildv1.Error{ // 400
			Code:    http.StatusBadRequest,
			Message: "invalid build id",
		})
		return uuid.Nil, false
	}
	return id, true
}

func category(w http.ResponseWriter, r *http.Request) (model.Category, bool) {
	c, err := model.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, r, err)
		return model.CategoryUnknown, false
	}
	return c, true
}

// partsFilter reads brand, min_price, max_price, include_out_of_stock and
// hide_incompatible from the query string.
func partsFilter(r *http.Request, hideIncompatible bool) (model.PartsFilter, error) {
	q := r.URL.Query()
	f := model.PartsFilter{
		Brand:            q.Get("brand"),
		HideIncompatible: hideIncompatible,
	}

	var err error
	if f.MinPrice, err = optFloat(q.Get("min_price")); err != nil {
		return model.PartsFilter{}, err
	}
	if f.MaxPrice, err = optFloat(q.Get("max_price")); err != nil {
		return model.PartsFilter{}, err
	}
	if v := q.Get("include_out_of_stock"); v != "" {
		if f.IncludeOutOfStock, err = strconv.ParseBool(v); err != nil {
			return model.PartsFilter{}, errors.Join(model.ErrInvalidArgument, err)
		}
	}
	if v := q.Get("hide_incompatible"); v != "" {
		if f.HideIncompatible, err = strconv.ParseBool(v); err != nil {
			return model.PartsFilter{}, errors.Join(model.ErrInvalidArgument, err)
		}
	}

	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return model.PartsFilter{}, errors.Join(model.ErrInvalidArgument, errors.New("min_price exceeds max_price"))
	}

	return f, nil
}

func optFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("invalid price "+strconv.Quote(s)))
	}
	return &v, nil
}
