package deals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/dealmap/internal/domain"
	"github.com/GlebRadaev/dealmap/internal/dto"
	"github.com/GlebRadaev/dealmap/internal/service/dealservice"
	"github.com/GlebRadaev/dealmap/pkg/auth"
	"github.com/GlebRadaev/dealmap/pkg/utils"
)

type Service interface {
	CreateDeal(ctx context.Context, deal *domain.Deal) (*domain.Deal, error)
	GetDeal(ctx context.Context, id int) (*domain.Deal, error)
	GetDealsByBusiness(ctx context.Context, businessID int) ([]domain.Deal, error)
	CancelDeal(ctx context.Context, id, callerID int) (*domain.Deal, error)
}

type QueryService interface {
	DealsNear(ctx context.Context, p domain.Point, radiusKm float64) ([]domain.Deal, error)
}

type DealHandler struct {
	dealService  Service
	queryService QueryService
}

func New(dealService Service, queryService QueryService) *DealHandler {
	return &DealHandler{
		dealService:  dealService,
		queryService: queryService,
	}
}

// CreateDeal godoc
//
//	@Summary		Publish a new deal
//	@Description	Create a pending deal owned by a business account
//	@Tags			Deals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDealRequestDTO	true	"Deal to publish"
//	@Success		201		{object}	dto.DealResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid deal"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/deals [post]
func (h *DealHandler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDealRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deal := &domain.Deal{
		BusinessID:      req.BusinessID,
		Title:           req.Title,
		Description:     req.Description,
		ServiceType:     req.ServiceType,
		OriginalPrice:   req.OriginalPrice,
		DiscountPercent: req.DiscountPercent,
		MinCustomers:    req.MinCustomers,
		Location:        req.Location,
		ServiceArea:     req.ServiceArea,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	}

	created, err := h.dealService.CreateDeal(r.Context(), deal)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDeal) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDealResponse(created))
}

// GetDeal godoc
//
//	@Summary		Get a deal
//	@Tags			Deals
//	@Produce		json
//	@Param			id	path		int	true	"Deal id"
//	@Success		200	{object}	dto.DealResponseDTO
//	@Failure		404	{object}	utils.Response	"Deal not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deals/{id} [get]
func (h *DealHandler) GetDeal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deal id")
		return
	}

	deal, err := h.dealService.GetDeal(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDealNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDealResponse(deal))
}

// DealsNear godoc
//
//	@Summary		Discover joinable deals near a point
//	@Description	Deals within the radius whose service area contains the point
//	@Tags			Deals
//	@Produce		json
//	@Param			lat		query		number	true	"Latitude"
//	@Param			lng		query		number	true	"Longitude"
//	@Param			radius	query		number	true	"Radius in km"
//	@Success		200		{array}		dto.DealResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid query"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/deals [get]
func (h *DealHandler) DealsNear(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	radius, radErr := strconv.ParseFloat(r.URL.Query().Get("radius"), 64)
	if latErr != nil || lngErr != nil || radErr != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing or malformed location parameters")
		return
	}

	deals, err := h.queryService.DealsNear(r.Context(), domain.Point{Lng: lng, Lat: lat}, radius)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDealResponses(deals))
}

// GetBusinessDeals godoc
//
//	@Summary		List a business's deals
//	@Tags			Deals
//	@Produce		json
//	@Param			id	path		int	true	"Business id"
//	@Success		200	{array}		dto.DealResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/business/{id}/deals [get]
func (h *DealHandler) GetBusinessDeals(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid business id")
		return
	}

	deals, err := h.dealService.GetDealsByBusiness(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDealResponses(deals))
}

// CancelDeal godoc
//
//	@Summary		Cancel a deal
//	@Description	Owner-only; the deal becomes non-joinable and never reopens
//	@Tags			Deals
//	@Produce		json
//	@Param			id	path	int	true	"Deal id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DealResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Deal belongs to another business"
//	@Failure		404	{object}	utils.Response	"Deal not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deals/{id}/cancel [post]
func (h *DealHandler) CancelDeal(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(auth.UserIDKey).(int)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deal id")
		return
	}

	deal, err := h.dealService.CancelDeal(r.Context(), id, callerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDealNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, dealservice.ErrNotDealOwner):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDealResponse(deal))
}
