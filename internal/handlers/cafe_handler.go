package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/cafe-directory/internal/domain/cafe"
	"github.com/BruksfildServices01/cafe-directory/internal/httperr"
	"github.com/BruksfildServices01/cafe-directory/internal/httpresp"
	"github.com/BruksfildServices01/cafe-directory/internal/middleware"
	ucCafe "github.com/BruksfildServices01/cafe-directory/internal/usecase/cafe"
)

const (
	msgNoCafes        = "Sorry, there are no cafes in the database yet."
	msgNoCafeAtLoc    = "Sorry, we don't have a cafe at that location."
	msgCafeNotFound   = "Sorry a cafe with that id was not found in the database."
	msgMissingLoc     = "The loc query parameter is required."
	msgInvalidID      = "The cafe id must be a positive integer."
	msgInvalidPrice   = "coffee_price must contain digits only."
	msgAddRejected    = "Please fill in every required field and use a name that is not already taken."
	msgAddUnavailable = "The cafe could not be saved, please try again later."
	msgInternal       = "Something went wrong, please try again later."

	msgAdded        = "Successfully added the new cafe."
	msgPriceUpdated = "Successfully updated the price."
)

// ======================================================
// HANDLER
// ======================================================

type CafeHandler struct {
	getRandom   *ucCafe.GetRandomCafe
	listAll     *ucCafe.ListCafes
	search      *ucCafe.SearchCafesByLocation
	getByID     *ucCafe.GetCafe
	create      *ucCafe.CreateCafe
	updatePrice *ucCafe.UpdateCoffeePrice
	log         *zap.Logger
}

func NewCafeHandler(
	getRandom *ucCafe.GetRandomCafe,
	listAll *ucCafe.ListCafes,
	search *ucCafe.SearchCafesByLocation,
	getByID *ucCafe.GetCafe,
	create *ucCafe.CreateCafe,
	updatePrice *ucCafe.UpdateCoffeePrice,
	log *zap.Logger,
) *CafeHandler {
	return &CafeHandler{
		getRandom:   getRandom,
		listAll:     listAll,
		search:      search,
		getByID:     getByID,
		create:      create,
		updatePrice: updatePrice,
		log:         log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SearchCafesRequest struct {
	Loc string `form:"loc" binding:"required"`
}

type CafeURI struct {
	ID uint `uri:"id" binding:"required"`
}

type UpdatePriceRequest struct {
	CoffeePrice string `form:"coffee_price"`
}

// CreateCafeRequest mirrors the add form. Boolean fields arrive as free
// text and are coerced by ToCandidate.
type CreateCafeRequest struct {
	Name     string `form:"name" binding:"required"`
	MapURL   string `form:"map_url" binding:"required"`
	ImgURL   string `form:"img_url" binding:"required"`
	Location string `form:"location" binding:"required"`
	Seats    string `form:"seats" binding:"required"`

	HasToilet    string `form:"has_toilet"`
	HasWifi      string `form:"has_wifi"`
	HasSockets   string `form:"has_sockets"`
	CanTakeCalls string `form:"can_take_calls"`

	CoffeePrice *string `form:"coffee_price"`
}

func (r CreateCafeRequest) ToCandidate() domain.Candidate {
	return domain.Candidate{
		Name:         r.Name,
		MapURL:       r.MapURL,
		ImgURL:       r.ImgURL,
		Location:     r.Location,
		Seats:        r.Seats,
		HasToilet:    domain.ParseBool(r.HasToilet),
		HasWifi:      domain.ParseBool(r.HasWifi),
		HasSockets:   domain.ParseBool(r.HasSockets),
		CanTakeCalls: domain.ParseBool(r.CanTakeCalls),
		CoffeePrice:  r.CoffeePrice,
	}
}

// ======================================================
// READS
// ======================================================

func (h *CafeHandler) Random(c *gin.Context) {
	cafe, err := h.getRandom.Execute(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCollection) {
			httperr.NotFound(c, msgNoCafes)
			return
		}
		h.internal(c, err)
		return
	}

	httpresp.OK(c, cafe)
}

func (h *CafeHandler) All(c *gin.Context) {
	cafes, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		h.internal(c, err)
		return
	}

	httpresp.Cafes(c, cafes)
}

// Search lists cafes whose location equals loc exactly. A missing or
// empty loc is a 400; no match is a 404.
func (h *CafeHandler) Search(c *gin.Context) {
	var req SearchCafesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(c, msgMissingLoc)
		return
	}

	cafes, err := h.search.Execute(c.Request.Context(), req.Loc)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, msgNoCafeAtLoc)
			return
		}
		h.internal(c, err)
		return
	}

	httpresp.Cafes(c, cafes)
}

func (h *CafeHandler) Get(c *gin.Context) {
	var uri CafeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.BadRequest(c, msgInvalidID)
		return
	}

	cafe, err := h.getByID.Execute(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, msgCafeNotFound)
			return
		}
		h.internal(c, err)
		return
	}

	httpresp.OK(c, cafe)
}

// ======================================================
// WRITES
// ======================================================

func (h *CafeHandler) Create(c *gin.Context) {
	// form fields come from the body only, never the query string
	var b binding.Binding = binding.FormPost
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		b = binding.FormMultipart
	}

	var req CreateCafeRequest
	if err := c.ShouldBindWith(&req, b); err != nil {
		httperr.Write(c, http.StatusBadRequest, httperr.TitleAddFailed, msgAddRejected)
		return
	}

	cafe, err := h.create.Execute(c.Request.Context(), req.ToCandidate())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConstraintViolation),
			errors.Is(err, domain.ErrValidation):
			h.log.Info("cafe rejected",
				zap.String("name", req.Name),
				zap.String("reason", httperr.CodeOf(err)),
			)
			httperr.Write(c, http.StatusBadRequest, httperr.TitleAddFailed, msgAddRejected)
		default:
			h.logInternal(c, err)
			httperr.Write(c, http.StatusInternalServerError, httperr.TitleAddFailed, msgAddUnavailable)
		}
		return
	}

	h.log.Info("cafe created", zap.Uint("id", cafe.ID), zap.String("name", cafe.Name))
	httpresp.Success(c, http.StatusCreated, msgAdded)
}

func (h *CafeHandler) UpdatePrice(c *gin.Context) {
	var uri CafeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.BadRequest(c, msgInvalidID)
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(c, msgInvalidPrice)
		return
	}

	if _, err := h.updatePrice.Execute(c.Request.Context(), uri.ID, req.CoffeePrice); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			httperr.BadRequest(c, msgInvalidPrice)
		case errors.Is(err, domain.ErrNotFound):
			httperr.NotFound(c, msgCafeNotFound)
		default:
			h.internal(c, err)
		}
		return
	}

	httpresp.Success(c, http.StatusOK, msgPriceUpdated)
}

// ======================================================
// HELPERS
// ======================================================

func (h *CafeHandler) internal(c *gin.Context, err error) {
	h.logInternal(c, err)
	httperr.Internal(c, msgInternal)
}

func (h *CafeHandler) logInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	h.log.Error("cafe request failed",
		zap.String("path", c.FullPath()),
		zap.String("request_id", middleware.RequestIDFromContext(c)),
		zap.Error(err),
	)
}
