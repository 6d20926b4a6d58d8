// Package handler provides the HTTP handlers of the offers feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
	"github.com/sirupsen/logrus"

	"market_backend/internal/api"
	"market_backend/internal/feature/offers/domain/entity"
	"market_backend/internal/feature/offers/transport/http/dto"
	"market_backend/internal/feature/offers/usecase"
	"market_backend/internal/platform/authmw"
)

// OfferUsecase defines the offer operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type OfferUsecase interface {
	List(ctx context.Context, q entity.ListQuery) ([]entity.Offer, error)
	Detail(ctx context.Context, id string) (*entity.Offer, error)
	Publish(ctx context.Context, owner entity.Owner, in usecase.PublishInput) (*entity.Offer, error)
}

// OfferHandler handles offer listing, detail and publishing.
type OfferHandler struct {
	offers OfferUsecase
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(offers OfferUsecase) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// List handles GET /offers?title=&priceMin=&priceMax=&sort=&page=.
func (h *OfferHandler) List(c *gin.Context) {
	req, err := bindListReq(c)
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err, "query": c.Request.URL.RawQuery}).Warn("offer list query rejected")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		return
	}

	q := entity.ListQuery{PriceMin: req.PriceMin, PriceMax: req.PriceMax}
	if req.Title != nil {
		q.Title = *req.Title
	}
	if req.Sort != nil {
		q.Sort = entity.SortOrder(*req.Sort)
	}
	if req.Page != nil {
		q.Page = *req.Page
	}

	offers, err := h.offers.List(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidQuery) {
			logrus.WithFields(logrus.Fields{"error": err}).Warn("offer list query rejected")
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
			return
		}
		logrus.WithFields(logrus.Fields{"error": err}).Error("offer list failed")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewOfferListRes(offers))
}

// Detail handles GET /offers/:id. Unknown and malformed ids both answer 404.
func (h *OfferHandler) Detail(c *gin.Context) {
	offer, err := h.offers.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrOfferNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Message: usecase.ErrOfferNotFound.Error()})
			return
		}
		logrus.WithFields(logrus.Fields{"error": err, "offer_id": c.Param("id")}).Error("offer detail failed")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewOfferRes(offer))
}

// Publish handles POST /offer/publish. It must run behind authmw.AuthRequired.
//   - missing title or price, bad picture: 400
//   - success: 201 with the stored offer
func (h *OfferHandler) Publish(c *gin.Context) {
	user, ok := authmw.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.PublishReq
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithFields(logrus.Fields{"error": err, "user_id": user.ID}).Warn("publish form rejected")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Missing parameters"})
		return
	}

	picture, err := readPicture(c)
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err, "user_id": user.ID}).Warn("publish picture rejected")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		return
	}

	newsletter := user.Newsletter
	owner := entity.Owner{ID: user.ID, Username: user.Username, Avatar: user.Avatar, Newsletter: &newsletter}
	offer, err := h.offers.Publish(c.Request.Context(), owner, usecase.PublishInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Brand:       req.Brand,
		Size:        req.Size,
		Condition:   req.Condition,
		Color:       req.Color,
		City:        req.City,
		Picture:     picture,
	})
	if err != nil {
		fields := logrus.Fields{"error": err, "user_id": user.ID}
		if errors.Is(err, usecase.ErrInvalidOffer) {
			logrus.WithFields(fields).Warn("publish rejected")
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
			return
		}
		logrus.WithFields(fields).Error("publish failed")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"offer_id": offer.ID, "user_id": user.ID}).Info("offer published")
	c.JSON(http.StatusCreated, dto.NewOfferRes(offer))
}

// bindListReq parses the optional list parameters. A present but malformed value is an error.
func bindListReq(c *gin.Context) (dto.ListReq, error) {
	var req dto.ListReq
	query := c.Request.URL.Query()
	params := []struct {
		name string
		dest any
	}{
		{"title", &req.Title},
		{"priceMin", &req.PriceMin},
		{"priceMax", &req.PriceMax},
		{"sort", &req.Sort},
		{"page", &req.Page},
	}
	for _, p := range params {
		if err := runtime.BindQueryParameter("form", true, false, p.name, query, p.dest); err != nil {
			return req, fmt.Errorf("invalid format for parameter %s: %w", p.name, err)
		}
	}
	return req, nil
}

// readPicture returns nil when the request carries no picture part.
func readPicture(c *gin.Context) (*usecase.Picture, error) {
	fh, err := c.FormFile("picture")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if fh.Size > usecase.MaxPictureSize {
		return nil, fmt.Errorf("picture exceeds %d bytes", usecase.MaxPictureSize)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxPictureSize+1))
	if err != nil {
		return nil, err
	}
	return &usecase.Picture{Filename: fh.Filename, Data: data}, nil
}
