// Package handler provides the HTTP handler of the payment feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"market_backend/internal/api"
	"market_backend/internal/feature/payment/transport/http/dto"
	"market_backend/internal/feature/payment/usecase"
)

// PaymentUsecase defines the payment operation used by the handler.
type PaymentUsecase interface {
	CreateIntent(ctx context.Context, amount int64, title string) (*usecase.Intent, error)
}

type PaymentHandler struct {
	payments PaymentUsecase
}

func NewPaymentHandler(payments PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Pay handles POST /payment.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithFields(logrus.Fields{"error": err, "remote_addr": c.ClientIP()}).Warn("payment request rejected")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Missing amount"})
		return
	}

	intent, err := h.payments.CreateIntent(c.Request.Context(), req.Amount, req.Title)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingAmount) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Missing amount"})
			return
		}
		logrus.WithFields(logrus.Fields{"error": err, "amount": req.Amount}).Error("payment intent failed")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"intent_id": intent.ID, "amount": req.Amount}).Info("payment intent created")
	c.JSON(http.StatusOK, dto.PaymentRes{ClientSecret: intent.ClientSecret})
}
