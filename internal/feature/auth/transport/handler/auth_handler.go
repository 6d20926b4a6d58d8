// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"market_backend/internal/api"
	"market_backend/internal/feature/auth/domain/entity"
	"market_backend/internal/feature/auth/transport/http/dto"
	"market_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the account operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, error)
}

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /user/signup.
//   - missing field: 400
//   - email already used: 400
//   - success: 201 with token, id and username
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithFields(logrus.Fields{"error": err, "remote_addr": c.ClientIP()}).Warn("signup validation failed")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Missing parameters"})
		return
	}

	user, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		Newsletter: *req.Newsletter,
	})
	if err != nil {
		fields := logrus.Fields{"error": err, "email": req.Email, "remote_addr": c.ClientIP()}
		switch {
		case errors.Is(err, usecase.ErrMissingParameters):
			logrus.WithFields(fields).Warn("signup rejected")
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Missing parameters"})
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			logrus.WithFields(fields).Warn("signup rejected")
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "This email is already used"})
		default:
			logrus.WithFields(fields).Error("signup failed")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "remote_addr": c.ClientIP()}).Info("user signup successful")
	c.JSON(http.StatusCreated, dto.NewAuthRes(user))
}

// Login handles POST /user/login.
// Unknown email and wrong password both answer 401 with the same body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithFields(logrus.Fields{"error": err, "remote_addr": c.ClientIP()}).Warn("login validation failed")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Missing parameters"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fields := logrus.Fields{"error": err, "email": req.Email, "remote_addr": c.ClientIP()}
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			logrus.WithFields(fields).Warn("login failed")
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized"})
			return
		}
		logrus.WithFields(fields).Error("login failed")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "remote_addr": c.ClientIP()}).Info("user login successful")
	c.JSON(http.StatusOK, dto.NewAuthRes(user))
}
