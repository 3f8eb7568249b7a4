package handlers

import (
	"net/mail"
	"strings"

	"github.com/creator-marketplace/backend/internal/auth"
	"github.com/creator-marketplace/backend/internal/config"
	"github.com/creator-marketplace/backend/internal/http/dto"
	"github.com/creator-marketplace/backend/internal/models"
	"github.com/creator-marketplace/backend/internal/repositories"
	"github.com/creator-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	accountRepo    *repositories.AccountRepo
	profileService *services.ProfileService
	cfg            *config.Config
	log            *zap.Logger
}

func NewAuthHandler(accountRepo *repositories.AccountRepo, profileService *services.ProfileService, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{accountRepo: accountRepo, profileService: profileService, cfg: cfg, log: log}
}

// Signup creates the account and its profile in one step. The profile shares
// the account id.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid email"})
	}

	hash, err := auth.HashPassword(req.Password, h.cfg.BcryptCost)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}

	if _, err := h.accountRepo.GetByEmail(c.Context(), email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "email already registered"})
	} else if !repositories.IsNotFound(err) {
		h.log.Error("failed to check existing account", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	account, err := h.accountRepo.Create(c.Context(), email, hash)
	if err != nil {
		h.log.Error("failed to create account", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	profile := &models.Profile{
		ID:    account.ID,
		Name:  req.Name,
		Type:  req.Type,
		Email: email,
	}
	if err := h.profileService.Create(c.Context(), profile); err != nil {
		return respondError(c, err)
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, account.ID, account.Email, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Token: token, User: profile})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	account, err := h.accountRepo.GetByEmail(c.Context(), email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
		}
		h.log.Error("failed to load account", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid credentials"})
	}

	if err := h.accountRepo.UpdateLastActive(c.Context(), account.ID); err != nil {
		h.log.Warn("failed to bump last_active_at", zap.Error(err))
	}

	profile, err := h.profileService.GetOwn(c.Context(), account.ID)
	if err != nil {
		return respondError(c, err)
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, account.ID, account.Email, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.JSON(dto.AuthResponse{Token: token, User: profile})
}
