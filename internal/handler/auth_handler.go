package handler

import (
	"errors"
	"net/http"

	"unbacklog/internal/remote"
	"unbacklog/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	sessions *session.Store
}

func NewAuthHandler(sessions *session.Store) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2"`
	Password string `json:"password" binding:"required,min=6"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Login godoc
// @Summary      Log in to the remote API
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Credentials"
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Informe e-mail e senha"})
		return
	}

	if err := h.sessions.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, remote.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
			return
		}
		respondRemoteError(c, nil, err, "Erro ao entrar. Tente novamente.")
		return
	}

	user, _ := h.sessions.User()
	c.JSON(http.StatusOK, UserResponse{ID: user.ID.String(), Name: user.Name, Email: user.Email})
}

// Register godoc
// @Summary      Create an account and log in
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        account  body  RegisterRequest  true  "Account data"
// @Success      201  {object}  UserResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de cadastro inválidos"})
		return
	}

	if err := h.sessions.Register(c.Request.Context(), req.Email, req.Password, req.Name); err != nil {
		if errors.Is(err, remote.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Cadastro recusado"})
			return
		}
		respondRemoteError(c, nil, err, "Erro ao cadastrar. Tente novamente.")
		return
	}

	user, _ := h.sessions.User()
	c.JSON(http.StatusCreated, UserResponse{ID: user.ID.String(), Name: user.Name, Email: user.Email})
}

// Logout godoc
// @Summary      Invalidate the session
// @Tags         Auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Local identity is cleared even when the server call fails.
	_ = h.sessions.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Current identity
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.sessions.User()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autenticado"})
		return
	}

	response := gin.H{"user": UserResponse{ID: user.ID.String(), Name: user.Name, Email: user.Email}}
	if expiry, err := h.sessions.TokenExpiry(); err == nil {
		response["sessionExpiresAt"] = expiry
	}
	c.JSON(http.StatusOK, response)
}
