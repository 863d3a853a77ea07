package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"faculty-portal/app/dto"
	"faculty-portal/app/errs"
	jwtutil "faculty-portal/app/jwt"
	"faculty-portal/app/services"
	"faculty-portal/global"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	id, err := c.Users.Register(services.RegisterRequest{
		Username:   req.Username,
		Password:   req.Password,
		Email:      req.Email,
		FullName:   req.FullName,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Username, password, email, and full name are required")
		case errors.Is(err, errs.ErrDuplicateIdentity):
			writeError(w, http.StatusBadRequest, "Username or email already exists")
		default:
			global.Logger.Error().Err(err).Msg("registration failed")
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, dto.RegisterResponse{Message: "User registered successfully", UserID: id})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	u, err := c.Users.Authenticate(req.Username, req.Password)
	if err != nil {
		// One message for unknown user, wrong password and disabled
		// account alike.
		if errors.Is(err, errs.ErrAuthFailed) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials or account disabled")
			return
		}
		global.Logger.Error().Err(err).Msg("login failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := c.Signer.Sign(u.Username)
	if err != nil {
		global.Logger.Error().Err(err).Msg("token signing failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.PublicUser{Username: u.Username},
	})
}
