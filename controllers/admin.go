package controllers

import (
	"context"
	"net/http"
	"time"

	"wholesale-delivery/models"
)

type AdminAuth interface {
	Register(ctx context.Context, in models.AdminRegistration) (*models.Admin, error)
	VerifyEmail(ctx context.Context, token, email string) (*models.Admin, error)
	Login(ctx context.Context, email, password string) (*models.AdminSession, error)
}

// AdminController handles admin registration, verification and login
type AdminController struct {
	service AdminAuth
	timeout time.Duration
}

func NewAdminController(service AdminAuth, timeout time.Duration) *AdminController {
	return &AdminController{service: service, timeout: timeout}
}

// Register handles POST /admin/register
func (ac *AdminController) Register(w http.ResponseWriter, r *http.Request) {
	var in models.AdminRegistration
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		badRequest(w, "Name, email and password are required")
		return
	}

	ctx, cancel := withTimeout(r, ac.timeout)
	defer cancel()
	admin, err := ac.service.Register(ctx, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Admin Registered Successfully", admin)
}

// VerifyEmail handles GET /admin/verify-email?email=&token=
func (ac *AdminController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	token := r.URL.Query().Get("token")
	if email == "" || token == "" {
		badRequest(w, "Missing email or token")
		return
	}

	ctx, cancel := withTimeout(r, ac.timeout)
	defer cancel()
	admin, err := ac.service.VerifyEmail(ctx, token, email)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Admin Verified Successfully :)", admin)
}

// Login handles POST /admin/login
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &creds); err != nil {
		respondError(w, r, err)
		return
	}
	if creds.Email == "" || creds.Password == "" {
		badRequest(w, "Missing email or password")
		return
	}

	ctx, cancel := withTimeout(r, ac.timeout)
	defer cancel()
	session, err := ac.service.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Admin Logged In Successfully :)", session)
}
