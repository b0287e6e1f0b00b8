package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"wholesale-delivery/models"
)

type DriverManager interface {
	Register(ctx context.Context, in models.DriverRegistration) (*models.Driver, error)
	Login(ctx context.Context, phone, password string) (*models.DriverSession, error)
	List(ctx context.Context, search string, p models.Page) (models.PageResult[models.Driver], error)
	Edit(ctx context.Context, driverID string, u models.DriverUpdate) (*models.Driver, error)
	SoftDelete(ctx context.Context, driverID string, p models.Page) (models.PageResult[models.Driver], error)
}

// DriverController handles driver accounts
type DriverController struct {
	service DriverManager
	timeout time.Duration
}

func NewDriverController(service DriverManager, timeout time.Duration) *DriverController {
	return &DriverController{service: service, timeout: timeout}
}

// Register handles POST /driver/register
func (dc *DriverController) Register(w http.ResponseWriter, r *http.Request) {
	var in models.DriverRegistration
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	if in.Name == "" || in.Phone == "" || in.DrivingLicense == "" || in.Password == "" {
		badRequest(w, "Name, phone, driving license and password are required")
		return
	}

	ctx, cancel := withTimeout(r, dc.timeout)
	defer cancel()
	driver, err := dc.service.Register(ctx, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Driver Registered Successfully", driver)
}

// Login handles POST /driver/login
func (dc *DriverController) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.DriverLogin
	if err := decodeJSON(r, &creds); err != nil {
		respondError(w, r, err)
		return
	}
	if creds.Phone == "" || creds.Password == "" {
		badRequest(w, "Missing phone or password")
		return
	}

	ctx, cancel := withTimeout(r, dc.timeout)
	defer cancel()
	session, err := dc.service.Login(ctx, creds.Phone, creds.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Driver Logged In Successfully", session)
}

// GetDrivers handles GET /driver/get-drivers?page=&limit=&search=
func (dc *DriverController) GetDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, dc.timeout)
	defer cancel()
	res, err := dc.service.List(ctx, r.URL.Query().Get("search"), pageFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Drivers Fetched Successfully", res)
}

// EditDriver handles PUT /driver/edit-driver/{id}
func (dc *DriverController) EditDriver(w http.ResponseWriter, r *http.Request) {
	var u models.DriverUpdate
	if err := decodeJSON(r, &u); err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := withTimeout(r, dc.timeout)
	defer cancel()
	driver, err := dc.service.Edit(ctx, mux.Vars(r)["id"], u)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Driver details Updated Successfully", driver)
}

// DeleteDriver handles DELETE /driver/delete-driver/{id}?page=&limit=
func (dc *DriverController) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, dc.timeout)
	defer cancel()
	res, err := dc.service.SoftDelete(ctx, mux.Vars(r)["id"], pageFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Driver has been Deleted Successfully :)", res)
}
