package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"wholesale-delivery/models"
)

type VendorManager interface {
	Register(ctx context.Context, in models.VendorInput) (*models.Vendor, error)
	List(ctx context.Context, p models.Page) (models.PageResult[models.Vendor], error)
	Edit(ctx context.Context, vendorID string, u models.VendorUpdate) (*models.Vendor, error)
	SoftDelete(ctx context.Context, vendorID string, p models.Page) (models.PageResult[models.Vendor], error)
}

// VendorController handles vendor records
type VendorController struct {
	service VendorManager
	timeout time.Duration
}

func NewVendorController(service VendorManager, timeout time.Duration) *VendorController {
	return &VendorController{service: service, timeout: timeout}
}

// Register handles POST /vendor/register
func (vc *VendorController) Register(w http.ResponseWriter, r *http.Request) {
	var in models.VendorInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		badRequest(w, "Name, email and phone are required")
		return
	}

	ctx, cancel := withTimeout(r, vc.timeout)
	defer cancel()
	vendor, err := vc.service.Register(ctx, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Vendor Registered Successfully", vendor)
}

// GetVendors handles GET /vendor/get-vendors?page=&limit=
func (vc *VendorController) GetVendors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, vc.timeout)
	defer cancel()
	res, err := vc.service.List(ctx, pageFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Vendors Fetched Successfully", res)
}

// EditVendor handles PUT /vendor/edit-vendor/{id}
func (vc *VendorController) EditVendor(w http.ResponseWriter, r *http.Request) {
	var u models.VendorUpdate
	if err := decodeJSON(r, &u); err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := withTimeout(r, vc.timeout)
	defer cancel()
	vendor, err := vc.service.Edit(ctx, mux.Vars(r)["id"], u)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Vendor details Updated Successfully", vendor)
}

// DeleteVendor handles DELETE /vendor/delete-vendor/{id}?page=&limit=
func (vc *VendorController) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, vc.timeout)
	defer cancel()
	res, err := vc.service.SoftDelete(ctx, mux.Vars(r)["id"], pageFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Vendor has been Deleted Successfully :)", res)
}
