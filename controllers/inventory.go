package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"wholesale-delivery/errs"
	"wholesale-delivery/models"
)

// MaxUploadMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const MaxUploadMemory = 10 << 20

type InventoryManager interface {
	List(ctx context.Context, p models.Page) (models.PageResult[models.InventoryItem], error)
	Add(ctx context.Context, in models.InventoryInput, uploads []models.ImageUpload) (*models.InventoryItem, error)
	Edit(ctx context.Context, itemID string, in models.InventoryInput, uploads []models.ImageUpload) (*models.InventoryItem, error)
	SoftDelete(ctx context.Context, itemID string, p models.Page) (models.PageResult[models.InventoryItem], error)
}

// InventoryController handles the product catalogue
type InventoryController struct {
	service InventoryManager
	timeout time.Duration
}

func NewInventoryController(service InventoryManager, timeout time.Duration) *InventoryController {
	return &InventoryController{service: service, timeout: timeout}
}

// GetInventory handles GET /inventory/get-inventory?page=&limit=
func (ic *InventoryController) GetInventory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, ic.timeout)
	defer cancel()
	res, err := ic.service.List(ctx, pageFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Inventory Fetched Successfully", res)
}

// AddItem handles POST /inventory/add-item (multipart/form-data)
func (ic *InventoryController) AddItem(w http.ResponseWriter, r *http.Request) {
	in, uploads, closeFiles, err := parseItemForm(r, false)
	if err != nil {
		respondError(w, r, err)
		return
	}
	defer closeFiles()

	ctx, cancel := withTimeout(r, ic.timeout)
	defer cancel()
	item, err := ic.service.Add(ctx, in, uploads)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Item Added to Inventory Successfully", item)
}

// EditItem handles PUT /inventory/edit-item/{id} (multipart/form-data).
// existingImages lists the stored images to keep.
func (ic *InventoryController) EditItem(w http.ResponseWriter, r *http.Request) {
	in, uploads, closeFiles, err := parseItemForm(r, true)
	if err != nil {
		respondError(w, r, err)
		return
	}
	defer closeFiles()

	ctx, cancel := withTimeout(r, ic.timeout)
	defer cancel()
	item, err := ic.service.Edit(ctx, mux.Vars(r)["id"], in, uploads)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Item details Updated Successfully", item)
}

// DeleteItem handles DELETE /inventory/delete-item/{id}?page=&limit=
func (ic *InventoryController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r, ic.timeout)
	defer cancel()
	res, err := ic.service.SoftDelete(ctx, mux.Vars(r)["id"], pageFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Item has been Deleted Successfully :)", res)
}

func parseItemForm(r *http.Request, edit bool) (models.InventoryInput, []models.ImageUpload, func(), error) {
	var in models.InventoryInput
	noop := func() {}

	if err := r.ParseMultipartForm(MaxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return in, nil, noop, errs.Wrap(errs.InvalidInput, "Invalid form data", err)
	}

	in.Name = strings.TrimSpace(r.FormValue("name"))
	in.Category = r.FormValue("category")

	if v := r.FormValue("price"); v != "" {
		price, err := models.NewMoney(v)
		if err != nil {
			return in, nil, noop, errs.Wrap(errs.InvalidInput, "Price must be a number", err)
		}
		in.Price = price
	}
	if v := r.FormValue("quantity"); v != "" {
		qty, err := strconv.Atoi(v)
		if err != nil {
			return in, nil, noop, errs.Wrap(errs.InvalidInput, "Quantity must be a whole number", err)
		}
		in.Quantity = qty
		in.SetQuantity = true
	}
	if edit {
		if v := r.FormValue("existingImages"); v != "" {
			if err := json.Unmarshal([]byte(v), &in.KeepImages); err != nil {
				return in, nil, noop, errs.Wrap(errs.InvalidInput, "existingImages must be a JSON array", err)
			}
		}
	}

	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = r.MultipartForm.File["images"]
	}
	if len(headers) > models.MaxItemImages {
		return in, nil, noop, errs.Newf(errs.InvalidInput, "At most %d images can be uploaded", models.MaxItemImages)
	}

	var files []multipart.File
	closeFiles := func() {
		for _, f := range files {
			f.Close()
		}
	}
	uploads := make([]models.ImageUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeFiles()
			return in, nil, noop, errs.Wrap(errs.InvalidInput, "Could not read uploaded image", err)
		}
		files = append(files, f)
		uploads = append(uploads, models.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        f,
		})
	}
	return in, uploads, closeFiles, nil
}
