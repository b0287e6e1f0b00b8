package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wholesale-delivery/errs"
	"wholesale-delivery/models"
)

type InventoryStore interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.InventoryItem, error)
	FindByName(ctx context.Context, exclude primitive.ObjectID, name string) (*models.InventoryItem, error)
	List(ctx context.Context, p models.Page) ([]models.InventoryItem, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, in models.InventoryInput, images []models.Image) (*models.InventoryItem, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// ImageStore keeps uploaded image blobs.
type ImageStore interface {
	Save(ctx context.Context, upload models.ImageUpload) (models.Image, error)
	Delete(ctx context.Context, key string) error
}

// InventoryService manages stocked items and their pictures
type InventoryService struct {
	items  InventoryStore
	images ImageStore
}

func NewInventoryService(items InventoryStore, images ImageStore) *InventoryService {
	return &InventoryService{items: items, images: images}
}

func validateItem(in models.InventoryInput, uploads int) error {
	switch {
	case in.Name == "":
		return errs.New(errs.InvalidInput, "Item name is required")
	case !in.Price.IsPositive():
		return errs.New(errs.InvalidInput, "Price must be greater than zero")
	case in.Quantity < 0:
		return errs.New(errs.InvalidInput, "Quantity cannot be negative")
	case !models.IsValidCategory(in.Category):
		return errs.Newf(errs.InvalidInput, "Unknown category %q", in.Category)
	case uploads > models.MaxItemImages:
		return errs.Newf(errs.InvalidInput, "At most %d images can be uploaded", models.MaxItemImages)
	}
	return nil
}

func (s *InventoryService) List(ctx context.Context, p models.Page) (models.PageResult[models.InventoryItem], error) {
	items, total, err := s.items.List(ctx, p)
	if err != nil {
		return models.PageResult[models.InventoryItem]{}, internal("list inventory", err)
	}
	return models.NewPageResult(items, total, p), nil
}

// Add stores the uploads and then the item. Uploaded blobs are removed
// again when the item cannot be saved.
func (s *InventoryService) Add(ctx context.Context, in models.InventoryInput, uploads []models.ImageUpload) (*models.InventoryItem, error) {
	if err := validateItem(in, len(uploads)); err != nil {
		return nil, err
	}
	dup, err := s.items.FindByName(ctx, primitive.NilObjectID, in.Name)
	if err != nil {
		return nil, internal("find item", err)
	}
	if dup != nil {
		return nil, errs.New(errs.Conflict, "Item with this name already exists")
	}

	saved, err := s.saveUploads(ctx, uploads)
	if err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		Name:     in.Name,
		Price:    in.Price,
		Quantity: in.Quantity,
		Category: in.Category,
		Images:   saved,
	}
	if err := s.items.Create(ctx, item); err != nil {
		s.discard(ctx, saved)
		return nil, storeErr("create item", err)
	}
	return item, nil
}

// Edit replaces the item's fields. The final image list is keepImages
// followed by the new uploads.
func (s *InventoryService) Edit(ctx context.Context, itemID string, in models.InventoryInput, uploads []models.ImageUpload) (*models.InventoryItem, error) {
	id, err := parseID(itemID, "item")
	if err != nil {
		return nil, err
	}
	if err := validateItem(in, len(uploads)); err != nil {
		return nil, err
	}
	current, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, internal("find item", err)
	}
	if current == nil {
		return nil, errs.New(errs.NotFound, "Item not found")
	}
	if in.Name != current.Name {
		dup, err := s.items.FindByName(ctx, id, in.Name)
		if err != nil {
			return nil, internal("find item", err)
		}
		if dup != nil {
			return nil, errs.New(errs.Conflict, "Item with this name already exists")
		}
	}

	saved, err := s.saveUploads(ctx, uploads)
	if err != nil {
		return nil, err
	}
	images := make([]models.Image, 0, len(in.KeepImages)+len(saved))
	images = append(images, in.KeepImages...)
	images = append(images, saved...)

	updated, err := s.items.Update(ctx, id, in, images)
	if err != nil {
		s.discard(ctx, saved)
		return nil, storeErr("update item", err)
	}
	if updated == nil {
		s.discard(ctx, saved)
		return nil, errs.New(errs.NotFound, "Item not found")
	}
	return updated, nil
}

func (s *InventoryService) SoftDelete(ctx context.Context, itemID string, p models.Page) (models.PageResult[models.InventoryItem], error) {
	id, err := parseID(itemID, "item")
	if err != nil {
		return models.PageResult[models.InventoryItem]{}, err
	}
	ok, err := s.items.SoftDelete(ctx, id)
	if err != nil {
		return models.PageResult[models.InventoryItem]{}, internal("delete item", err)
	}
	if !ok {
		return models.PageResult[models.InventoryItem]{}, errs.New(errs.NotFound, "Item not found")
	}
	return s.List(ctx, p)
}

func (s *InventoryService) saveUploads(ctx context.Context, uploads []models.ImageUpload) ([]models.Image, error) {
	saved := make([]models.Image, 0, len(uploads))
	for _, u := range uploads {
		img, err := s.images.Save(ctx, u)
		if err != nil {
			s.discard(ctx, saved)
			return nil, internal("save image", err)
		}
		saved = append(saved, img)
	}
	return saved, nil
}

func (s *InventoryService) discard(ctx context.Context, images []models.Image) {
	ctx, cancel := detached(ctx)
	defer cancel()
	for _, img := range images {
		if err := s.images.Delete(ctx, img.Key); err != nil {
			log.Printf("ERROR: discard image %s: %v", img.Key, err)
		}
	}
}
