package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wholesale-delivery/errs"
	"wholesale-delivery/models"
)

type VendorStore interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error)
	FindDuplicate(ctx context.Context, exclude primitive.ObjectID, name, email, phone string) (*models.Vendor, error)
	List(ctx context.Context, p models.Page) ([]models.Vendor, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, u models.VendorUpdate) (*models.Vendor, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// VendorService manages the shops orders are delivered to
type VendorService struct {
	vendors VendorStore
}

func NewVendorService(vendors VendorStore) *VendorService {
	return &VendorService{vendors: vendors}
}

func (s *VendorService) Register(ctx context.Context, in models.VendorInput) (*models.Vendor, error) {
	dup, err := s.vendors.FindDuplicate(ctx, primitive.NilObjectID, in.Name, in.Email, in.Phone)
	if err != nil {
		return nil, internal("find vendor", err)
	}
	if dup != nil {
		return nil, errs.New(errs.Conflict, "Vendor with this name, email or phone already exists")
	}

	vendor := &models.Vendor{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := s.vendors.Create(ctx, vendor); err != nil {
		return nil, storeErr("create vendor", err)
	}
	return vendor, nil
}

func (s *VendorService) List(ctx context.Context, p models.Page) (models.PageResult[models.Vendor], error) {
	vendors, total, err := s.vendors.List(ctx, p)
	if err != nil {
		return models.PageResult[models.Vendor]{}, internal("list vendors", err)
	}
	return models.NewPageResult(vendors, total, p), nil
}

func (s *VendorService) Edit(ctx context.Context, vendorID string, u models.VendorUpdate) (*models.Vendor, error) {
	id, err := parseID(vendorID, "vendor")
	if err != nil {
		return nil, err
	}
	if err := notBlank(map[string]*string{
		"Name":  u.Name,
		"Email": u.Email,
		"Phone": u.Phone,
	}); err != nil {
		return nil, err
	}
	current, err := s.vendors.FindByID(ctx, id)
	if err != nil {
		return nil, internal("find vendor", err)
	}
	if current == nil {
		return nil, errs.New(errs.NotFound, "Vendor not found")
	}

	var name, email, phone string
	if u.Name != nil && *u.Name != current.Name {
		name = *u.Name
	}
	if u.Email != nil && *u.Email != current.Email {
		email = *u.Email
	}
	if u.Phone != nil && *u.Phone != current.Phone {
		phone = *u.Phone
	}
	dup, err := s.vendors.FindDuplicate(ctx, id, name, email, phone)
	if err != nil {
		return nil, internal("find vendor", err)
	}
	if dup != nil {
		return nil, errs.New(errs.Conflict, "Another vendor already uses this name, email or phone")
	}

	updated, err := s.vendors.Update(ctx, id, u)
	if err != nil {
		return nil, storeErr("update vendor", err)
	}
	if updated == nil {
		return nil, errs.New(errs.NotFound, "Vendor not found")
	}
	return updated, nil
}

func (s *VendorService) SoftDelete(ctx context.Context, vendorID string, p models.Page) (models.PageResult[models.Vendor], error) {
	id, err := parseID(vendorID, "vendor")
	if err != nil {
		return models.PageResult[models.Vendor]{}, err
	}
	ok, err := s.vendors.SoftDelete(ctx, id)
	if err != nil {
		return models.PageResult[models.Vendor]{}, internal("delete vendor", err)
	}
	if !ok {
		return models.PageResult[models.Vendor]{}, errs.New(errs.NotFound, "Vendor not found")
	}
	return s.List(ctx, p)
}
