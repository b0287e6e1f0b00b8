package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wholesale-delivery/errs"
	"wholesale-delivery/models"
	"wholesale-delivery/utils"
)

type DriverStore interface {
	Create(ctx context.Context, driver *models.Driver) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	FindByPhone(ctx context.Context, phone string) (*models.Driver, error)
	FindDuplicate(ctx context.Context, exclude primitive.ObjectID, name, phone, license string) (*models.Driver, error)
	List(ctx context.Context, search string, p models.Page) ([]models.Driver, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, u models.DriverUpdate) (*models.Driver, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// Revoker refuses further use of an account's issued tokens.
type Revoker interface {
	Revoke(ctx context.Context, subject string) error
}

// DriverService manages truck drivers and their logins
type DriverService struct {
	drivers     DriverStore
	tokens      TokenIssuer
	revocations Revoker
}

func NewDriverService(drivers DriverStore, tokens TokenIssuer, revocations Revoker) *DriverService {
	return &DriverService{drivers: drivers, tokens: tokens, revocations: revocations}
}

func (s *DriverService) Register(ctx context.Context, in models.DriverRegistration) (*models.Driver, error) {
	dup, err := s.drivers.FindDuplicate(ctx, primitive.NilObjectID, "", in.Phone, in.DrivingLicense)
	if err != nil {
		return nil, internal("find driver", err)
	}
	if dup != nil {
		return nil, errs.New(errs.Conflict, "Driver with this phone or driving license already exists")
	}

	hashed, err := utils.HashPassword(in.Password, utils.DriverPasswordCost)
	if err != nil {
		return nil, internal("hash password", err)
	}

	driver := &models.Driver{
		Name:           in.Name,
		Address:        in.Address,
		Phone:          in.Phone,
		DrivingLicense: in.DrivingLicense,
		Password:       hashed,
	}
	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, storeErr("create driver", err)
	}
	driver.Password = ""
	return driver, nil
}

// Login only succeeds for drivers that have not been deleted.
func (s *DriverService) Login(ctx context.Context, phone, password string) (*models.DriverSession, error) {
	driver, err := s.drivers.FindByPhone(ctx, phone)
	if err != nil {
		return nil, internal("find driver", err)
	}
	if driver == nil || !utils.CheckPassword(driver.Password, password) {
		return nil, errs.New(errs.Unauthorized, "Invalid phone or password")
	}

	token, err := s.tokens.Issue(driver.ID.Hex(), utils.RoleDriver)
	if err != nil {
		return nil, internal("issue token", err)
	}
	driver.Password = ""
	return &models.DriverSession{Driver: driver, Token: token}, nil
}

// List returns active drivers newest first. search matches name or address.
func (s *DriverService) List(ctx context.Context, search string, p models.Page) (models.PageResult[models.Driver], error) {
	drivers, total, err := s.drivers.List(ctx, search, p)
	if err != nil {
		return models.PageResult[models.Driver]{}, internal("list drivers", err)
	}
	for i := range drivers {
		drivers[i].Password = ""
	}
	return models.NewPageResult(drivers, total, p), nil
}

// Edit applies the provided fields. Name, phone and license must stay
// unique among active drivers.
func (s *DriverService) Edit(ctx context.Context, driverID string, u models.DriverUpdate) (*models.Driver, error) {
	id, err := parseID(driverID, "driver")
	if err != nil {
		return nil, err
	}
	if err := notBlank(map[string]*string{
		"Name":            u.Name,
		"Phone":           u.Phone,
		"Driving license": u.DrivingLicense,
	}); err != nil {
		return nil, err
	}
	current, err := s.drivers.FindByID(ctx, id)
	if err != nil {
		return nil, internal("find driver", err)
	}
	if current == nil {
		return nil, errs.New(errs.NotFound, "Driver not found")
	}

	var name, phone, license string
	if u.Name != nil && *u.Name != current.Name {
		name = *u.Name
	}
	if u.Phone != nil && *u.Phone != current.Phone {
		phone = *u.Phone
	}
	if u.DrivingLicense != nil && *u.DrivingLicense != current.DrivingLicense {
		license = *u.DrivingLicense
	}
	dup, err := s.drivers.FindDuplicate(ctx, id, name, phone, license)
	if err != nil {
		return nil, internal("find driver", err)
	}
	if dup != nil {
		return nil, errs.New(errs.Conflict, "Another driver already uses this name, phone or driving license")
	}

	updated, err := s.drivers.Update(ctx, id, u)
	if err != nil {
		return nil, storeErr("update driver", err)
	}
	if updated == nil {
		return nil, errs.New(errs.NotFound, "Driver not found")
	}
	updated.Password = ""
	return updated, nil
}

// SoftDelete hides the driver, revokes its tokens and returns the
// requested page of remaining drivers.
func (s *DriverService) SoftDelete(ctx context.Context, driverID string, p models.Page) (models.PageResult[models.Driver], error) {
	id, err := parseID(driverID, "driver")
	if err != nil {
		return models.PageResult[models.Driver]{}, err
	}
	ok, err := s.drivers.SoftDelete(ctx, id)
	if err != nil {
		return models.PageResult[models.Driver]{}, internal("delete driver", err)
	}
	if !ok {
		return models.PageResult[models.Driver]{}, errs.New(errs.NotFound, "Driver not found")
	}

	if err := s.revocations.Revoke(ctx, utils.AccountKey(utils.RoleDriver, id.Hex())); err != nil {
		log.Printf("ERROR: revoke sessions of driver %s: %v", id.Hex(), err)
	}
	return s.List(ctx, "", p)
}

// storeErr keeps Conflict from unique indexes and hides everything else.
func storeErr(msg string, err error) error {
	if errs.Is(err, errs.Conflict) {
		return err
	}
	return internal(msg, err)
}
