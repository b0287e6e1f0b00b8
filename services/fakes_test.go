package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wholesale-delivery/events"
	"wholesale-delivery/models"
)

var errStore = errors.New("store unavailable")

// clock hands out strictly increasing timestamps so newest-first order is
// deterministic.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.t.IsZero() {
		c.t = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	c.t = c.t.Add(time.Second)
	return c.t
}

// page applies newest-first offset/limit to ids stored oldest first.
func page[T any](ordered []T, p models.Page) []T {
	out := make([]T, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		out = append(out, ordered[i])
	}
	start := int(p.Skip())
	if start >= len(out) {
		return nil
	}
	end := start + int(p.Limit)
	if end > len(out) {
		end = len(out)
	}
	return out[start:end]
}

type fakeAdmins struct {
	mu     sync.Mutex
	admins map[string]*models.Admin
	err    error
}

func newFakeAdmins() *fakeAdmins {
	return &fakeAdmins{admins: map[string]*models.Admin{}}
}

func (f *fakeAdmins) Create(_ context.Context, a *models.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	a.ID = primitive.NewObjectID()
	cp := *a
	f.admins[a.Email] = &cp
	return nil
}

func (f *fakeAdmins) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.admins[email]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdmins) MarkVerified(_ context.Context, id primitive.ObjectID, token string) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.ID == id && a.VerifyToken == token && token != "" {
			a.IsVerified = true
			a.VerifyToken = ""
			a.VerifyTokenExpiry = nil
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeDrivers struct {
	mu      sync.Mutex
	clock   clock
	drivers []*models.Driver
}

func (f *fakeDrivers) Create(_ context.Context, d *models.Driver) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d.ID = primitive.NewObjectID()
	d.CreatedAt = f.clock.next()
	cp := *d
	f.drivers = append(f.drivers, &cp)
	return nil
}

func (f *fakeDrivers) find(pred func(*models.Driver) bool) *models.Driver {
	for _, d := range f.drivers {
		if !d.IsDeleted && pred(d) {
			cp := *d
			return &cp
		}
	}
	return nil
}

func (f *fakeDrivers) FindByID(_ context.Context, id primitive.ObjectID) (*models.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.find(func(d *models.Driver) bool { return d.ID == id }), nil
}

func (f *fakeDrivers) FindByPhone(_ context.Context, phone string) (*models.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.find(func(d *models.Driver) bool { return d.Phone == phone }), nil
}

func (f *fakeDrivers) FindDuplicate(_ context.Context, exclude primitive.ObjectID, name, phone, license string) (*models.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.find(func(d *models.Driver) bool {
		if d.ID == exclude {
			return false
		}
		return (name != "" && d.Name == name) || (phone != "" && d.Phone == phone) || (license != "" && d.DrivingLicense == license)
	}), nil
}

func (f *fakeDrivers) List(_ context.Context, search string, p models.Page) ([]models.Driver, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []models.Driver
	needle := strings.ToLower(search)
	for _, d := range f.drivers {
		if d.IsDeleted {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(d.Name), needle) && !strings.Contains(strings.ToLower(d.Address), needle) {
			continue
		}
		matched = append(matched, *d)
	}
	return page(matched, p), int64(len(matched)), nil
}

func (f *fakeDrivers) Update(_ context.Context, id primitive.ObjectID, u models.DriverUpdate) (*models.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.drivers {
		if d.ID != id || d.IsDeleted {
			continue
		}
		if u.Name != nil {
			d.Name = *u.Name
		}
		if u.Address != nil {
			d.Address = *u.Address
		}
		if u.Phone != nil {
			d.Phone = *u.Phone
		}
		if u.DrivingLicense != nil {
			d.DrivingLicense = *u.DrivingLicense
		}
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeDrivers) SoftDelete(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.drivers {
		if d.ID == id && !d.IsDeleted {
			d.IsDeleted = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDrivers) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Driver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Driver
	for _, id := range ids {
		for _, d := range f.drivers {
			if d.ID == id {
				out = append(out, *d)
			}
		}
	}
	return out, nil
}

type fakeVendors struct {
	mu      sync.Mutex
	clock   clock
	vendors []*models.Vendor
}

func (f *fakeVendors) Create(_ context.Context, v *models.Vendor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v.ID = primitive.NewObjectID()
	v.CreatedAt = f.clock.next()
	cp := *v
	f.vendors = append(f.vendors, &cp)
	return nil
}

func (f *fakeVendors) find(pred func(*models.Vendor) bool) *models.Vendor {
	for _, v := range f.vendors {
		if !v.IsDeleted && pred(v) {
			cp := *v
			return &cp
		}
	}
	return nil
}

func (f *fakeVendors) FindByID(_ context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.find(func(v *models.Vendor) bool { return v.ID == id }), nil
}

func (f *fakeVendors) FindDuplicate(_ context.Context, exclude primitive.ObjectID, name, email, phone string) (*models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.find(func(v *models.Vendor) bool {
		if v.ID == exclude {
			return false
		}
		return (name != "" && v.Name == name) || (email != "" && v.Email == email) || (phone != "" && v.Phone == phone)
	}), nil
}

func (f *fakeVendors) List(_ context.Context, p models.Page) ([]models.Vendor, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var active []models.Vendor
	for _, v := range f.vendors {
		if !v.IsDeleted {
			active = append(active, *v)
		}
	}
	return page(active, p), int64(len(active)), nil
}

func (f *fakeVendors) Update(_ context.Context, id primitive.ObjectID, u models.VendorUpdate) (*models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.vendors {
		if v.ID != id || v.IsDeleted {
			continue
		}
		if u.Name != nil {
			v.Name = *u.Name
		}
		if u.Email != nil {
			v.Email = *u.Email
		}
		if u.Phone != nil {
			v.Phone = *u.Phone
		}
		if u.Address != nil {
			v.Address = *u.Address
		}
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeVendors) SoftDelete(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.vendors {
		if v.ID == id && !v.IsDeleted {
			v.IsDeleted = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVendors) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Vendor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Vendor
	for _, id := range ids {
		for _, v := range f.vendors {
			if v.ID == id {
				out = append(out, *v)
			}
		}
	}
	return out, nil
}

type fakeInventory struct {
	mu    sync.Mutex
	clock clock
	items []*models.InventoryItem

	createErr  error
	reserveErr error
	// reserveHook runs before each Reserve; tests use it to change stock
	// between validation and reservation.
	reserveHook func(id primitive.ObjectID)
	reserves    int
	releases    int
}

func (f *fakeInventory) add(name, price string, qty int) *models.InventoryItem {
	item := &models.InventoryItem{Name: name, Price: models.MustMoney(price), Quantity: qty, Category: models.CategoryGroceries}
	_ = f.Create(context.Background(), item)
	return item
}

func (f *fakeInventory) quantity(id primitive.ObjectID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id {
			return it.Quantity
		}
	}
	return -1
}

func (f *fakeInventory) Create(_ context.Context, item *models.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	item.ID = primitive.NewObjectID()
	item.CreatedAt = f.clock.next()
	cp := *item
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeInventory) FindByID(_ context.Context, id primitive.ObjectID) (*models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id && !it.IsDeleted {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventory) FindByName(_ context.Context, exclude primitive.ObjectID, name string) (*models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.Name == name && it.ID != exclude && !it.IsDeleted {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventory) List(_ context.Context, p models.Page) ([]models.InventoryItem, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var active []models.InventoryItem
	for _, it := range f.items {
		if !it.IsDeleted {
			active = append(active, *it)
		}
	}
	return page(active, p), int64(len(active)), nil
}

func (f *fakeInventory) Update(_ context.Context, id primitive.ObjectID, in models.InventoryInput, images []models.Image) (*models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id && !it.IsDeleted {
			it.Name, it.Price, it.Category, it.Images = in.Name, in.Price, in.Category, images
			if in.SetQuantity {
				it.Quantity = in.Quantity
			}
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventory) SoftDelete(_ context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id && !it.IsDeleted {
			it.IsDeleted = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInventory) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.InventoryItem
	for _, id := range ids {
		for _, it := range f.items {
			if it.ID == id {
				out = append(out, *it)
			}
		}
	}
	return out, nil
}

func (f *fakeInventory) Reserve(_ context.Context, id primitive.ObjectID, qty int) (bool, error) {
	if f.reserveHook != nil {
		f.reserveHook(id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reserves++
	if f.reserveErr != nil {
		return false, f.reserveErr
	}
	for _, it := range f.items {
		if it.ID == id && !it.IsDeleted && it.Quantity >= qty {
			it.Quantity -= qty
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInventory) Release(_ context.Context, id primitive.ObjectID, qty int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releases++
	for _, it := range f.items {
		if it.ID == id {
			it.Quantity += qty
		}
	}
	return nil
}

type fakeOrders struct {
	mu        sync.Mutex
	clock     clock
	orders    []*models.Order
	createErr error
}

func (f *fakeOrders) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

func (f *fakeOrders) Create(_ context.Context, o *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	o.ID = primitive.NewObjectID()
	o.CreatedAt = f.clock.next()
	cp := *o
	f.orders = append(f.orders, &cp)
	return nil
}

func (f *fakeOrders) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrders) List(_ context.Context, flt models.OrderFilter, p models.Page) ([]models.Order, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []models.Order
	for _, o := range f.orders {
		if !flt.Driver.IsZero() && o.Driver != flt.Driver {
			continue
		}
		if flt.Status != "" && o.Status != flt.Status {
			continue
		}
		matched = append(matched, *o)
	}
	return page(matched, p), int64(len(matched)), nil
}

func (f *fakeOrders) UpdateCollected(_ context.Context, id primitive.ObjectID, amount models.Money, status models.OrderStatus) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.ID != id {
			continue
		}
		if amount.LessThan(o.CollectedAmount.Decimal) || amount.GreaterThan(o.TotalBillAmount.Decimal) {
			return nil, nil
		}
		o.CollectedAmount = amount
		o.Status = status
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Type
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeImages struct {
	mu      sync.Mutex
	saved   map[string]bool
	saveErr error
	n       int
}

func newFakeImages() *fakeImages {
	return &fakeImages{saved: map[string]bool{}}
}

func (f *fakeImages) Save(_ context.Context, u models.ImageUpload) (models.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil && f.n > 0 {
		return models.Image{}, f.saveErr
	}
	f.n++
	key := u.Filename + "-key"
	f.saved[key] = true
	return models.Image{URL: "http://img/" + key, Name: u.Filename, Key: key}, nil
}

func (f *fakeImages) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.saved, key)
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(subject, role string) (string, error) {
	return role + "-token-" + subject, nil
}
