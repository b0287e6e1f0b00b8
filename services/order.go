package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"wholesale-delivery/errs"
	"wholesale-delivery/events"
	"wholesale-delivery/models"
)

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	List(ctx context.Context, f models.OrderFilter, p models.Page) ([]models.Order, int64, error)
	UpdateCollected(ctx context.Context, id primitive.ObjectID, amount models.Money, status models.OrderStatus) (*models.Order, error)
}

// StockStore is the inventory as seen by order placement.
type StockStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.InventoryItem, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.InventoryItem, error)
	Reserve(ctx context.Context, id primitive.ObjectID, qty int) (bool, error)
	Release(ctx context.Context, id primitive.ObjectID, qty int) error
}

type VendorLookup interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Vendor, error)
}

type DriverLookup interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Driver, error)
}

// OrderService places orders and records payments
type OrderService struct {
	orders    OrderStore
	stock     StockStore
	vendors   VendorLookup
	drivers   DriverLookup
	publisher events.Publisher
}

func NewOrderService(orders OrderStore, stock StockStore, vendors VendorLookup, drivers DriverLookup, publisher events.Publisher) *OrderService {
	return &OrderService{
		orders:    orders,
		stock:     stock,
		vendors:   vendors,
		drivers:   drivers,
		publisher: publisher,
	}
}

type reservation struct {
	id  primitive.ObjectID
	qty int
}

// AddOrder validates the request, reserves stock item by item and stores
// the order. Any failure after the first reservation gives every reserved
// unit back, so a failed order leaves stock untouched.
func (s *OrderService) AddOrder(ctx context.Context, in models.OrderInput) (*models.Order, error) {
	if len(in.Products) == 0 {
		return nil, errs.New(errs.InvalidInput, "Order must contain at least one product")
	}
	vendorID, err := parseID(in.Vendor, "vendor")
	if err != nil {
		return nil, err
	}
	driverID, err := parseID(in.Driver, "truck driver")
	if err != nil {
		return nil, err
	}

	lines := make([]models.LineItem, 0, len(in.Products))
	total := models.Money{}
	for _, p := range in.Products {
		if p.Quantity < 1 {
			return nil, errs.Newf(errs.InvalidInput, "Invalid quantity for product %s", p.Product)
		}
		productID, err := parseID(p.Product, "product")
		if err != nil {
			return nil, err
		}
		item, err := s.stock.FindByID(ctx, productID)
		if err != nil {
			return nil, internal("find product", err)
		}
		if item == nil {
			return nil, errs.Newf(errs.NotFound, "Product not found: %s", p.Product)
		}
		if item.Quantity < p.Quantity {
			return nil, errs.Newf(errs.InsufficientStock, "Insufficient stock for product %s", p.Product)
		}
		total = total.Plus(item.Price.Times(p.Quantity))
		lines = append(lines, models.LineItem{Product: productID, Quantity: p.Quantity})
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		return nil, internal("find vendor", err)
	}
	if vendor == nil {
		return nil, errs.Newf(errs.NotFound, "Vendor not found: %s", in.Vendor)
	}
	driver, err := s.drivers.FindByID(ctx, driverID)
	if err != nil {
		return nil, internal("find driver", err)
	}
	if driver == nil {
		return nil, errs.Newf(errs.NotFound, "Truck driver not found: %s", in.Driver)
	}

	if !in.TotalBillAmount.IsZero() && !in.TotalBillAmount.Equal(total.Decimal) {
		return nil, errs.Newf(errs.InvalidAmount, "Total bill amount %s does not match the ordered products (%s)", in.TotalBillAmount.String(), total.String())
	}
	if in.CollectedAmount.IsNegative() {
		return nil, errs.New(errs.InvalidAmount, "Collected amount cannot be negative")
	}
	if in.CollectedAmount.GreaterThan(total.Decimal) {
		return nil, errs.New(errs.InvalidAmount, "Collected amount cannot exceed total bill amount")
	}

	reserved := make([]reservation, 0, len(lines))
	for _, line := range lines {
		ok, err := s.stock.Reserve(ctx, line.Product, line.Quantity)
		if err != nil {
			s.release(ctx, reserved)
			return nil, internal("reserve stock", err)
		}
		if !ok {
			s.release(ctx, reserved)
			return nil, errs.Newf(errs.InsufficientStock, "Insufficient stock for product %s", line.Product.Hex())
		}
		reserved = append(reserved, reservation{id: line.Product, qty: line.Quantity})
	}

	order := &models.Order{
		Products:        lines,
		Driver:          driverID,
		Vendor:          vendorID,
		TotalBillAmount: total,
		CollectedAmount: in.CollectedAmount,
		Status:          models.StatusFor(in.CollectedAmount, total),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.release(ctx, reserved)
		return nil, internal("create order", err)
	}

	s.publish(ctx, events.NewOrderEvent(events.OrderCreated, order))
	return order, nil
}

func (s *OrderService) release(ctx context.Context, reserved []reservation) {
	ctx, cancel := detached(ctx)
	defer cancel()
	for _, r := range reserved {
		if err := s.stock.Release(ctx, r.id, r.qty); err != nil {
			log.Printf("ERROR: release %d units of %s: %v", r.qty, r.id.Hex(), err)
		}
	}
}

func (s *OrderService) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		log.Printf("ERROR: publish %s for order %s: %v", e.Type, e.OrderID, err)
	}
}

// GetOrders lists orders newest first with vendor, driver and products
// resolved, deleted records included.
func (s *OrderService) GetOrders(ctx context.Context, f models.OrderFilter, p models.Page) (models.PageResult[models.OrderDetail], error) {
	orders, total, err := s.orders.List(ctx, f, p)
	if err != nil {
		return models.PageResult[models.OrderDetail]{}, internal("list orders", err)
	}
	details, err := s.populate(ctx, orders)
	if err != nil {
		return models.PageResult[models.OrderDetail]{}, err
	}
	return models.NewPageResult(details, total, p), nil
}

// UpdateCollectedAmount records a payment. The collected amount may only
// grow, never beyond the bill, and the order completes when it reaches it.
// A non-zero driver restricts the update to that driver's orders; other
// orders are reported as not found.
func (s *OrderService) UpdateCollectedAmount(ctx context.Context, orderID string, amount models.Money, driver primitive.ObjectID) (*models.OrderDetail, error) {
	id, err := parseID(orderID, "order")
	if err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, errs.New(errs.InvalidAmount, "Collected amount cannot be negative")
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, internal("find order", err)
	}
	if order == nil || (!driver.IsZero() && order.Driver != driver) {
		return nil, errs.New(errs.NotFound, "Order not found")
	}
	if amount.GreaterThan(order.TotalBillAmount.Decimal) {
		return nil, errs.New(errs.InvalidAmount, "Collected amount cannot exceed total bill amount")
	}
	if amount.LessThan(order.CollectedAmount.Decimal) {
		return nil, errs.New(errs.InvalidAmount, "Collected amount cannot be lower than the amount already collected")
	}

	status := models.StatusFor(amount, order.TotalBillAmount)
	updated, err := s.orders.UpdateCollected(ctx, id, amount, status)
	if err != nil {
		return nil, internal("update order", err)
	}
	if updated == nil {
		// A concurrent payment raised the amount past this one.
		return nil, errs.New(errs.InvalidAmount, "Collected amount cannot be lower than the amount already collected")
	}

	s.publish(ctx, events.NewOrderEvent(events.OrderPaymentUpdated, updated))

	details, err := s.populate(ctx, []models.Order{*updated})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// populate resolves references with one batched lookup per collection.
func (s *OrderService) populate(ctx context.Context, orders []models.Order) ([]models.OrderDetail, error) {
	vendorIDs, driverIDs, productIDs := idSet{}, idSet{}, idSet{}
	for _, o := range orders {
		vendorIDs.add(o.Vendor)
		driverIDs.add(o.Driver)
		for _, line := range o.Products {
			productIDs.add(line.Product)
		}
	}

	vendors, err := s.vendors.FindByIDs(ctx, vendorIDs.ids)
	if err != nil {
		return nil, internal("resolve vendors", err)
	}
	drivers, err := s.drivers.FindByIDs(ctx, driverIDs.ids)
	if err != nil {
		return nil, internal("resolve drivers", err)
	}
	products, err := s.stock.FindByIDs(ctx, productIDs.ids)
	if err != nil {
		return nil, internal("resolve products", err)
	}

	vendorByID := make(map[primitive.ObjectID]*models.Vendor, len(vendors))
	for i := range vendors {
		vendorByID[vendors[i].ID] = &vendors[i]
	}
	driverByID := make(map[primitive.ObjectID]*models.Driver, len(drivers))
	for i := range drivers {
		drivers[i].Password = ""
		driverByID[drivers[i].ID] = &drivers[i]
	}
	productByID := make(map[primitive.ObjectID]*models.InventoryItem, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}

	details := make([]models.OrderDetail, 0, len(orders))
	for _, o := range orders {
		lines := make([]models.LineItemDetail, 0, len(o.Products))
		for _, line := range o.Products {
			lines = append(lines, models.LineItemDetail{Product: productByID[line.Product], Quantity: line.Quantity})
		}
		details = append(details, models.OrderDetail{
			ID:              o.ID,
			Products:        lines,
			Driver:          driverByID[o.Driver],
			Vendor:          vendorByID[o.Vendor],
			TotalBillAmount: o.TotalBillAmount,
			CollectedAmount: o.CollectedAmount,
			Status:          o.Status,
			CreatedAt:       o.CreatedAt,
			UpdatedAt:       o.UpdatedAt,
		})
	}
	return details, nil
}

// idSet keeps ids unique in insertion order
type idSet struct {
	ids  []primitive.ObjectID
	seen map[primitive.ObjectID]bool
}

func (s *idSet) add(id primitive.ObjectID) {
	if s.seen == nil {
		s.seen = map[primitive.ObjectID]bool{}
	}
	if !s.seen[id] {
		s.seen[id] = true
		s.ids = append(s.ids, id)
	}
}
