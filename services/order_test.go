package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wholesale-delivery/errs"
	"wholesale-delivery/events"
	"wholesale-delivery/models"
)

type orderFixture struct {
	svc       *OrderService
	orders    *fakeOrders
	stock     *fakeInventory
	vendors   *fakeVendors
	drivers   *fakeDrivers
	publisher *recordingPublisher

	cement *models.InventoryItem
	vendor *models.Vendor
	driver *models.Driver
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		orders:    &fakeOrders{},
		stock:     &fakeInventory{},
		vendors:   &fakeVendors{},
		drivers:   &fakeDrivers{},
		publisher: &recordingPublisher{},
	}
	f.svc = NewOrderService(f.orders, f.stock, f.vendors, f.drivers, f.publisher)

	f.cement = f.stock.add("Cement", "5.00", 10)
	f.vendor = &models.Vendor{Name: "Acme", Email: "a@x.com", Phone: "1"}
	require.NoError(t, f.vendors.Create(context.Background(), f.vendor))
	f.driver = &models.Driver{Name: "Ann", Phone: "100", DrivingLicense: "L1", Password: "hash"}
	require.NoError(t, f.drivers.Create(context.Background(), f.driver))
	return f
}

func (f *orderFixture) input(qty int, collected string) models.OrderInput {
	return models.OrderInput{
		Vendor:          f.vendor.ID.Hex(),
		Driver:          f.driver.ID.Hex(),
		Products:        []models.LineItemInput{{Product: f.cement.ID.Hex(), Quantity: qty}},
		CollectedAmount: models.MustMoney(collected),
	}
}

func TestAddOrderFullyPaid(t *testing.T) {
	f := newOrderFixture(t)
	in := f.input(3, "15.00")
	in.TotalBillAmount = models.MustMoney("15.00")

	order, err := f.svc.AddOrder(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.True(t, order.TotalBillAmount.Equal(models.MustMoney("15").Decimal))
	assert.Equal(t, 7, f.stock.quantity(f.cement.ID))
	assert.Equal(t, 1, f.orders.count())
	assert.Equal(t, []events.Type{events.OrderCreated}, f.publisher.types())
}

func TestAddOrderPartialThenPaid(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.AddOrder(context.Background(), f.input(3, "10.00"))
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "15", order.TotalBillAmount.String(), "zero total means computed total")

	detail, err := f.svc.UpdateCollectedAmount(context.Background(), order.ID.Hex(), models.MustMoney("15.00"), primitive.NilObjectID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, detail.Status)
	require.NotNil(t, detail.Vendor)
	assert.Equal(t, "Acme", detail.Vendor.Name)
	require.NotNil(t, detail.Driver)
	assert.Empty(t, detail.Driver.Password)
	require.Len(t, detail.Products, 1)
	require.NotNil(t, detail.Products[0].Product)
	assert.Equal(t, "Cement", detail.Products[0].Product.Name)
	assert.Equal(t, 3, detail.Products[0].Quantity)

	assert.Equal(t, []events.Type{events.OrderCreated, events.OrderPaymentUpdated}, f.publisher.types())
}

func TestUpdateCollectedAmountBounds(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.svc.AddOrder(context.Background(), f.input(3, "10.00"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		amount string
	}{
		{"above total", "20"},
		{"below collected", "5"},
		{"negative", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.UpdateCollectedAmount(context.Background(), order.ID.Hex(), models.MustMoney(tt.amount), primitive.NilObjectID)
			assert.True(t, errs.Is(err, errs.InvalidAmount), "got %v", err)
		})
	}

	stored, _ := f.orders.FindByID(context.Background(), order.ID)
	assert.Equal(t, "10", stored.CollectedAmount.String(), "rejected updates change nothing")
	assert.Equal(t, models.OrderStatusPending, stored.Status)

	_, err = f.svc.UpdateCollectedAmount(context.Background(), order.ID.Hex(), models.MustMoney("10"), primitive.NilObjectID)
	assert.NoError(t, err, "same amount is allowed")

	_, err = f.svc.UpdateCollectedAmount(context.Background(), primitive.NewObjectID().Hex(), models.MustMoney("1"), primitive.NilObjectID)
	assert.True(t, errs.Is(err, errs.NotFound))
}

func TestAddOrderRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*orderFixture, *models.OrderInput)
		kind   errs.Kind
	}{
		{"no products", func(_ *orderFixture, in *models.OrderInput) { in.Products = nil }, errs.InvalidInput},
		{"zero quantity", func(_ *orderFixture, in *models.OrderInput) { in.Products[0].Quantity = 0 }, errs.InvalidInput},
		{"bad product id", func(_ *orderFixture, in *models.OrderInput) { in.Products[0].Product = "xyz" }, errs.InvalidInput},
		{"over order", func(_ *orderFixture, in *models.OrderInput) { in.Products[0].Quantity = 11 }, errs.InsufficientStock},
		{"unknown product", func(_ *orderFixture, in *models.OrderInput) {
			in.Products[0].Product = primitive.NewObjectID().Hex()
		}, errs.NotFound},
		{"unknown vendor", func(_ *orderFixture, in *models.OrderInput) { in.Vendor = primitive.NewObjectID().Hex() }, errs.NotFound},
		{"deleted driver", func(f *orderFixture, _ *models.OrderInput) {
			_, _ = f.drivers.SoftDelete(context.Background(), f.driver.ID)
		}, errs.NotFound},
		{"deleted product", func(f *orderFixture, _ *models.OrderInput) {
			_, _ = f.stock.SoftDelete(context.Background(), f.cement.ID)
		}, errs.NotFound},
		{"total mismatch", func(_ *orderFixture, in *models.OrderInput) { in.TotalBillAmount = models.MustMoney("14") }, errs.InvalidAmount},
		{"collected above total", func(_ *orderFixture, in *models.OrderInput) { in.CollectedAmount = models.MustMoney("16") }, errs.InvalidAmount},
		{"negative collected", func(_ *orderFixture, in *models.OrderInput) { in.CollectedAmount = models.MustMoney("-1") }, errs.InvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			in := f.input(3, "0")
			tt.mutate(f, &in)

			_, err := f.svc.AddOrder(context.Background(), in)
			assert.Equal(t, tt.kind, errs.KindOf(err), "got %v", err)
			assert.Equal(t, 10, f.stock.quantity(f.cement.ID), "stock unchanged")
			assert.Zero(t, f.orders.count(), "no order stored")
			assert.Empty(t, f.publisher.types())
		})
	}
}

func TestAddOrderReleasesReservationsWhenALaterItemRunsOut(t *testing.T) {
	f := newOrderFixture(t)
	sand := f.stock.add("Sand", "2.00", 4)
	fired := false
	f.stock.reserveHook = func(id primitive.ObjectID) {
		if id == sand.ID && !fired {
			fired = true
			// Another order takes the sand between validation and reservation.
			_, _ = f.stock.Reserve(context.Background(), sand.ID, 3)
		}
	}
	in := f.input(2, "0")
	in.Products = append(in.Products, models.LineItemInput{Product: sand.ID.Hex(), Quantity: 2})

	_, err := f.svc.AddOrder(context.Background(), in)
	assert.True(t, errs.Is(err, errs.InsufficientStock), "got %v", err)
	assert.Equal(t, 10, f.stock.quantity(f.cement.ID), "cement reservation released")
	assert.Equal(t, 1, f.stock.quantity(sand.ID))
	assert.Zero(t, f.orders.count())
}

func TestAddOrderReleasesStockWhenInsertFails(t *testing.T) {
	f := newOrderFixture(t)
	f.orders.createErr = errors.New("insert failed")

	_, err := f.svc.AddOrder(context.Background(), f.input(3, "0"))
	assert.Equal(t, errs.Internal, errs.KindOf(err))
	assert.Equal(t, 10, f.stock.quantity(f.cement.ID))
	assert.Equal(t, 1, f.stock.releases)
}

func TestAddOrderReservationError(t *testing.T) {
	f := newOrderFixture(t)
	f.stock.reserveErr = errors.New("timeout")

	_, err := f.svc.AddOrder(context.Background(), f.input(3, "0"))
	assert.Equal(t, errs.Internal, errs.KindOf(err))
	assert.Equal(t, 10, f.stock.quantity(f.cement.ID))
}

func TestConcurrentOrdersNeverOversell(t *testing.T) {
	f := newOrderFixture(t)

	var wg sync.WaitGroup
	var mu sync.Mutex
	placed, rejected := 0, 0
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.AddOrder(context.Background(), f.input(1, "0"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				placed++
			} else if errs.Is(err, errs.InsufficientStock) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, placed)
	assert.Equal(t, 15, rejected)
	assert.Equal(t, 0, f.stock.quantity(f.cement.ID))
	assert.Equal(t, 10, f.orders.count())
}

func TestPublishFailureDoesNotFailOrder(t *testing.T) {
	f := newOrderFixture(t)
	f.publisher.err = errors.New("broker down")

	order, err := f.svc.AddOrder(context.Background(), f.input(1, "5"))
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
}

func TestGetOrdersResolvesDeletedReferences(t *testing.T) {
	f := newOrderFixture(t)
	first, err := f.svc.AddOrder(context.Background(), f.input(1, "0"))
	require.NoError(t, err)
	second, err := f.svc.AddOrder(context.Background(), f.input(2, "0"))
	require.NoError(t, err)

	_, _ = f.vendors.SoftDelete(context.Background(), f.vendor.ID)
	_, _ = f.stock.SoftDelete(context.Background(), f.cement.ID)

	res, err := f.svc.GetOrders(context.Background(), models.OrderFilter{}, models.NewPage(1, 6))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, second.ID, res.Items[0].ID, "newest first")
	assert.Equal(t, first.ID, res.Items[1].ID)
	require.NotNil(t, res.Items[0].Vendor)
	assert.True(t, res.Items[0].Vendor.IsDeleted)
	require.NotNil(t, res.Items[0].Products[0].Product)
	assert.True(t, res.Items[0].Products[0].Product.IsDeleted)

	res, err = f.svc.GetOrders(context.Background(), models.OrderFilter{Driver: primitive.NewObjectID()}, models.NewPage(1, 6))
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.NotNil(t, res.Items)

	res, err = f.svc.GetOrders(context.Background(), models.OrderFilter{Status: models.OrderStatusPending}, models.NewPage(1, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Total)
	assert.Len(t, res.Items, 1)
}

func TestUpdateCollectedAmountOnlyOwnOrders(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.svc.AddOrder(context.Background(), f.input(3, "0"))
	require.NoError(t, err)

	_, err = f.svc.UpdateCollectedAmount(context.Background(), order.ID.Hex(), models.MustMoney("5"), primitive.NewObjectID())
	assert.True(t, errs.Is(err, errs.NotFound), "got %v", err)

	stored, _ := f.orders.FindByID(context.Background(), order.ID)
	assert.True(t, stored.CollectedAmount.IsZero(), "another driver's payment is not recorded")

	detail, err := f.svc.UpdateCollectedAmount(context.Background(), order.ID.Hex(), models.MustMoney("5"), f.driver.ID)
	require.NoError(t, err)
	assert.Equal(t, "5", detail.CollectedAmount.String())
}
