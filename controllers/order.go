package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wholesale-delivery/errs"
	"wholesale-delivery/middleware"
	"wholesale-delivery/models"
	"wholesale-delivery/utils"
)

type OrderManager interface {
	AddOrder(ctx context.Context, in models.OrderInput) (*models.Order, error)
	GetOrders(ctx context.Context, f models.OrderFilter, p models.Page) (models.PageResult[models.OrderDetail], error)
	UpdateCollectedAmount(ctx context.Context, orderID string, amount models.Money, driver primitive.ObjectID) (*models.OrderDetail, error)
}

// OrderController handles order creation, listing and payment collection
type OrderController struct {
	service OrderManager
	timeout time.Duration
}

func NewOrderController(service OrderManager, timeout time.Duration) *OrderController {
	return &OrderController{service: service, timeout: timeout}
}

// CreateOrder handles POST /order/create-order
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var in models.OrderInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	if in.Vendor == "" || in.Driver == "" || len(in.Products) == 0 {
		badRequest(w, "Vendor, truck driver and products are required")
		return
	}
	// A logged-in driver can only bill under their own account.
	if claims, ok := middleware.ClaimsFrom(r.Context()); ok && claims.Role == utils.RoleDriver && claims.Subject != in.Driver {
		respond(w, http.StatusForbidden, "Drivers can only create their own orders", nil)
		return
	}

	ctx, cancel := withTimeout(r, oc.timeout)
	defer cancel()
	order, err := oc.service.AddOrder(ctx, in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, "Order Registered Successfully", order)
}

// GetOrders handles GET /order/get-orders?page=&limit=&driverId=&status=.
// Drivers only ever see their own orders.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := orderFilterFrom(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := withTimeout(r, oc.timeout)
	defer cancel()
	res, err := oc.service.GetOrders(ctx, filter, pageFrom(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Orders Fetched Successfully", res)
}

// UpdatePayment handles PATCH /order/{id}/update-payment
func (oc *OrderController) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var body models.PaymentUpdate
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if body.CollectedAmount == nil {
		badRequest(w, "collectedAmount is required")
		return
	}
	driver, err := callerDriver(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := withTimeout(r, oc.timeout)
	defer cancel()
	order, err := oc.service.UpdateCollectedAmount(ctx, mux.Vars(r)["id"], *body.CollectedAmount, driver)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Payment Updated Successfully", order)
}

// callerDriver returns the driver id of a driver-role caller and the zero
// id for anyone else.
func callerDriver(r *http.Request) (primitive.ObjectID, error) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok || claims.Role != utils.RoleDriver {
		return primitive.NilObjectID, nil
	}
	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return primitive.NilObjectID, errs.New(errs.Unauthorized, "Invalid token subject")
	}
	return id, nil
}

func orderFilterFrom(r *http.Request) (models.OrderFilter, error) {
	var f models.OrderFilter
	q := r.URL.Query()

	driverID := q.Get("driverId")
	if claims, ok := middleware.ClaimsFrom(r.Context()); ok && claims.Role == utils.RoleDriver {
		driverID = claims.Subject
	}
	if driverID != "" {
		oid, err := primitive.ObjectIDFromHex(driverID)
		if err != nil {
			return f, errs.New(errs.InvalidInput, "Invalid driver id")
		}
		f.Driver = oid
	}

	switch status := models.OrderStatus(q.Get("status")); status {
	case "":
	case models.OrderStatusPending, models.OrderStatusCompleted:
		f.Status = status
	default:
		return f, errs.Newf(errs.InvalidInput, "Unknown order status %q", status)
	}
	return f, nil
}
