package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/stock-ledger/application/auth"
	orderapp "github.com/muhammadheryan/stock-ledger/application/order"
	pickingapp "github.com/muhammadheryan/stock-ledger/application/picking"
	stockapp "github.com/muhammadheryan/stock-ledger/application/stock"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	utilsContext "github.com/muhammadheryan/stock-ledger/utils/context"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	validatorx "github.com/muhammadheryan/stock-ledger/utils/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	StockApp   stockapp.StockApp
	PickingApp pickingapp.PickingApp
	OrderApp   orderapp.OrderApp
}

func NewTransport(internalAPIKey string, AuthApp authapp.AuthApp, StockApp stockapp.StockApp, PickingApp pickingapp.PickingApp, OrderApp orderapp.OrderApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		StockApp:   StockApp,
		PickingApp: PickingApp,
		OrderApp:   OrderApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// protected routes
	v1 := mux.PathPrefix("/v1/stock").Subrouter()
	v1.HandleFunc("/receive", rh.ReceiveStock).Methods(http.MethodPost)
	v1.HandleFunc("/issue", rh.IssueStock).Methods(http.MethodPost)
	v1.HandleFunc("/adjust", rh.AdjustStock).Methods(http.MethodPost)
	v1.HandleFunc("/transfer", rh.TransferStock).Methods(http.MethodPost)
	v1.HandleFunc("/picking-plan", rh.GetPickingPlan).Methods(http.MethodGet)
	v1.HandleFunc("/level", rh.GetStockLevel).Methods(http.MethodGet)
	v1.HandleFunc("/movements", rh.ListMovements).Methods(http.MethodGet)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/order-events", rh.ApplyOrderEvent).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(AuthApp))

	return mux
}

// Health handler
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"})
}

// ReceiveStock handler
// @Summary Receive stock
// @Description Adds stock at a location, creating the stock level on first receipt
// @Tags Stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ReceiveStockRequest true "Receive Request"
// @Success 200 {object} model.StockMutationResponse
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /v1/stock/receive [post]
func (s *RestHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ReceiveStockRequest
	if err := decodeScoped(ctx, r, &req, &req.TenantID, &req.ActorID); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.ReceiveStock(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// IssueStock handler
// @Summary Issue stock
// @Description Removes stock from a location
// @Tags Stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.IssueStockRequest true "Issue Request"
// @Success 200 {object} model.StockMutationResponse
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Router /v1/stock/issue [post]
func (s *RestHandler) IssueStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.IssueStockRequest
	if err := decodeScoped(ctx, r, &req, &req.TenantID, &req.ActorID); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.IssueStock(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdjustStock handler
// @Summary Adjust stock
// @Description Sets the counted quantity at a location. Counting the current quantity records nothing.
// @Tags Stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AdjustStockRequest true "Adjust Request"
// @Success 200 {object} model.StockMutationResponse
// @Failure 400 {object} Response
// @Router /v1/stock/adjust [post]
func (s *RestHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AdjustStockRequest
	if err := decodeScoped(ctx, r, &req, &req.TenantID, &req.ActorID); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.AdjustStock(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// TransferStock handler
// @Summary Transfer stock
// @Description Moves stock between two locations of the same warehouse
// @Tags Stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.TransferStockRequest true "Transfer Request"
// @Success 200 {object} model.TransferStockResponse
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Router /v1/stock/transfer [post]
func (s *RestHandler) TransferStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.TransferStockRequest
	if err := decodeScoped(ctx, r, &req, &req.TenantID, &req.ActorID); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.TransferStock(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetPickingPlan handler
// @Summary Picking plan
// @Description Plans which locations to pick from. Uncovered quantity is returned as a backorder step.
// @Tags Stock
// @Produce json
// @Security BearerAuth
// @Param item_id query int true "Item ID"
// @Param warehouse_id query int true "Warehouse ID"
// @Param quantity query string true "Required quantity"
// @Param mode query string false "picking or shipment"
// @Success 200 {object} model.PickingPlan
// @Failure 400 {object} Response
// @Router /v1/stock/picking-plan [get]
func (s *RestHandler) GetPickingPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	quantity, err := decimal.NewFromString(q.Get("quantity"))
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req := model.PickingPlanRequest{
		ItemID:      queryUint(q.Get("item_id")),
		WarehouseID: queryUint(q.Get("warehouse_id")),
		Quantity:    quantity,
		Mode:        constant.PickingMode(q.Get("mode")),
	}
	if err := scopeTenant(ctx, &req.TenantID); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PickingApp.GetPickingPlan(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetStockLevel handler
// @Summary Stock level
// @Tags Stock
// @Produce json
// @Security BearerAuth
// @Param item_id query int true "Item ID"
// @Param location_id query int true "Location ID"
// @Success 200 {object} model.StockLevel
// @Failure 404 {object} Response
// @Router /v1/stock/level [get]
func (s *RestHandler) GetStockLevel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	req := model.StockLevelQuery{
		ItemID:     queryUint(q.Get("item_id")),
		LocationID: queryUint(q.Get("location_id")),
	}
	if err := scopeTenant(ctx, &req.TenantID); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.GetStockLevel(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListMovements handler
// @Summary Movement history
// @Description Newest first. Filter by stock level, or by item and location, or by reference.
// @Tags Stock
// @Produce json
// @Security BearerAuth
// @Param stock_level_id query string false "Stock level ID"
// @Param item_id query int false "Item ID"
// @Param location_id query int false "Location ID"
// @Param reference query string false "Reference"
// @Param limit query int false "Page size, at most 1000"
// @Success 200 {array} model.Movement
// @Router /v1/stock/movements [get]
func (s *RestHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := model.MovementFilter{
		StockLevelID: q.Get("stock_level_id"),
		ItemID:       queryUint(q.Get("item_id")),
		LocationID:   queryUint(q.Get("location_id")),
		Reference:    q.Get("reference"),
		Limit:        int(queryUint(q.Get("limit"))),
	}
	if err := scopeTenant(ctx, &filter.TenantID); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.ListMovements(ctx, &filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ApplyOrderEvent handler
// @Summary Apply an order event
// @Description Replays an order lifecycle event through the reservation orchestrator
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.OrderEvent true "Order Event"
// @Success 200 {object} model.ReservationResult
// @Failure 400 {object} Response
// @Router /internal/v1/order-events [post]
func (s *RestHandler) ApplyOrderEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var ev model.OrderEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&ev); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.HandleOrderEvent(ctx, &ev)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// decodeScoped decodes a command body, binds it to the caller and validates it.
func decodeScoped(ctx context.Context, r *http.Request, req interface{}, tenantID *uint64, actorID **uint64) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := scopeTenant(ctx, tenantID); err != nil {
		return err
	}
	if id, ok := utilsContext.GetActorID(ctx); ok {
		*actorID = &id
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

// scopeTenant fills the tenant from the token. A different explicit tenant is refused.
func scopeTenant(ctx context.Context, tenantID *uint64) error {
	tokenTenant, ok := utilsContext.GetTenantID(ctx)
	if !ok {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if *tenantID != 0 && *tenantID != tokenTenant {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	*tenantID = tokenTenant
	return nil
}

// queryUint returns 0 for missing or malformed values and lets validation reject them.
func queryUint(raw string) uint64 {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
