package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/inventory/domain"
	"github.com/tair/backoffice/internal/inventory/usecase/command"
	"github.com/tair/backoffice/internal/inventory/usecase/query"
	"github.com/tair/backoffice/internal/respond"
)

// InventoryHandler handles HTTP requests for crates, purchases and sellings
type InventoryHandler struct {
	crates         *command.CrateCommandHandler
	listCrates     *query.ListCratesHandler
	createPurchase *command.CreatePurchaseHandler
	listPurchases  *query.ListPurchasesHandler
	sell           *command.SellProductHandler
	listSellings   *query.ListSellingsHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(
	crates *command.CrateCommandHandler,
	listCrates *query.ListCratesHandler,
	createPurchase *command.CreatePurchaseHandler,
	listPurchases *query.ListPurchasesHandler,
	sell *command.SellProductHandler,
	listSellings *query.ListSellingsHandler,
) *InventoryHandler {
	return &InventoryHandler{
		crates:         crates,
		listCrates:     listCrates,
		createPurchase: createPurchase,
		listPurchases:  listPurchases,
		sell:           sell,
		listSellings:   listSellings,
	}
}

// CreateCrate handles POST /crates
func (h *InventoryHandler) CreateCrate(w http.ResponseWriter, r *http.Request) {
	var cmd command.CrateCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.crates.Create(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// ListCrates handles GET /crates
func (h *InventoryHandler) ListCrates(w http.ResponseWriter, r *http.Request) {
	limit, offset := respond.Page(r)
	crates, err := h.listCrates.Handle(r.Context(), query.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, crates)
}

// UpdateCrate handles PUT /crates/{id}
func (h *InventoryHandler) UpdateCrate(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var cmd command.CrateCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	cmd.ID = id

	result, err := h.crates.Update(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// DeleteCrate handles DELETE /crates/{id}
func (h *InventoryHandler) DeleteCrate(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.crates.Delete(r.Context(), command.DeleteCrateCommand{ID: id})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// CreatePurchase handles POST /product-purchases
func (h *InventoryHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreatePurchaseCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.createPurchase.Handle(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// ListPurchases handles GET /product-purchases
func (h *InventoryHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	status := domain.PurchaseStatus(r.URL.Query().Get("status"))
	if status != "" && status != domain.PurchaseStatusPending && status != domain.PurchaseStatusDeducted {
		respond.Error(w, r, apperr.InvalidInput("status must be one of [pending deducted]"))
		return
	}

	limit, offset := respond.Page(r)
	purchases, err := h.listPurchases.Handle(r.Context(), query.ListPurchasesQuery{Status: status, Limit: limit, Offset: offset})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, purchases)
}

// SellProduct handles POST /product-sellings
func (h *InventoryHandler) SellProduct(w http.ResponseWriter, r *http.Request) {
	var cmd command.SellProductCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.sell.Handle(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// ListSellings handles GET /product-sellings
func (h *InventoryHandler) ListSellings(w http.ResponseWriter, r *http.Request) {
	limit, offset := respond.Page(r)
	sellings, err := h.listSellings.Handle(r.Context(), query.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, sellings)
}

// RegisterRoutes registers inventory routes on the authenticated api router
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/crates", h.CreateCrate).Methods(http.MethodPost)
	router.HandleFunc("/crates", h.ListCrates).Methods(http.MethodGet)
	router.HandleFunc("/crates/{id:[0-9]+}", h.UpdateCrate).Methods(http.MethodPut)
	router.HandleFunc("/crates/{id:[0-9]+}", h.DeleteCrate).Methods(http.MethodDelete)

	router.HandleFunc("/product-purchases", h.CreatePurchase).Methods(http.MethodPost)
	router.HandleFunc("/product-purchases", h.ListPurchases).Methods(http.MethodGet)

	router.HandleFunc("/product-sellings", h.SellProduct).Methods(http.MethodPost)
	router.HandleFunc("/product-sellings", h.ListSellings).Methods(http.MethodGet)
}
