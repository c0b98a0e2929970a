package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/backoffice/internal/partner/usecase/command"
	"github.com/tair/backoffice/internal/partner/usecase/query"
	"github.com/tair/backoffice/internal/respond"
)

// PartnerHandler handles HTTP requests for companies, sellers and customers
type PartnerHandler struct {
	companies     *command.CompanyCommandHandler
	companyReads  *query.CompanyQueryHandler
	createSeller  *command.CreateSellerHandler
	listSellers   *query.ListSellersHandler
	customers     *command.CustomerCommandHandler
	listCustomers *query.ListCustomersHandler
}

// NewPartnerHandler creates a new partner handler
func NewPartnerHandler(
	companies *command.CompanyCommandHandler,
	companyReads *query.CompanyQueryHandler,
	createSeller *command.CreateSellerHandler,
	listSellers *query.ListSellersHandler,
	customers *command.CustomerCommandHandler,
	listCustomers *query.ListCustomersHandler,
) *PartnerHandler {
	return &PartnerHandler{
		companies:     companies,
		companyReads:  companyReads,
		createSeller:  createSeller,
		listSellers:   listSellers,
		customers:     customers,
		listCustomers: listCustomers,
	}
}

// CreateCompany handles POST /companies
func (h *PartnerHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var cmd command.CompanyCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.companies.Create(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// ListCompanies handles GET /companies
func (h *PartnerHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	limit, offset := respond.Page(r)
	companies, err := h.companyReads.List(r.Context(), query.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, companies)
}

// GetCompany handles GET /companies/{id}
func (h *PartnerHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	company, err := h.companyReads.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, company)
}

// UpdateCompany handles PUT /companies/{id}
func (h *PartnerHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var cmd command.CompanyCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	cmd.ID = id

	result, err := h.companies.Update(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// DeleteCompany handles DELETE /companies/{id}
func (h *PartnerHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.companies.Delete(r.Context(), command.DeleteCompanyCommand{ID: id})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// CreateSeller handles POST /sellers
func (h *PartnerHandler) CreateSeller(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateSellerCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.createSeller.Handle(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// ListSellers handles GET /sellers
func (h *PartnerHandler) ListSellers(w http.ResponseWriter, r *http.Request) {
	limit, offset := respond.Page(r)
	sellers, err := h.listSellers.Handle(r.Context(), query.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, sellers)
}

// CreateCustomer handles POST /customers
func (h *PartnerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var cmd command.CustomerCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.customers.Create(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

// ListCustomers handles GET /customers
func (h *PartnerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	limit, offset := respond.Page(r)
	customers, err := h.listCustomers.Handle(r.Context(), query.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, customers)
}

// UpdateCustomer handles PUT /customers/{id}
func (h *PartnerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	var cmd command.CustomerCommand
	if err := respond.Decode(r, &cmd); err != nil {
		respond.Error(w, r, err)
		return
	}
	cmd.ID = id

	result, err := h.customers.Update(r.Context(), cmd)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// DeleteCustomer handles DELETE /customers/{id}
func (h *PartnerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	result, err := h.customers.Delete(r.Context(), command.DeleteCustomerCommand{ID: id})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

// RegisterRoutes registers partner routes on the authenticated api router
func (h *PartnerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/companies", h.CreateCompany).Methods(http.MethodPost)
	router.HandleFunc("/companies", h.ListCompanies).Methods(http.MethodGet)
	router.HandleFunc("/companies/{id:[0-9]+}", h.GetCompany).Methods(http.MethodGet)
	router.HandleFunc("/companies/{id:[0-9]+}", h.UpdateCompany).Methods(http.MethodPut)
	router.HandleFunc("/companies/{id:[0-9]+}", h.DeleteCompany).Methods(http.MethodDelete)

	router.HandleFunc("/sellers", h.CreateSeller).Methods(http.MethodPost)
	router.HandleFunc("/sellers", h.ListSellers).Methods(http.MethodGet)

	router.HandleFunc("/customers", h.CreateCustomer).Methods(http.MethodPost)
	router.HandleFunc("/customers", h.ListCustomers).Methods(http.MethodGet)
	router.HandleFunc("/customers/{id:[0-9]+}", h.UpdateCustomer).Methods(http.MethodPut)
	router.HandleFunc("/customers/{id:[0-9]+}", h.DeleteCustomer).Methods(http.MethodDelete)
}
