package http

// CreateCompany godoc
// @Summary Register the caller's company
// @Tags Companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,gstin=string,address=string,email=string,phone=string,bankName=string,accountNumber=string,ifsc=string} true "Company data"
// @Success 201 {object} object{message=string,data=object}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/companies [post]
func (h *PartnerHandler) CreateCompanyDoc() {}

// ListCompanies godoc
// @Summary List companies
// @Tags Companies
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=int,name=string,gstin=string}
// @Failure 403 {object} object{error=string}
// @Router /api/companies [get]
func (h *PartnerHandler) ListCompaniesDoc() {}

// GetCompany godoc
// @Summary Get a company
// @Tags Companies
// @Security BearerAuth
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} object{id=int,name=string,gstin=string}
// @Failure 404 {object} object{error=string}
// @Router /api/companies/{id} [get]
func (h *PartnerHandler) GetCompanyDoc() {}

// UpdateCompany godoc
// @Summary Update a company
// @Tags Companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} object{message=string,data=object}
// @Failure 404 {object} object{error=string}
// @Router /api/companies/{id} [put]
func (h *PartnerHandler) UpdateCompanyDoc() {}

// DeleteCompany godoc
// @Summary Delete a company
// @Tags Companies
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} object{message=string,data=object}
// @Failure 409 {object} object{error=string}
// @Router /api/companies/{id} [delete]
func (h *PartnerHandler) DeleteCompanyDoc() {}

// CreateSeller godoc
// @Summary Register a seller
// @Tags Sellers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,phone=string,address=string,gstin=string} true "Seller data"
// @Success 201 {object} object{message=string,data=object}
// @Failure 409 {object} object{error=string}
// @Router /api/sellers [post]
func (h *PartnerHandler) CreateSellerDoc() {}

// ListSellers godoc
// @Summary List sellers
// @Tags Sellers
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=int,name=string,email=string}
// @Router /api/sellers [get]
func (h *PartnerHandler) ListSellersDoc() {}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,phone=string,address=string} true "Customer data"
// @Success 201 {object} object{message=string,data=object}
// @Router /api/customers [post]
func (h *PartnerHandler) CreateCustomerDoc() {}

// ListCustomers godoc
// @Summary List customers
// @Description Elevated roles see every customer, USER sees their own
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=int,name=string,email=string}
// @Router /api/customers [get]
func (h *PartnerHandler) ListCustomersDoc() {}

// UpdateCustomer godoc
// @Summary Update a customer
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Param id path int true "Customer ID"
// @Success 200 {object} object{message=string,data=object}
// @Router /api/customers/{id} [put]
func (h *PartnerHandler) UpdateCustomerDoc() {}

// DeleteCustomer godoc
// @Summary Delete a customer
// @Tags Customers
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} object{message=string,data=object}
// @Router /api/customers/{id} [delete]
func (h *PartnerHandler) DeleteCustomerDoc() {}
