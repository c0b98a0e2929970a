package http

// CreateCrate godoc
// @Summary Create a crate
// @Description No notification is sent for new crates
// @Tags Crates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{crateId=string,crateName=string,crateQuantity=int} true "Crate data"
// @Success 201 {object} object{message=string,data=object}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/crates [post]
func (h *InventoryHandler) CreateCrateDoc() {}

// ListCrates godoc
// @Summary List crates
// @Tags Crates
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=int,crateId=string,crateName=string,crateQuantity=int}
// @Router /api/crates [get]
func (h *InventoryHandler) ListCratesDoc() {}

// UpdateCrate godoc
// @Summary Update a crate
// @Tags Crates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Crate ID"
// @Success 200 {object} object{message=string,data=object}
// @Failure 404 {object} object{error=string}
// @Router /api/crates/{id} [put]
func (h *InventoryHandler) UpdateCrateDoc() {}

// DeleteCrate godoc
// @Summary Delete a crate
// @Tags Crates
// @Security BearerAuth
// @Param id path int true "Crate ID"
// @Success 200 {object} object{message=string,data=object}
// @Router /api/crates/{id} [delete]
func (h *InventoryHandler) DeleteCrateDoc() {}

// CreatePurchase godoc
// @Summary Record a product purchase
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{sellerId=int,productName=string,quantity=int,purchaseAmount=string,purchaseDate=string} true "Purchase data"
// @Success 201 {object} object{message=string,data=object}
// @Failure 404 {object} object{error=string} "Seller not found"
// @Router /api/product-purchases [post]
func (h *InventoryHandler) CreatePurchaseDoc() {}

// ListPurchases godoc
// @Summary List product purchases
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending or deducted"
// @Success 200 {array} object{id=int,productName=string,status=string}
// @Router /api/product-purchases [get]
func (h *InventoryHandler) ListPurchasesDoc() {}

// SellProduct godoc
// @Summary Sell a pending purchase
// @Description Deducts the purchase and records the selling atomically
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{productPurchaseId=int,sellingAmount=string,soldAt=string} true "Selling data"
// @Success 201 {object} object{message=string,data=object}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string} "Already deducted"
// @Router /api/product-sellings [post]
func (h *InventoryHandler) SellProductDoc() {}

// ListSellings godoc
// @Summary List product sellings
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=int,productPurchaseId=int,productName=string,sellingAmount=string}
// @Router /api/product-sellings [get]
func (h *InventoryHandler) ListSellingsDoc() {}
