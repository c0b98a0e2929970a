package http

// CreateInvoice godoc
// @Summary Issue a sales invoice
// @Description net_amount is total_amount plus igst, cgst and sgst
// @Tags Invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{companyId=int,clientId=int,invoiceNumber=string,igst=string,cgst=string,sgst=string,totalAmount=string,paymentStatus=string,dueDate=string} true "Invoice data"
// @Success 201 {object} object{message=string,data=object}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/invoices [post]
func (h *BillingHandler) CreateInvoiceDoc() {}

// ListInvoices godoc
// @Summary List invoices
// @Tags Invoices
// @Security BearerAuth
// @Produce json
// @Param paymentStatus query string false "PAID, PENDING or UNPAID"
// @Param companyId query int false "Company"
// @Success 200 {array} object{id=int,invoiceNumber=string,netAmount=string,paymentStatus=string}
// @Failure 400 {object} object{error=string}
// @Router /api/invoices [get]
func (h *BillingHandler) ListInvoicesDoc() {}

// GetInvoice godoc
// @Summary Get an invoice
// @Tags Invoices
// @Security BearerAuth
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} object{id=int,invoiceNumber=string,netAmount=string,paymentStatus=string}
// @Failure 404 {object} object{error=string}
// @Router /api/invoices/{id} [get]
func (h *BillingHandler) GetInvoiceDoc() {}

// RecordPayment godoc
// @Summary Record a payment
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param request body object{amount=string,paymentDate=string,method=string} true "Payment data"
// @Success 201 {object} object{message=string,data=object{payment=object,invoice=object}}
// @Failure 400 {object} object{error=string} "Overpayment or invalid method"
// @Failure 404 {object} object{error=string}
// @Router /api/invoices/{id}/payments [post]
func (h *BillingHandler) RecordPaymentDoc() {}

// ListPayments godoc
// @Summary List payments of an invoice
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {array} object{id=int,amount=string,method=string,paymentDate=string}
// @Router /api/invoices/{id}/payments [get]
func (h *BillingHandler) ListPaymentsDoc() {}

// SendReminders godoc
// @Summary Send payment reminders
// @Description Responds 207 with failedEmails when some deliveries fail
// @Tags Invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{invoiceIds=[]int} true "Invoices to remind"
// @Success 200 {object} object{message=string,data=object}
// @Success 207 {object} object{error=string,failedEmails=[]string}
// @Failure 403 {object} object{error=string}
// @Router /api/invoices/reminders [post]
func (h *BillingHandler) SendRemindersDoc() {}

// CreatePurchaseInvoice godoc
// @Summary Create a purchase invoice
// @Tags Purchase Invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{companyId=int,sellerId=int,invoiceNumber=string,productPurchaseIds=[]int} true "Purchase invoice data"
// @Success 201 {object} object{message=string,data=object}
// @Failure 404 {object} object{error=string}
// @Router /api/purchase-invoices [post]
func (h *BillingHandler) CreatePurchaseInvoiceDoc() {}

// ListPurchaseInvoices godoc
// @Summary List purchase invoices
// @Tags Purchase Invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=int,invoiceNumber=string,totalAmount=string}
// @Router /api/purchase-invoices [get]
func (h *BillingHandler) ListPurchaseInvoicesDoc() {}

// GetPurchaseInvoice godoc
// @Summary Get a purchase invoice
// @Tags Purchase Invoices
// @Security BearerAuth
// @Produce json
// @Param id path int true "Purchase invoice ID"
// @Success 200 {object} object{id=int,invoiceNumber=string,totalAmount=string}
// @Failure 404 {object} object{error=string}
// @Router /api/purchase-invoices/{id} [get]
func (h *BillingHandler) GetPurchaseInvoiceDoc() {}
