package http

// Stats godoc
// @Summary Dashboard statistics
// @Description Totals over invoices visible to the caller. hour, day and week are sliding windows; month and year are calendar periods.
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param companyId query int false "Company"
// @Param filter query string false "hour, day, week, month or year"
// @Success 200 {object} object{totalRevenue=string,receivedAmount=string,unpaidAmount=string,pendingAmount=string,activeCustomers=int}
// @Failure 400 {object} object{error=string}
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) StatsDoc() {}

// SalesTrend godoc
// @Summary Six month sales trend
// @Description One point per invoice timestamp by default; bucket=month gives one point per calendar month
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param companyId query int false "Company"
// @Param bucket query string false "month"
// @Success 200 {array} object{month=string,date=string,total=string}
// @Router /api/dashboard/sales-trend [get]
func (h *DashboardHandler) SalesTrendDoc() {}
