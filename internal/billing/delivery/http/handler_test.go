package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/internal/billing/domain"
	"github.com/tair/backoffice/internal/billing/repository"
	"github.com/tair/backoffice/internal/billing/usecase/command"
	"github.com/tair/backoffice/internal/billing/usecase/query"
	identity "github.com/tair/backoffice/internal/identity/domain"
	inventory "github.com/tair/backoffice/internal/inventory/domain"
	inventoryrepo "github.com/tair/backoffice/internal/inventory/repository"
	partner "github.com/tair/backoffice/internal/partner/domain"
	partnerrepo "github.com/tair/backoffice/internal/partner/repository"
	"github.com/tair/backoffice/internal/testutil/fixture"
	"github.com/tair/backoffice/kafka"
	"github.com/tair/backoffice/pkg/config"
)

func TestInvoiceRoutes(t *testing.T) {
	env := fixture.New(t,
		&partner.Company{}, &partner.Customer{}, &partner.Seller{},
		&inventory.ProductPurchase{},
		&domain.Invoice{}, &domain.Payment{}, &domain.PurchaseInvoice{},
	)
	invoices := repository.NewGormInvoiceRepository(env.DB)
	payments := repository.NewGormPaymentRepository(env.DB)
	purchaseInvoices := repository.NewGormPurchaseInvoiceRepository(env.DB)

	producer := mocks.NewSyncProducer(t, nil)
	publisher := kafka.NewPublisherWithProducer(producer)
	t.Cleanup(func() { publisher.Close() })

	h := NewBillingHandler(
		command.NewCreateInvoiceHandler(env.Exec, invoices),
		command.NewRecordPaymentHandler(env.Exec, payments),
		command.NewCreatePurchaseInvoiceHandler(env.Exec, purchaseInvoices,
			partnerrepo.NewGormCompanyRepository(env.DB),
			partnerrepo.NewGormSellerRepository(env.DB),
			inventoryrepo.NewGormPurchaseRepository(env.DB),
		),
		command.NewSendRemindersHandler(env.Exec, invoices, publisher, config.ReminderConfig{Concurrency: 1}),
		query.NewInvoiceQueryHandler(env.Exec, invoices, payments),
		query.NewPurchaseInvoiceQueryHandler(env.Exec, purchaseInvoices),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	company := &partner.Company{OwnerRef: "co_owner", Name: "Acme Traders"}
	require.NoError(t, env.DB.Create(company).Error)
	ravi := &partner.Customer{OwnerRef: "co_owner", Name: "Ravi", Email: "ravi@example.com"}
	meera := &partner.Customer{OwnerRef: "co_owner", Name: "Meera", Email: "meera@example.com"}
	require.NoError(t, env.DB.Create(ravi).Error)
	require.NoError(t, env.DB.Create(meera).Error)

	memberCtx := env.Seed(t, "user_member", identity.RoleMember)
	userCtx := env.Seed(t, "user_plain", identity.RoleUser)

	send := func(ctx context.Context, method, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(ctx)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	issue := func(customer uint) uint {
		t.Helper()
		body := fmt.Sprintf(`{"companyId":%d,"clientId":%d,"totalAmount":"1000","igst":"180"}`, company.ID, customer)
		rec := send(memberCtx, http.MethodPost, "/invoices", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var resp struct {
			Data domain.Invoice `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "1180", resp.Data.NetAmount.String())
		return resp.Data.ID
	}
	first := issue(ravi.ID)
	second := issue(meera.ID)

	t.Run("payments", func(t *testing.T) {
		rec := send(memberCtx, http.MethodPost, fmt.Sprintf("/invoices/%d/payments", first), `{"amount":"180","method":"card"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"paymentStatus":"PENDING"`)

		rec = send(memberCtx, http.MethodPost, fmt.Sprintf("/invoices/%d/payments", first), `{"amount":"5000","method":"card"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"amount exceeds outstanding balance of 1000.00"}`, rec.Body.String())

		rec = send(memberCtx, http.MethodGet, fmt.Sprintf("/invoices/%d/payments", first), "")
		require.Equal(t, http.StatusOK, rec.Code)
		var list []domain.Payment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Len(t, list, 1)
	})

	t.Run("filter by status", func(t *testing.T) {
		rec := send(memberCtx, http.MethodGet, "/invoices?paymentStatus=PENDING", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var list []domain.Invoice
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, first, list[0].ID)

		rec = send(memberCtx, http.MethodGet, "/invoices?paymentStatus=LATE", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("user sees only own invoices", func(t *testing.T) {
		rec := send(userCtx, http.MethodGet, fmt.Sprintf("/invoices/%d", first), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = send(userCtx, http.MethodGet, "/invoices", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("partial reminder failure", func(t *testing.T) {
		producer.ExpectSendMessageAndSucceed()
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		body := fmt.Sprintf(`{"invoiceIds":[%d,%d]}`, first, second)
		rec := send(memberCtx, http.MethodPost, "/invoices/reminders", body)
		assert.Equal(t, http.StatusMultiStatus, rec.Code)

		var resp struct {
			Error        string   `json:"error"`
			FailedEmails []string `json:"failedEmails"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Some reminders could not be sent", resp.Error)
		assert.Equal(t, []string{"meera@example.com"}, resp.FailedEmails)
	})

	t.Run("all reminders sent", func(t *testing.T) {
		producer.ExpectSendMessageAndSucceed()

		rec := send(memberCtx, http.MethodPost, "/invoices/reminders", fmt.Sprintf(`{"invoiceIds":[%d]}`, second))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sent":["meera@example.com"]`)
	})
}
