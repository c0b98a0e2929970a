package command

import (
	"context"

	identity "github.com/tair/backoffice/internal/identity/domain"
	notification "github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// CompanyCommand carries the editable company fields
type CompanyCommand struct {
	ID            uint   `json:"-"`
	Name          string `json:"name" validate:"required,max=200"`
	GSTIN         string `json:"gstin" validate:"omitempty,len=15"`
	Address       string `json:"address" validate:"max=500"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"max=20"`
	BankName      string `json:"bankName" validate:"max=120"`
	AccountNumber string `json:"accountNumber" validate:"max=34"`
	IFSC          string `json:"ifsc" validate:"omitempty,len=11"`
}

func (c CompanyCommand) apply(company *domain.Company) {
	company.Name = c.Name
	company.GSTIN = c.GSTIN
	company.Address = c.Address
	company.Email = c.Email
	company.Phone = c.Phone
	company.BankName = c.BankName
	company.AccountNumber = c.AccountNumber
	company.IFSC = c.IFSC
}

// CompanyCommandHandler handles company mutations
type CompanyCommandHandler struct {
	exec *pipeline.Executor
	repo domain.CompanyRepository
}

// NewCompanyCommandHandler creates a new company command handler
func NewCompanyCommandHandler(exec *pipeline.Executor, repo domain.CompanyRepository) *CompanyCommandHandler {
	return &CompanyCommandHandler{exec: exec, repo: repo}
}

// Create registers the caller's company. A second company for the same owner is a conflict.
func (h *CompanyCommandHandler) Create(ctx context.Context, cmd CompanyCommand) (pipeline.Result[*domain.Company], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CompanyCommand, *domain.Company]{
		Name:     "CreateCompany",
		Action:   identity.ActionCreate,
		Resource: identity.ResourceCompany,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd CompanyCommand) (*domain.Company, error) {
			company := &domain.Company{OwnerRef: actor.Ref}
			cmd.apply(company)
			if err := h.repo.Create(ctx, company); err != nil {
				return nil, err
			}
			return company, nil
		},
		Notices:  companyNotice(notification.TypeCompanyCreated),
		EntityID: companyID,
		Message:  "Company created successfully",
	}, cmd)
}

// Update changes a company's details
func (h *CompanyCommandHandler) Update(ctx context.Context, cmd CompanyCommand) (pipeline.Result[*domain.Company], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CompanyCommand, *domain.Company]{
		Name:     "UpdateCompany",
		Action:   identity.ActionUpdate,
		Resource: identity.ResourceCompany,
		Mutate: func(ctx context.Context, _ pipeline.Actor, cmd CompanyCommand) (*domain.Company, error) {
			company, err := h.repo.FindByID(ctx, cmd.ID)
			if err != nil {
				return nil, err
			}
			cmd.apply(company)
			if err := h.repo.Update(ctx, company); err != nil {
				return nil, err
			}
			return company, nil
		},
		Notices:  companyNotice(notification.TypeCompanyUpdated),
		EntityID: companyID,
		Message:  "Company updated successfully",
	}, cmd)
}

// DeleteCompanyCommand represents the command to delete a company
type DeleteCompanyCommand struct {
	ID uint `json:"-" validate:"required"`
}

// Delete removes a company
func (h *CompanyCommandHandler) Delete(ctx context.Context, cmd DeleteCompanyCommand) (pipeline.Result[*domain.Company], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[DeleteCompanyCommand, *domain.Company]{
		Name:     "DeleteCompany",
		Action:   identity.ActionDelete,
		Resource: identity.ResourceCompany,
		Mutate: func(ctx context.Context, _ pipeline.Actor, cmd DeleteCompanyCommand) (*domain.Company, error) {
			return h.repo.Delete(ctx, cmd.ID)
		},
		Notices:  companyNotice(notification.TypeCompanyDeleted),
		EntityID: companyID,
		Message:  "Company deleted successfully",
	}, cmd)
}

func companyNotice(t notification.Type) func(pipeline.Actor, *domain.Company) []notification.Notice {
	return func(_ pipeline.Actor, company *domain.Company) []notification.Notice {
		return []notification.Notice{
			notification.NewNotice(notification.Broadcast(), t, company.Name),
		}
	}
}

func companyID(c *domain.Company) uint { return c.ID }
