package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/faro-api/internal/application/dto"
	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/internal/domain/repository"
)

// CompanyUseCase expone los datos de la empresa del usuario autenticado.
type CompanyUseCase struct {
	repo repository.CompanyRepository
	now  func() time.Time
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, now: time.Now}
}

// Current obtiene la empresa y el estado de su prueba gratis.
func (uc *CompanyUseCase) Current(ctx context.Context, companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company, uc.now()), nil
}

func entityToCompanyResponse(c *entity.Company, now time.Time) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		TrialEndsAt:        c.TrialEndsAt,
		SubscriptionActive: c.SubscriptionActive,
		TrialExpired:       c.TrialExpired(now),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
