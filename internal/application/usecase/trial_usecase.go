package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/repository"
)

// TrialService verifica si la prueba gratis de una empresa sigue vigente.
// Es el único punto de la aplicación que conoce la lógica de vencimiento.
type TrialService struct {
	companyRepo repository.CompanyRepository
	now         func() time.Time
}

// NewTrialService construye el servicio de prueba gratis.
func NewTrialService(companyRepo repository.CompanyRepository) *TrialService {
	return &TrialService{companyRepo: companyRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (s *TrialService) WithClock(now func() time.Time) *TrialService {
	s.now = now
	return s
}

// CheckTrial informa si la prueba gratis venció. Si venció y onExpired no es nil lo invoca
// antes de devolver. Devuelve error solo ante fallos de infraestructura o empresa inexistente.
func (s *TrialService) CheckTrial(ctx context.Context, companyID string, onExpired func()) (bool, error) {
	if companyID == "" {
		return false, fmt.Errorf("trial: companyID es obligatorio")
	}
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return false, err
	}
	if company == nil {
		return false, domain.ErrNotFound
	}
	if !company.TrialExpired(s.now()) {
		return false, nil
	}
	if onExpired != nil {
		onExpired()
	}
	return true, nil
}
