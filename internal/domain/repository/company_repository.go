package repository

import (
	"context"

	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// CompanyRepository define el puerto de lectura de empresas (estado de prueba/suscripción).
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}
