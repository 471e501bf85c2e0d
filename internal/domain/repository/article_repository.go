package repository

import (
	"context"

	"github.com/jhoicas/faro-api/internal/domain/entity"
)

// ArticleRepository define el puerto de persistencia para artículos (DIP).
// GetByID devuelve (nil, nil) si no existe; Update devuelve domain.ErrNotFound si no existe.
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id int64) (*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Article, error)
}
