package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación del puerto ArticleRepository sobre PostgreSQL (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

const articleColumns = `id, company_id, descripcion, precio_unitario, stock, fk_id_agrupador,
	fk_id_marca, fk_id_talle, fk_id_color, activo, created_at, updated_at`

// Create persiste un artículo nuevo y completa ID y timestamps.
func (r *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	query := `
		INSERT INTO articulos (company_id, descripcion, precio_unitario, stock, fk_id_agrupador,
			fk_id_marca, fk_id_talle, fk_id_color, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		a.CompanyID, a.Descripcion, a.PrecioUnitario, a.Stock, a.FkIDAgrupador,
		a.FkIDMarca, a.FkIDTalle, a.FkIDColor, a.Activo,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert articulo: referencia inexistente: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert articulo: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID. (nil, nil) si no existe.
func (r *ArticleRepo) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	row := r.q.QueryRow(ctx, `SELECT `+articleColumns+` FROM articulos WHERE id = $1`, id)
	a, err := scanArticle(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", err)
	}
	return a, nil
}

// Update reemplaza los campos editables, incluido el stock. No hay control de concurrencia:
// gana la última escritura.
func (r *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	query := `
		UPDATE articulos SET descripcion = $2, precio_unitario = $3, stock = $4, fk_id_agrupador = $5,
			fk_id_marca = $6, fk_id_talle = $7, fk_id_color = $8, activo = $9, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		a.ID, a.Descripcion, a.PrecioUnitario, a.Stock, a.FkIDAgrupador,
		a.FkIDMarca, a.FkIDTalle, a.FkIDColor, a.Activo,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("update articulo: referencia inexistente: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update articulo: %w", err)
	}
	return nil
}

// ListByCompany lista artículos por empresa con paginación, por descripción.
func (r *ArticleRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articulos WHERE company_id = $1
		ORDER BY descripcion, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (*entity.Article, error) {
	var a entity.Article
	err := s.Scan(
		&a.ID, &a.CompanyID, &a.Descripcion, &a.PrecioUnitario, &a.Stock, &a.FkIDAgrupador,
		&a.FkIDMarca, &a.FkIDTalle, &a.FkIDColor, &a.Activo, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
