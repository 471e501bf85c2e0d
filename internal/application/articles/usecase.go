package articles

import (
	"context"
	"fmt"

	"github.com/jhoicas/faro-api/internal/application/dto"
	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/internal/domain/repository"
	"github.com/jhoicas/faro-api/pkg/logger"
)

// UseCase casos de uso de artículos: lecturas, envío del formulario con ajuste de stock
// y reporte de movimientos.
type UseCase struct {
	articles  repository.ArticleRepository
	movements repository.StockMovementRepository
	catalog   repository.CatalogRepository
	trial     TrialChecker
	report    MovementReportGenerator
	log       *logger.Logger
}

// NewUseCase construye el caso de uso. report puede ser nil si no se expone el PDF.
func NewUseCase(
	articles repository.ArticleRepository,
	movements repository.StockMovementRepository,
	catalog repository.CatalogRepository,
	trial TrialChecker,
	report MovementReportGenerator,
	log *logger.Logger,
) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		articles:  articles,
		movements: movements,
		catalog:   catalog,
		trial:     trial,
		report:    report,
		log:       log,
	}
}

// GetByID obtiene un artículo de la empresa.
func (uc *UseCase) GetByID(ctx context.Context, companyID string, id int64) (*dto.ArticleResponse, error) {
	a, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toArticleResponse(a), nil
}

// List lista artículos de la empresa con paginación.
func (uc *UseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.ArticleListResponse, error) {
	page.DefaultPage()
	list, err := uc.articles.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticleResponse(a))
	}
	return &dto.ArticleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Movements lista los movimientos de stock de un artículo (más recientes primero).
func (uc *UseCase) Movements(ctx context.Context, companyID string, id int64, page dto.PageRequest) ([]dto.StockMovementResponse, error) {
	if _, err := uc.load(ctx, companyID, id); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.movements.ListByArticle(ctx, id, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return MovementResponses(list), nil
}

// MovementReport genera el PDF de movimientos del artículo.
func (uc *UseCase) MovementReport(ctx context.Context, companyID string, id int64) (pdf []byte, filename string, err error) {
	if uc.report == nil {
		return nil, "", fmt.Errorf("reporte de movimientos no configurado")
	}
	a, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, "", err
	}
	list, err := uc.movements.ListByArticle(ctx, id, 500, 0)
	if err != nil {
		return nil, "", err
	}
	pdf, err = uc.report.GenerateMovementReport(ctx, a, list)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("movimientos-articulo-%d.pdf", a.ID), nil
}

// load obtiene el artículo y verifica que pertenezca a la empresa.
func (uc *UseCase) load(ctx context.Context, companyID string, id int64) (*entity.Article, error) {
	a, err := uc.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return a, nil
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:             a.ID,
		Descripcion:    a.Descripcion,
		PrecioUnitario: a.PrecioUnitario,
		Stock:          a.Stock,
		FkIDAgrupador:  a.FkIDAgrupador,
		FkIDMarca:      a.FkIDMarca,
		FkIDTalle:      a.FkIDTalle,
		FkIDColor:      a.FkIDColor,
		Activo:         a.Activo,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// MovementResponses convierte movimientos registrados a su forma de salida.
func MovementResponses(list []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.StockMovementResponse{
			ID:           m.ID,
			FkIDOrden:    m.FkIDOrden,
			FkIDArticulo: m.FkIDArticulo,
			Origen:       m.Origen,
			Tipo:         m.Tipo,
			Cantidad:     m.Cantidad,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out
}
