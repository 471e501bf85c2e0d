package articles

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/jhoicas/faro-api/internal/application/dto"
	"github.com/jhoicas/faro-api/internal/domain"
	"github.com/jhoicas/faro-api/internal/domain/entity"
	"github.com/jhoicas/faro-api/internal/domain/inventory"
)

// SubmitInput identidad y valores crudos de un envío. La identidad llega explícita
// (no se lee de estado global).
type SubmitInput struct {
	CompanyID      string
	UserID         string
	Values         inventory.FormValues
	OnTrialExpired func()
}

// FormCommand envío del formulario tal como llega por HTTP.
// ArticleID nil = modo creación.
type FormCommand struct {
	CompanyID      string
	UserID         string
	ArticleID      *int64
	IdempotencyKey string
	Request        dto.ArticleFormRequest
	OnTrialExpired func()
}

// OpenSession abre una sesión de ajuste. Con id nil queda en modo creación; con id carga
// el artículo y toma la foto de su stock.
func (uc *UseCase) OpenSession(ctx context.Context, companyID string, id *int64, key string) (*inventory.Adjustment, error) {
	sess := inventory.NewAdjustment(key)
	if id == nil {
		return sess, nil
	}
	a, err := uc.load(ctx, companyID, *id)
	if err != nil {
		return nil, err
	}
	sess.Load(a)
	return sess, nil
}

// SubmitForm abre la sesión, aplica los campos de ajuste del request y envía.
func (uc *UseCase) SubmitForm(ctx context.Context, cmd FormCommand) (*dto.ArticleSaveResponse, error) {
	sess, err := uc.OpenSession(ctx, cmd.CompanyID, cmd.ArticleID, cmd.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	req := cmd.Request

	pre := domain.NewValidationError()
	if sess.IsEdit() {
		if req.BaseStock != nil {
			if *req.BaseStock < 0 || *req.BaseStock > math.MaxInt32 {
				pre.Add("base_stock", inventory.MsgStockInvalido)
			} else {
				sess.SetBaseStock(*req.BaseStock)
			}
		}
		sess.SetStockNuevo(inventory.ParseQuantity("stock_nuevo", req.StockNuevo.String(), pre))
		sess.SetStockDescontar(inventory.ParseQuantity("stock_descontar", req.StockDescontar.String(), pre))
	}

	activo := true
	if sess.IsEdit() {
		activo = sess.Article().Activo
	}
	if req.Activo != nil {
		activo = *req.Activo
	}

	in := SubmitInput{
		CompanyID: cmd.CompanyID,
		UserID:    cmd.UserID,
		Values: inventory.FormValues{
			Descripcion:    req.Descripcion,
			PrecioUnitario: req.PrecioUnitario.String(),
			FkIDAgrupador:  req.FkIDAgrupador.String(),
			FkIDMarca:      req.FkIDMarca.String(),
			FkIDTalle:      req.FkIDTalle.String(),
			FkIDColor:      req.FkIDColor.String(),
			Activo:         activo,
			Stock:          req.Stock.String(),
		},
		OnTrialExpired: cmd.OnTrialExpired,
	}
	return uc.submit(ctx, sess, in, pre)
}

// Submit ejecuta el envío de una sesión abierta:
//  1. en edición reemplaza el stock del formulario por el stock derivado
//  2. valida los campos sin I/O; si hay errores aborta sin consultar nada
//  3. consulta la prueba gratis; si venció aborta sin más I/O
//  4. exige que el agrupador exista en la lista de la empresa
//  5. registra los movimientos planificados, uno a la vez y en orden
//  6. crea o actualiza el artículo
//
// No es atómico: si falla un paso, los movimientos ya registrados quedan firmes y se
// devuelven en *SubmitError. La sesión conserva los valores para reintentar.
func (uc *UseCase) Submit(ctx context.Context, sess *inventory.Adjustment, in SubmitInput) (*dto.ArticleSaveResponse, error) {
	return uc.submit(ctx, sess, in, nil)
}

func (uc *UseCase) submit(ctx context.Context, sess *inventory.Adjustment, in SubmitInput, pre *domain.ValidationError) (*dto.ArticleSaveResponse, error) {
	values := in.Values
	if derived, ok := sess.DerivedStock(); ok {
		values.Stock = strconv.Itoa(derived)
	}
	article, err := inventory.ValidateFields(values)
	if err := mergeValidation(pre, err); err != nil {
		return nil, err
	}

	expired, err := uc.trial.CheckTrial(ctx, in.CompanyID, in.OnTrialExpired)
	if err != nil {
		return nil, fmt.Errorf("consultar prueba gratis: %w", err)
	}
	if expired {
		return nil, domain.ErrTrialExpired
	}

	agrupadores, err := uc.catalog.ListAgrupadores(ctx, in.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("listar agrupadores: %w", err)
	}
	if err := inventory.CheckAgrupador(article.FkIDAgrupador, agrupadores); err != nil {
		return nil, err
	}

	// Las escrituras terminan aunque el cliente se desconecte: el envío parcial ya se tolera.
	wctx := context.WithoutCancel(ctx)

	planned := sess.PlannedMovements(in.UserID)
	uc.log.Debug().
		Str("company_id", in.CompanyID).
		Int("planned", len(planned)).
		Bool("idempotent", sess.Key() != "").
		Msg("movimientos planificados")

	recorded := make([]*entity.StockMovement, 0, len(planned))
	for _, m := range planned {
		saved, err := uc.movements.Record(wctx, m)
		if err != nil {
			uc.log.Error().Err(err).
				Int64("article_id", m.FkIDArticulo).
				Str("tipo", m.Tipo).
				Int("cantidad", m.Cantidad).
				Int("recorded", len(recorded)).
				Msg("registro de movimiento de stock falló")
			return nil, &SubmitError{Stage: StageMovement, Recorded: recorded, Err: err}
		}
		recorded = append(recorded, saved)
	}

	final, err := uc.persist(wctx, sess, in, article)
	if err != nil {
		uc.log.Error().Err(err).
			Str("company_id", in.CompanyID).
			Int("recorded", len(recorded)).
			Msg("guardar artículo falló")
		return nil, &SubmitError{Stage: StagePersist, Recorded: recorded, Err: err}
	}
	sess.MarkSaved()

	uc.log.Info().
		Int64("article_id", final.ID).
		Str("company_id", in.CompanyID).
		Bool("edit", sess.IsEdit()).
		Int("movements", len(recorded)).
		Msg("artículo guardado")

	return &dto.ArticleSaveResponse{
		Article:   *toArticleResponse(final),
		Movements: MovementResponses(recorded),
	}, nil
}

// persist crea el artículo (modo creación) o lo actualiza con el stock derivado.
// En edición sin cambios no llama al repositorio.
func (uc *UseCase) persist(ctx context.Context, sess *inventory.Adjustment, in SubmitInput, article *entity.Article) (*entity.Article, error) {
	if !sess.IsEdit() {
		article.CompanyID = in.CompanyID
		if err := uc.articles.Create(ctx, article); err != nil {
			return nil, err
		}
		return article, nil
	}

	current := sess.Article()
	article.ID = current.ID
	article.CompanyID = current.CompanyID
	article.CreatedAt = current.CreatedAt
	article.UpdatedAt = current.UpdatedAt
	if current.SameFields(article) {
		return article, nil
	}
	if err := uc.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// mergeValidation suma los errores de los campos de ajuste (pre) a los del formulario.
func mergeValidation(pre *domain.ValidationError, err error) error {
	if !pre.HasErrors() {
		return err
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields {
			pre.Add(field, msg)
		}
	}
	return pre
}
