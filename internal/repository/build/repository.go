package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/you-humble/pc-builder/internal/model"
	"github.com/you-humble/pc-builder/platform/logger"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewBuildRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, rec model.BuildRecord) (model.BuildRecord, error) {
	const op = "repository.build.Create"

	cols := []string{"selection", "cart"}
	vals := []any{selectionColumn(rec.Selection), cartColumn(rec.Cart)}
	if rec.ID != uuid.Nil {
		cols = append(cols, "id")
		vals = append(vals, rec.ID)
	}

	q := r.sb.
		Insert("builds").
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING id, created_at, updated_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return model.BuildRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	out := rec
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.BuildRecord{}, fmt.Errorf("%s: %w", op, err)
	}
	out.Selection = selectionColumn(rec.Selection)
	out.Cart = rec.Cart

	return out, nil
}

func (r *repository) BuildByID(ctx context.Context, id uuid.UUID) (model.BuildRecord, error) {
	const op = "repository.build.BuildByID"

	q := r.sb.
		Select("id", "selection", "cart", "created_at", "updated_at").
		From("builds").
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return model.BuildRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	var (
		rec  model.BuildRecord
		cart []cartEntry
	)
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&rec.ID,
		&rec.Selection,
		&cart,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BuildRecord{}, model.ErrBuildNotFound
		}
		return model.BuildRecord{}, fmt.Errorf("%s: %w", op, err)
	}
	rec.Cart = cartFromColumn(cart)

	return rec, nil
}

// Update overwrites the selection and cart of an existing build.
func (r *repository) Update(ctx context.Context, rec model.BuildRecord) error {
	const op = "repository.build.Update"

	if rec.ID == uuid.Nil {
		return fmt.Errorf("%s: %w: empty build id", op, model.ErrInvalidArgument)
	}

	ct, err := execUpdate(ctx, r.pool, r.sb, rec)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct == 0 {
		return model.ErrBuildNotFound
	}

	return nil
}

// Checkout stores the checkout and the emptied build in one transaction.
func (r *repository) Checkout(ctx context.Context, rec model.BuildRecord, ev model.CartCheckedOut) (err error) {
	const op = "repository.build.Checkout"

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Error(ctx, "rollback failed", logger.String("op", op), logger.ErrorF(rbErr))
		}
	}()

	items := lo.Map(ev.Items, func(it model.CheckedOutItem, _ int) checkoutItem {
		return checkoutItem{
			Category: it.Category.String(),
			PartID:   it.PartID,
			Name:     it.Name,
			PriceTRY: it.Price,
		}
	})

	ins := r.sb.
		Insert("checkouts").
		Columns("event_id", "build_id", "items", "total_try", "created_at").
		Values(ev.EventID, ev.BuildID, items, ev.Total, ev.OccurredAt)

	sqlStr, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err = tx.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%s: insert checkout: %w", op, err)
	}

	ct, err := execUpdate(ctx, tx, r.sb, rec)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct == 0 {
		err = model.ErrBuildNotFound
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func execUpdate(ctx context.Context, db execer, sb sq.StatementBuilderType, rec model.BuildRecord) (int64, error) {
	q := sb.
		Update("builds").
		Set("selection", selectionColumn(rec.Selection)).
		Set("cart", cartColumn(rec.Cart)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": rec.ID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	ct, err := db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}

	return ct.RowsAffected(), nil
}

func selectionColumn(sel map[string]string) map[string]string {
	if sel == nil {
		return map[string]string{}
	}
	return sel
}

func cartColumn(cart []model.CartRecord) []cartEntry {
	return lo.Map(cart, func(c model.CartRecord, _ int) cartEntry {
		return cartEntry{Category: c.Category, PartID: c.PartID}
	})
}

func cartFromColumn(cart []cartEntry) []model.CartRecord {
	return lo.Map(cart, func(c cartEntry, _ int) model.CartRecord {
		return model.CartRecord{Category: c.Category, PartID: c.PartID}
	})
}
