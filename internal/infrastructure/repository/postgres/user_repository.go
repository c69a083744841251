package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lapolla/quiniela/internal/domain/user"
	qb "github.com/lapolla/quiniela/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ListActive(ctx context.Context) ([]user.User, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("active", true)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}

	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user: %w", err)
	}

	return userFromRow(row), true, nil
}

func (r *UserRepository) Create(ctx context.Context, item user.User) (user.User, error) {
	insertModel := userInsertModel{
		GivenName:    item.GivenName,
		FamilyName:   item.FamilyName,
		RegisteredAt: item.RegisteredAt,
		Active:       item.Active,
	}
	query, args, err := qb.InsertModel("users", insertModel, "RETURNING id")
	if err != nil {
		return user.User{}, fmt.Errorf("build insert user query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}

	return item, nil
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:           row.ID,
		GivenName:    row.GivenName,
		FamilyName:   row.FamilyName,
		RegisteredAt: row.RegisteredAt,
		Active:       row.Active,
	}
}
