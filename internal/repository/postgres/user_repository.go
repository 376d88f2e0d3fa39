package postgres

import (
	"context"
	"database/sql"
	"errors"

	"careerhub/internal/common"
	"careerhub/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, email, name, role, created_at FROM users WHERE email = $1`, email)
	var u user.User
	var role sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "user not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	u.Role = user.ParseRole(role.String)
	return &u, nil
}
