package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/edenspa/eden-spa-api/internal/model"
)

// AccountRepo provides access to the `accounts` table. Accounts are
// append-only: there are no update or delete operations by design.
type AccountRepo struct{ DB *sql.DB }

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Create inserts a new account and populates its generated ID. The
// identifier is normalized to lowercase before insertion; a unique-key
// violation maps to ErrIdentifierExists.
func (r *AccountRepo) Create(ctx context.Context, acc *model.Account) error {
	acc.Identifier = strings.ToLower(strings.TrimSpace(acc.Identifier))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts (name, identifier, secret, birth_day, birth_month, birth_date) VALUES (?,?,?,?,?,?)",
		acc.Name, acc.Identifier, acc.Secret, acc.BirthDay, acc.BirthMonth, acc.BirthDate)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrIdentifierExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	acc.ID = uint64(id)
	return nil
}

// GetByIdentifier fetches an account by its normalized identifier.
func (r *AccountRepo) GetByIdentifier(ctx context.Context, identifier string) (model.Account, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,identifier,secret,birth_day,birth_month,birth_date,created_at FROM accounts WHERE identifier=? LIMIT 1",
		identifier).Scan(&a.ID, &a.Name, &a.Identifier, &a.Secret, &a.BirthDay, &a.BirthMonth, &a.BirthDate, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrAccountNotFound
	}
	return a, err
}

// Authenticate performs the plain-text identifier+secret match the site has
// always done. It returns ErrAccountNotFound both for unknown identifiers
// and for wrong secrets so callers surface a single invalid-credentials
// response.
func (r *AccountRepo) Authenticate(ctx context.Context, identifier, secret string) (model.Account, error) {
	a, err := r.GetByIdentifier(ctx, identifier)
	if err != nil {
		return model.Account{}, err
	}
	if a.Secret != secret {
		return model.Account{}, ErrAccountNotFound
	}
	return a, nil
}
