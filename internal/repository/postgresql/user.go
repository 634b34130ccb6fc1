package postgresql

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/storage"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		"INSERT INTO users (username, password) VALUES ($1, $2)",
		username, string(hashedPassword))
	return err
}

// EnsureAdmin seeds the bootstrap account on first start so a fresh
// deployment can authenticate. An existing row is left untouched, including
// its password.
func (r *UserRepo) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return errors.New("admin username and password must not be empty")
	}

	var count int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE username = $1", username).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.CreateUser(ctx, username, password)
}

func (r *UserRepo) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	var hashedPassword string
	err := r.db.ExecQueryRow(ctx,
		"SELECT password FROM users WHERE username = $1", username).Scan(&hashedPassword)
	if err != nil {
		return false, errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
