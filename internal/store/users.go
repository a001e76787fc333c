package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"STYLEMATE_BACK-END/internal/models"
)

// UserStore is the credential store. Usernames are unique; password
// hashes are write-once. There are no update or delete operations.
type UserStore interface {
	// CreateUser hashes the password and inserts a new user, returning
	// its id. Fails with ErrDuplicateUsername if the username is taken.
	CreateUser(ctx context.Context, username, password string) (int64, error)

	// VerifyCredentials checks username/password and returns the user id
	// on a match, ErrInvalidCredentials otherwise.
	VerifyCredentials(ctx context.Context, username, password string) (int64, error)

	// GetUsername returns the username for an id, ErrNotFound if absent.
	GetUsername(ctx context.Context, id int64) (string, error)

	// FindOrCreateExternal returns the id of an existing user, or creates
	// one with an unusable random password. Used for OAuth sign-in.
	FindOrCreateExternal(ctx context.Context, username string) (int64, error)
}

// PostgresUserStore implements UserStore on a pgx pool.
type PostgresUserStore struct {
	db *pgxpool.Pool
}

// NewPostgresUserStore creates a new PostgresUserStore instance
func NewPostgresUserStore(db *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) CreateUser(ctx context.Context, username, password string) (int64, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var id int64
	err = s.db.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, now(), now())
		 RETURNING id`,
		username, string(hashed)).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicateUsername
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

func (s *PostgresUserStore) VerifyCredentials(ctx context.Context, username, password string) (int64, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		`SELECT id, username, password_hash FROM users WHERE username = $1`,
		username).Scan(&user.ID, &user.Username, &user.PasswordHash)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrInvalidCredentials
		}
		return 0, fmt.Errorf("select user: %w", err)
	}

	// bcrypt comparison is constant-time.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, ErrInvalidCredentials
	}

	return user.ID, nil
}

func (s *PostgresUserStore) GetUsername(ctx context.Context, id int64) (string, error) {
	var username string
	err := s.db.QueryRow(ctx,
		`SELECT username FROM users WHERE id = $1`, id).Scan(&username)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("select username: %w", err)
	}

	return username, nil
}

func (s *PostgresUserStore) FindOrCreateExternal(ctx context.Context, username string) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx,
		`SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("select user: %w", err)
	}

	// No local password for externally authenticated accounts; store a
	// random one so the row satisfies the schema but can never be logged
	// into with a password.
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return 0, fmt.Errorf("generate password: %w", err)
	}

	id, err = s.CreateUser(ctx, username, hex.EncodeToString(buf))
	if errors.Is(err, ErrDuplicateUsername) {
		// Lost a race with a concurrent sign-in for the same account.
		err = s.db.QueryRow(ctx,
			`SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}
