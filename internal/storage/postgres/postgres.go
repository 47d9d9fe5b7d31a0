package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventRegistry/internal/config"
	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation = "23505"
	classIntegrity      = "23"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if dbCfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// withTx runs fn as one unit of work. The transaction is committed only when
// fn returns nil; every other exit path, panics included, rolls it back.
func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *Storage) Events(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, title, description, date, location
		FROM events
		ORDER BY id`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Date,
			&event.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) Event(ctx context.Context, id int) (*models.Event, error) {
	query := `
		SELECT id, title, description, date, location
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Location,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) CreateEvent(ctx context.Context, in models.EventInput) (int, error) {
	query := `
		INSERT INTO events (title, description, date, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query, in.Title, in.Description, in.Date, in.Location).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, id int, in models.EventInput) error {
	query := `
		UPDATE events
		SET title = $2, description = $3, date = $4, location = $5
		WHERE id = $1`

	result, err := s.DB.ExecContext(ctx, query, id, in.Title, in.Description, in.Date, in.Location)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// DeleteAllEvents removes every registration and then every event. Event
// rows are locked first so concurrent registrations wait for the delete.
func (s *Storage) DeleteAllEvents(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT id FROM events FOR UPDATE`); err != nil {
			return fmt.Errorf("failed to lock events: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM registrations`); err != nil {
			return fmt.Errorf("failed to delete registrations: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM events`); err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}

		return nil
	})
}

func (s *Storage) DeleteEvent(ctx context.Context, id int) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := lockEvent(ctx, tx, id); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM registrations WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete event registrations: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}

		return nil
	})
}

// RegisterForEvent registers user for the event, creating the user first if
// the username is unknown. The user is committed on its own, so a failed
// registration never takes the new user down with it. The supplied profile
// is ignored when the username already exists.
func (s *Storage) RegisterForEvent(ctx context.Context, eventID int, user models.User) error {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		exists, err := eventExists(ctx, tx, eventID)
		if err != nil {
			return err
		}

		if !exists {
			return storage.ErrEventNotFound
		}

		insertUser := `
			INSERT INTO users (username, name, email)
			VALUES ($1, $2, $3)
			ON CONFLICT (username) DO NOTHING`

		if _, err = tx.ExecContext(ctx, insertUser, user.Username, user.Name, user.Email); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		insertRegistration := `
			INSERT INTO registrations (username, event_id)
			VALUES ($1, $2)`

		_, err := tx.ExecContext(ctx, insertRegistration, user.Username, eventID)
		return err
	})
	if err != nil {
		if isIntegrityViolation(err) {
			return fmt.Errorf("%w: %v", storage.ErrRegistrationFailed, err)
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}

	return nil
}

func (s *Storage) Users(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT username, name, email
		FROM users
		ORDER BY username`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.Username, &user.Name, &user.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func (s *Storage) User(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT username, name, email
		FROM users
		WHERE username = $1`

	var user models.User
	err := s.DB.QueryRowContext(ctx, query, username).Scan(&user.Username, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) CreateUser(ctx context.Context, user models.User) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, user.Username).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check existing user: %w", err)
		}

		if exists {
			return storage.ErrUserExists
		}

		insertQuery := `
			INSERT INTO users (username, name, email)
			VALUES ($1, $2, $3)`

		if _, err = tx.ExecContext(ctx, insertQuery, user.Username, user.Name, user.Email); err != nil {
			if isUniqueViolation(err) {
				return storage.ErrUserExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		return nil
	})
}

// DeleteAllUsers removes every registration and then every user, locking the
// user rows first.
func (s *Storage) DeleteAllUsers(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT username FROM users FOR UPDATE`); err != nil {
			return fmt.Errorf("failed to lock users: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM registrations`); err != nil {
			return fmt.Errorf("failed to delete registrations: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return fmt.Errorf("failed to delete users: %w", err)
		}

		return nil
	})
}

func (s *Storage) DeleteUser(ctx context.Context, username string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var locked string
		err := tx.QueryRowContext(ctx, `SELECT username FROM users WHERE username = $1 FOR UPDATE`, username).Scan(&locked)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return storage.ErrUserNotFound
			}
			return fmt.Errorf("failed to lock user: %w", err)
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM registrations WHERE username = $1`, username); err != nil {
			return fmt.Errorf("failed to delete user registrations: %w", err)
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		return nil
	})
}

func (s *Storage) Registrations(ctx context.Context) ([]models.Registration, error) {
	query := `
		SELECT username, event_id
		FROM registrations
		ORDER BY event_id, username`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get registrations: %w", err)
	}
	defer rows.Close()

	registrations := make([]models.Registration, 0)
	for rows.Next() {
		var registration models.Registration
		if err = rows.Scan(&registration.Username, &registration.EventID); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		registrations = append(registrations, registration)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return registrations, nil
}

func (s *Storage) DeleteRegistration(ctx context.Context, eventID int, username string) error {
	query := `
		DELETE FROM registrations
		WHERE event_id = $1 AND username = $2`

	result, err := s.DB.ExecContext(ctx, query, eventID, username)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	if affected == 0 {
		return storage.ErrRegistrationNotFound
	}

	return nil
}

func eventExists(ctx context.Context, tx *sql.Tx, id int) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check event: %w", err)
	}

	return exists, nil
}

// lockEvent takes a row lock on the event. Registrations referencing it block
// on their foreign key check until the caller's transaction ends.
func lockEvent(ctx context.Context, tx *sql.Tx, id int) error {
	var locked int
	err := tx.QueryRowContext(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrEventNotFound
		}
		return fmt.Errorf("failed to lock event: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation
}

func isIntegrityViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Class() == classIntegrity
}
