// Package store keeps the catalog of characters and their ability cards.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/SvenDH/go-card-hand/hand"
)

//go:embed migrations/*.sql
var migrations embed.FS

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
)

type Character struct {
	Key  string
	Name string
}

type Card struct {
	ID        hand.CardID
	Character string
	Name      string
	Level     int
}

type Store struct {
	db *sql.DB
}

// Open opens the catalog at path and applies pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) AddCharacter(ctx context.Context, c Character) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM characters WHERE key = ?", c.Key).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("character %q: %w", c.Key, ErrDuplicate)
	}
	return s.execWrap(ctx, "INSERT INTO characters(key, name) VALUES(?, ?)", c.Key, c.Name)
}

func (s *Store) Characters(ctx context.Context) ([]Character, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, name FROM characters ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()

	var out []Character
	for rows.Next() {
		var c Character
		if err := rows.Scan(&c.Key, &c.Name); err != nil {
			return nil, fmt.Errorf("error scanning character: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) AddCard(ctx context.Context, c Card) error {
	if _, err := s.character(ctx, c.Character); err != nil {
		return err
	}
	if c.Level == 0 {
		c.Level = 1
	}
	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cards WHERE character_key = ? AND id = ?", c.Character, string(c.ID)).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("card %s-%s: %w", c.Character, c.ID, ErrDuplicate)
	}
	return s.execWrap(ctx,
		"INSERT INTO cards(id, character_key, name, level) VALUES(?, ?, ?, ?)",
		string(c.ID), c.Character, c.Name, c.Level)
}

// Cards lists a character's cards by level, then id.
func (s *Store) Cards(ctx context.Context, character string) ([]Card, error) {
	if _, err := s.character(ctx, character); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, character_key, name, level FROM cards WHERE character_key = ? ORDER BY level, id",
		character)
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()

	var out []Card
	for rows.Next() {
		var (
			c  Card
			id string
		)
		if err := rows.Scan(&id, &c.Character, &c.Name, &c.Level); err != nil {
			return nil, fmt.Errorf("error scanning card: %w", err)
		}
		c.ID = hand.CardID(id)
		out = append(out, c)
	}
	return out, rows.Err()
}

// NewHand deals every catalog card of character into a new hand, visible and
// in hand.
func (s *Store) NewHand(ctx context.Context, character string) (*hand.Hand, error) {
	cards, err := s.Cards(ctx, character)
	if err != nil {
		return nil, err
	}
	dealt := make([]hand.Card, len(cards))
	for i, c := range cards {
		dealt[i] = hand.Card{ID: c.ID, Character: c.Character, Visible: true, Status: hand.InHand}
	}
	return hand.New(dealt...), nil
}

func (s *Store) character(ctx context.Context, key string) (Character, error) {
	var c Character
	err := s.db.QueryRowContext(ctx, "SELECT key, name FROM characters WHERE key = ? LIMIT 1", key).
		Scan(&c.Key, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return c, fmt.Errorf("character %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return c, fmt.Errorf("error in db execution: %w", err)
	}
	return c, nil
}

func (s *Store) execWrap(ctx context.Context, query string, args ...any) error {
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	return nil
}
