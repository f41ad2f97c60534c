// Package bookingdb persists confirmed bookings in SQLite: a user row, a
// booking row, and a payment row per completed purchase, plus the joined
// receipt view.
package bookingdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    age INTEGER,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS bookings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    ticket_type TEXT NOT NULL,
    ticket_id TEXT NOT NULL,
    origin TEXT,
    destination TEXT,
    date TEXT,
    price REAL NOT NULL,
    transaction_id TEXT NOT NULL,
    status TEXT DEFAULT 'confirmed',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(id)
);
CREATE TABLE IF NOT EXISTS payments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    booking_id INTEGER NOT NULL,
    amount REAL NOT NULL,
    transaction_id TEXT NOT NULL,
    status TEXT DEFAULT 'completed',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (booking_id) REFERENCES bookings(id)
);`

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) CreateUser(ctx context.Context, name, email, phone string, age int) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, email, phone, age) VALUES (?, ?, ?, ?)",
		name, email, phone, age)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) CreateBooking(ctx context.Context, userID int64, ticketType, ticketID, origin, destination, date string, price float64, transactionID string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO bookings (user_id, ticket_type, ticket_id, origin, destination, date, price, transaction_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, ticketType, ticketID, origin, destination, date, price, transactionID)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) CreatePayment(ctx context.Context, bookingID int64, amount float64, transactionID, status string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO payments (booking_id, amount, transaction_id, status) VALUES (?, ?, ?, ?)",
		bookingID, amount, transactionID, status)
	if err != nil {
		return 0, fmt.Errorf("insert payment: %w", err)
	}
	return res.LastInsertId()
}

// Receipt is the joined view across users, bookings, and payments.
type Receipt struct {
	BookingID     int64   `json:"booking_id"`
	TicketType    string  `json:"ticket_type"`
	TicketID      string  `json:"ticket_id"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Date          string  `json:"date"`
	Price         float64 `json:"price"`
	TransactionID string  `json:"transaction_id"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	PassengerName string  `json:"passenger_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Age           int     `json:"age"`
	PaymentStatus string  `json:"payment_status"`
}

// Receipt returns the joined receipt view, or nil when no booking has that
// id.
func (s *Store) Receipt(ctx context.Context, bookingID int64) (*Receipt, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT
		    b.id, b.ticket_type, b.ticket_id, b.origin, b.destination,
		    b.date, b.price, b.transaction_id, b.status, b.created_at,
		    u.name, u.email, u.phone, u.age,
		    COALESCE(p.status, '')
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		LEFT JOIN payments p ON p.booking_id = b.id
		WHERE b.id = ?`, bookingID)

	var r Receipt
	err := row.Scan(
		&r.BookingID, &r.TicketType, &r.TicketID, &r.Origin, &r.Destination,
		&r.Date, &r.Price, &r.TransactionID, &r.Status, &r.CreatedAt,
		&r.PassengerName, &r.Email, &r.Phone, &r.Age,
		&r.PaymentStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("receipt query: %w", err)
	}
	return &r, nil
}
