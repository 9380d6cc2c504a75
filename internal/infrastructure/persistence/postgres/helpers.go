package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
)

// scannable abstracts pgx.Row and pgx.Rows so scan helpers serve both.
type scannable interface {
	Scan(dest ...any) error
}

// mapNoRows converts the pgx sentinel into the domain-level not-found error.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrNotFound
	}
	return err
}
