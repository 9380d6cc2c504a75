package usecase

import (
	"errors"
	"fmt"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// validationErr tags an aggregate rejection so the transport layers map it to
// a client error rather than a server fault.
func validationErr(op string, err error) error {
	if errors.Is(err, valueobject.ErrValidation) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, valueobject.ErrValidation, err)
}
