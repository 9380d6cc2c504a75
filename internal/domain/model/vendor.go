package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/valueobject"
)

// Vendor is a marketplace directory entry: a registered buyer with the crops
// it purchases, its quality floor and remaining daily capacity. A plain read
// model; the directory is maintained by back-office CRUD, not by workflows.
type Vendor struct {
	ID         string
	Name       string
	District   string
	Crops      []string
	MinGrade   valueobject.HarvestGrade
	CapacityKg decimal.Decimal
	PricePerKg decimal.Decimal
	Phone      string
	CreatedAt  time.Time
}

// Buys reports whether the vendor purchases the given crop.
func (v Vendor) Buys(crop string) bool {
	for _, c := range v.Crops {
		if c == crop {
			return true
		}
	}
	return false
}
