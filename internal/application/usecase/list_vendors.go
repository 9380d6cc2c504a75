package usecase

import (
	"context"
	"fmt"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/model"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
)

// ListVendorsUseCase reads the marketplace vendor directory.
type ListVendorsUseCase struct {
	vendors port.VendorRepository
}

// NewListVendorsUseCase wires dependencies.
func NewListVendorsUseCase(vendors port.VendorRepository) *ListVendorsUseCase {
	return &ListVendorsUseCase{vendors: vendors}
}

// Execute lists vendors, optionally filtered by crop or district. Both
// filters set at once narrows by crop first, then district.
func (uc *ListVendorsUseCase) Execute(ctx context.Context, crop, district string) ([]dto.VendorResponse, error) {
	var (
		vendors []model.Vendor
		err     error
	)

	switch {
	case crop != "":
		vendors, err = uc.vendors.FindByCrop(ctx, crop)
	case district != "":
		vendors, err = uc.vendors.FindByDistrict(ctx, district)
	default:
		vendors, err = uc.vendors.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}

	out := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		if crop != "" && district != "" && v.District != district {
			continue
		}
		out = append(out, toVendorResponse(v))
	}
	return out, nil
}
