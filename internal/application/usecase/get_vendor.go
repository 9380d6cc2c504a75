package usecase

import (
	"context"
	"fmt"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/domain/port"
)

// GetVendorUseCase reads a single vendor from the directory.
type GetVendorUseCase struct {
	vendors port.VendorRepository
}

// NewGetVendorUseCase wires dependencies.
func NewGetVendorUseCase(vendors port.VendorRepository) *GetVendorUseCase {
	return &GetVendorUseCase{vendors: vendors}
}

// Execute retrieves a vendor by ID.
func (uc *GetVendorUseCase) Execute(ctx context.Context, id string) (dto.VendorResponse, error) {
	vendor, err := uc.vendors.FindByID(ctx, id)
	if err != nil {
		return dto.VendorResponse{}, fmt.Errorf("get vendor: %w", err)
	}
	return toVendorResponse(vendor), nil
}
