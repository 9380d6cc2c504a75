package grpc

// proto.go defines the gRPC server interface derived from
// krishi/advisory/v1/advisory.proto. This file serves as a stand-in for
// buf-generated code; messages travel over the registered JSON codec until
// `buf generate` replaces it.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Ashuj56/krishiconnect-SIH-sub001/internal/application/dto"
)

// AnalyzeSoilRequest carries one soil test for classification.
type AnalyzeSoilRequest struct {
	FarmerID       string  `json:"farmer_id"`
	FarmID         string  `json:"farm_id,omitempty"`
	NitrogenKgHa   float64 `json:"nitrogen_kg_ha"`
	PhosphorusKgHa float64 `json:"phosphorus_kg_ha"`
	PotassiumKgHa  float64 `json:"potassium_kg_ha"`
	PH             float64 `json:"ph"`
}

// AnalyzeSoilResponse wraps the classified report.
type AnalyzeSoilResponse struct {
	Report dto.SoilReportResponse `json:"report"`
}

// ScoreEligibilityRequest carries a scoring-only eligibility check. Nothing
// is persisted; lenders use this to pre-qualify a farmer.
type ScoreEligibilityRequest struct {
	CropStage       string   `json:"crop_stage"`
	SoilPH          *float64 `json:"soil_ph,omitempty"`
	SoilNitrogen    *float64 `json:"soil_nitrogen,omitempty"`
	LandAreaAcres   *float64 `json:"land_area_acres,omitempty"`
	RequestedAmount string   `json:"requested_amount"`
	PastLoanCount   int      `json:"past_loan_count"`
	DefaultCount    int      `json:"default_count"`
}

// ScoreEligibilityResponse reports the score and terms.
type ScoreEligibilityResponse struct {
	Score             int                  `json:"score"`
	MaxEligibleAmount string               `json:"max_eligible_amount"`
	InterestRatePct   float64              `json:"interest_rate_pct"`
	DurationMonths    int                  `json:"duration_months"`
	Eligible          bool                 `json:"eligible"`
	Reason            string               `json:"reason,omitempty"`
	Factors           []dto.FactorResponse `json:"factors,omitempty"`
}

// GetRepaymentScheduleRequest asks for an amortization preview.
type GetRepaymentScheduleRequest struct {
	Principal       string  `json:"principal"`
	InterestRatePct float64 `json:"interest_rate_pct"`
	TermMonths      int     `json:"term_months"`
	StartDate       string  `json:"start_date,omitempty"` // YYYY-MM-DD, defaults to today
}

// GetRepaymentScheduleResponse carries the month-by-month plan.
type GetRepaymentScheduleResponse struct {
	EMI      string                       `json:"emi"`
	Schedule []dto.RepaymentEntryResponse `json:"schedule"`
}

// GetCropStageRequest locates a field on its crop calendar.
type GetCropStageRequest struct {
	Crop         string `json:"crop"`
	PlantingDate string `json:"planting_date"` // YYYY-MM-DD
}

// GetCropStageResponse carries the stage advice, nil when the crop has no
// calendar or the planting date is in the future.
type GetCropStageResponse struct {
	StageAdvice *dto.StageAdviceResponse `json:"stage_advice,omitempty"`
}

// AdvisoryServiceServer is the server API for AdvisoryService.
// It mirrors the proto-generated interface from krishi.advisory.v1.AdvisoryService.
type AdvisoryServiceServer interface {
	AnalyzeSoil(context.Context, *AnalyzeSoilRequest) (*AnalyzeSoilResponse, error)
	ScoreEligibility(context.Context, *ScoreEligibilityRequest) (*ScoreEligibilityResponse, error)
	GetRepaymentSchedule(context.Context, *GetRepaymentScheduleRequest) (*GetRepaymentScheduleResponse, error)
	GetCropStage(context.Context, *GetCropStageRequest) (*GetCropStageResponse, error)
	mustEmbedUnimplementedAdvisoryServiceServer()
}

// UnimplementedAdvisoryServiceServer provides forward-compatible default implementations.
type UnimplementedAdvisoryServiceServer struct{}

func (UnimplementedAdvisoryServiceServer) AnalyzeSoil(context.Context, *AnalyzeSoilRequest) (*AnalyzeSoilResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeSoil not implemented")
}
func (UnimplementedAdvisoryServiceServer) ScoreEligibility(context.Context, *ScoreEligibilityRequest) (*ScoreEligibilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreEligibility not implemented")
}
func (UnimplementedAdvisoryServiceServer) GetRepaymentSchedule(context.Context, *GetRepaymentScheduleRequest) (*GetRepaymentScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRepaymentSchedule not implemented")
}
func (UnimplementedAdvisoryServiceServer) GetCropStage(context.Context, *GetCropStageRequest) (*GetCropStageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCropStage not implemented")
}
func (UnimplementedAdvisoryServiceServer) mustEmbedUnimplementedAdvisoryServiceServer() {}

// RegisterAdvisoryServiceServer registers the AdvisoryServiceServer with the gRPC server.
func RegisterAdvisoryServiceServer(s *grpclib.Server, srv AdvisoryServiceServer) {
	s.RegisterService(&_AdvisoryService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _AdvisoryService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "krishi.advisory.v1.AdvisoryService",
	HandlerType: (*AdvisoryServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AnalyzeSoil", Handler: _AdvisoryService_AnalyzeSoil_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "ScoreEligibility", Handler: _AdvisoryService_ScoreEligibility_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetRepaymentSchedule", Handler: _AdvisoryService_GetRepaymentSchedule_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetCropStage", Handler: _AdvisoryService_GetCropStage_Handler},                 //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _AdvisoryService_AnalyzeSoil_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeSoilRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdvisoryServiceServer).AnalyzeSoil(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/krishi.advisory.v1.AdvisoryService/AnalyzeSoil",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdvisoryServiceServer).AnalyzeSoil(ctx, req.(*AnalyzeSoilRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AdvisoryService_ScoreEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdvisoryServiceServer).ScoreEligibility(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/krishi.advisory.v1.AdvisoryService/ScoreEligibility",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdvisoryServiceServer).ScoreEligibility(ctx, req.(*ScoreEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AdvisoryService_GetRepaymentSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRepaymentScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdvisoryServiceServer).GetRepaymentSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/krishi.advisory.v1.AdvisoryService/GetRepaymentSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdvisoryServiceServer).GetRepaymentSchedule(ctx, req.(*GetRepaymentScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AdvisoryService_GetCropStage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCropStageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdvisoryServiceServer).GetCropStage(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/krishi.advisory.v1.AdvisoryService/GetCropStage",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdvisoryServiceServer).GetCropStage(ctx, req.(*GetCropStageRequest))
	}
	return interceptor(ctx, in, info, handler)
}
