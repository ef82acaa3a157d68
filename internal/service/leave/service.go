package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/hadirin/hadirin-backend-go/internal/domain/leave"
	"github.com/hadirin/hadirin-backend-go/internal/pkg/validator"
	"github.com/hadirin/hadirin-backend-go/internal/service/file"
)

type LeaveServiceImpl struct {
	requestRepo leave.RequestRepository
	fileService file.FileService
	location    *time.Location
}

func NewLeaveService(requestRepo leave.RequestRepository, fileService file.FileService, location *time.Location) leave.LeaveService {
	if location == nil {
		location = time.UTC
	}
	return &LeaveServiceImpl{
		requestRepo: requestRepo,
		fileService: fileService,
		location:    location,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	kind := leave.Kind(req.Kind)
	if kind == leave.KindSickLeave && req.FileHeader == nil {
		return leave.RequestResponse{}, leave.ErrAttachmentRequired
	}

	var attachmentURL *string
	if req.FileHeader != nil {
		url, err := s.fileService.UploadRequestAttachment(ctx, employeeID, req.File, req.FileHeader.Filename)
		if err != nil {
			return leave.RequestResponse{}, fmt.Errorf("failed to upload attachment: %w", err)
		}
		attachmentURL = &url
	}

	startDate, _ := time.ParseInLocation("2006-01-02", req.StartDate, s.location)
	endDate, _ := time.ParseInLocation("2006-01-02", req.EndDate, s.location)

	var startMinute, endMinute *int
	if req.StartTime != "" {
		m, _ := validator.IsValidTimeOfDay(req.StartTime)
		startMinute = &m
	}
	if req.EndTime != "" {
		m, _ := validator.IsValidTimeOfDay(req.EndTime)
		endMinute = &m
	}

	now := time.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	created, err := s.requestRepo.Create(ctx, leave.Request{
		ID:         uuid.Must(uuid.NewV7()).String(),
		EmployeeID: employeeID,
		Kind:       kind,
		StartDate:  startDate,
		EndDate:    endDate,
		// A range starting before today documents something that already
		// happened; the classifier picks it up once approved.
		IsRetrospective: startDate.Before(today),
		StartMinute:     startMinute,
		EndMinute:       endMinute,
		Reason:          req.Reason,
		AttachmentURL:   attachmentURL,
		Status:          leave.StatusPending,
		SubmittedAt:     now,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	return mapRequestToResponse(created), nil
}

// GetMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context, filter leave.RequestFilter) (leave.ListRequestsResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.ListRequestsResponse{}, err
	}
	normalizeFilter(&filter)

	requests, total, err := s.requestRepo.GetMyRequests(ctx, employeeID, filter)
	if err != nil {
		return leave.ListRequestsResponse{}, fmt.Errorf("failed to list employee requests: %w", err)
	}

	return buildListResponse(requests, total, filter), nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.RequestFilter) (leave.ListRequestsResponse, error) {
	normalizeFilter(&filter)

	requests, total, err := s.requestRepo.List(ctx, filter)
	if err != nil {
		return leave.ListRequestsResponse{}, fmt.Errorf("failed to list requests: %w", err)
	}

	return buildListResponse(requests, total, filter), nil
}

// GetRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetRequest(ctx context.Context, id string) (leave.RequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get request: %w", err)
	}
	return mapRequestToResponse(request), nil
}

// ApproveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, req leave.DecideRequestRequest) (leave.RequestResponse, error) {
	return s.decide(ctx, req.ID, leave.StatusApproved, req.Note)
}

// RejectRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, req leave.RejectRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}
	return s.decide(ctx, req.ID, leave.StatusRejected, &req.Note)
}

// decide applies a terminal decision. The conditional update in the
// repository makes concurrent decisions race-safe: exactly one wins, the
// rest observe zero transitioned rows.
func (s *LeaveServiceImpl) decide(ctx context.Context, id string, status leave.Status, note *string) (leave.RequestResponse, error) {
	adminID, err := userIDFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := s.requestRepo.GetByID(ctx, id); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get request: %w", err)
	}

	rows, err := s.requestRepo.Decide(ctx, id, status, adminID, note, time.Now().In(s.location))
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to decide request: %w", err)
	}
	if rows == 0 {
		return leave.RequestResponse{}, leave.ErrRequestAlreadyProcessed
	}

	decided, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get decided request: %w", err)
	}

	return mapRequestToResponse(decided), nil
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func normalizeFilter(filter *leave.RequestFilter) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}
}

func buildListResponse(requests []leave.Request, total int64, filter leave.RequestFilter) leave.ListRequestsResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, mapRequestToResponse(r))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return leave.ListRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Requests:   responses,
	}
}

func mapRequestToResponse(r leave.Request) leave.RequestResponse {
	resp := leave.RequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Kind:            string(r.Kind),
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Reason:          r.Reason,
		AttachmentURL:   r.AttachmentURL,
		Status:          string(r.Status),
		IsRetrospective: r.IsRetrospective,
		DecidedBy:       r.DecidedBy,
		DecisionNote:    r.DecisionNote,
		SubmittedAt:     r.SubmittedAt.Format(time.RFC3339),
	}

	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.StartMinute != nil {
		clock := minuteToClock(*r.StartMinute)
		resp.StartTime = &clock
	}
	if r.EndMinute != nil {
		clock := minuteToClock(*r.EndMinute)
		resp.EndTime = &clock
	}
	if r.DecidedAt != nil {
		decidedAt := r.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}

	return resp
}

func minuteToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
