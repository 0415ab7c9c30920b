package contact

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/agendalabs/contacts-api/internal/pkg/logger"
	"github.com/agendalabs/contacts-api/internal/store"
)

// Result is the uniform envelope every service operation returns. It is
// the sole channel for success, user-facing failure, and server failure;
// no error values cross the service boundary into the transport layer.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    any    `json:"data"`
}

// Service orchestrates repository calls and applies the read-path
// presentation transform. Each operation is terminal in one call; store
// failures are logged with detail and surfaced as generic messages.
type Service struct {
	repo Repository
}

// NewService returns a Service backed by repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

const (
	msgStoreList   = "An unexpected error occurred while retrieving contacts. Please try again later."
	msgStoreGet    = "An unexpected error occurred while retrieving the contact. Please try again later."
	msgStoreCreate = "An unexpected error occurred while creating the contact. Please try again later."
	msgStoreUpdate = "An unexpected error occurred while updating the contact. Please try again later."
	msgStoreDelete = "An unexpected error occurred while deleting the contact. Please try again later."
)

func ok(code int, message string, data any) Result {
	return Result{Success: true, Message: message, Code: code, Data: data}
}

func fail(code int, message string) Result {
	return Result{Success: false, Message: message, Code: code}
}

// List fetches every contact and applies the presentation transform.
func (s *Service) List(ctx context.Context) Result {
	records, err := s.repo.FetchAll(ctx)
	if err != nil {
		logger.Error("list contacts failed", zap.Error(err))
		return fail(http.StatusInternalServerError, msgStoreList)
	}

	views := make([]View, 0, len(records))
	for _, rec := range records {
		views = append(views, present(rec))
	}
	return ok(http.StatusOK, "Contacts retrieved successfully.", views)
}

// GetByID fetches one contact; absence is promoted to a 404 result.
func (s *Service) GetByID(ctx context.Context, id int64) Result {
	rec, err := s.repo.FetchByID(ctx, id)
	if store.IsNotFound(err) {
		return fail(http.StatusNotFound,
			fmt.Sprintf("Contact with ID %d was not found. Please verify the ID is correct.", id))
	}
	if err != nil {
		logger.Error("get contact failed", zap.Int64("id", id), zap.Error(err))
		return fail(http.StatusInternalServerError, msgStoreGet)
	}

	return ok(http.StatusOK, "Contact retrieved successfully.", present(rec))
}

// Create inserts a contact that the caller already validated in insert
// mode. The result carries the generated identifier only, not the record.
func (s *Service) Create(ctx context.Context, m *Contact) Result {
	id, err := s.repo.Insert(ctx, m)
	if err != nil {
		logger.Error("create contact failed", zap.Error(err))
		return fail(http.StatusInternalServerError, msgStoreCreate)
	}

	return ok(http.StatusCreated, "Contact created successfully.", map[string]int64{"id": id})
}

// Update applies a partial update, then re-fetches so the response
// reflects store-confirmed state rather than the caller's input. The
// write and the read-back are two independent, non-transactional calls;
// a crash in between leaves the store consistent but the caller without
// a confirmation response.
func (s *Service) Update(ctx context.Context, id int64, m *Contact) Result {
	if m.IsEmpty() {
		return fail(http.StatusBadRequest, "No data supplied to update.")
	}

	affected, err := s.repo.Update(ctx, id, m)
	if err != nil {
		logger.Error("update contact failed", zap.Int64("id", id), zap.Error(err))
		return fail(http.StatusInternalServerError, msgStoreUpdate)
	}
	if affected == 0 {
		return fail(http.StatusNotFound,
			fmt.Sprintf("Contact with ID %d was not found. No changes were made.", id))
	}

	refetched := s.GetByID(ctx, id)
	if !refetched.Success {
		return refetched
	}
	return ok(http.StatusOK, "Contact updated successfully.", refetched.Data)
}

// Delete removes a contact; zero affected rows is promoted to a 404 result.
func (s *Service) Delete(ctx context.Context, id int64) Result {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		logger.Error("delete contact failed", zap.Int64("id", id), zap.Error(err))
		return fail(http.StatusInternalServerError, msgStoreDelete)
	}
	if affected == 0 {
		return fail(http.StatusNotFound,
			fmt.Sprintf("Contact with ID %d was not found. No changes were made.", id))
	}

	return ok(http.StatusOK, "Contact deleted successfully.", nil)
}
