package service

import (
	"github.com/nordbooks/backoffice-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Statement *StatementService
}

// NewService creates a new Service with the given storage and action
// processor (the operator delegator in production).
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Statement: NewStatementService(store, processor),
	}
}
