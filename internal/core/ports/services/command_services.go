package services

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/dto"
)

// CommandSvcFacade interprets free-text bookkeeping commands (Arabic or
// English) and executes them against the ledger on the caller's behalf.
type CommandSvcFacade interface {
	Process(ctx context.Context, organizationID, userID, text string) (*dto.CommandResponse, error)
}
