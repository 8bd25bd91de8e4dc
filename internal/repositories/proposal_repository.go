package repositories

import (
	"context"
	"errors"

	"bahar-go/internal/model"
)

var ErrNotFound = errors.New("record not found")

type ProposalRepository interface {
	CreateIfNotExists(ctx context.Context, input model.ProposalCreate) (model.Proposal, bool, error)
	Exists(ctx context.Context, source, externalID string) (bool, error)
}
