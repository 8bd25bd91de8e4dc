package sqlc

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	db "bahar-go/internal/db/sqlc"
	"bahar-go/internal/model"
)

type ProposalRepository struct {
	queries *db.Queries
}

func NewProposalRepository(queries *db.Queries) *ProposalRepository {
	return &ProposalRepository{queries: queries}
}

func (r *ProposalRepository) CreateIfNotExists(ctx context.Context, input model.ProposalCreate) (model.Proposal, bool, error) {
	proposal, err := r.queries.CreateProposalIfNotExists(ctx, db.CreateProposalIfNotExistsParams{
		Source:        input.Source,
		ExternalID:    input.ExternalID,
		Title:         input.Title,
		Link:          input.Link,
		Category:      input.Category,
		TotalPriceSar: input.TotalPriceSAR,
		IsMonthly:     input.IsMonthly,
		Submitted:     input.Submitted,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Proposal{}, false, nil
	}
	if err != nil {
		return model.Proposal{}, false, err
	}
	return mapProposal(proposal), true, nil
}

func (r *ProposalRepository) Exists(ctx context.Context, source, externalID string) (bool, error) {
	return r.queries.ProposalExists(ctx, db.ProposalExistsParams{
		Source:     source,
		ExternalID: externalID,
	})
}

func mapProposal(proposal db.Proposal) model.Proposal {
	var createdAt time.Time
	if proposal.CreatedAt.Valid {
		createdAt = proposal.CreatedAt.Time
	}
	return model.Proposal{
		ID:            proposal.ID,
		Source:        proposal.Source,
		ExternalID:    proposal.ExternalID,
		Title:         proposal.Title,
		Link:          proposal.Link,
		Category:      proposal.Category,
		TotalPriceSAR: proposal.TotalPriceSar,
		IsMonthly:     proposal.IsMonthly,
		Submitted:     proposal.Submitted,
		CreatedAt:     createdAt,
	}
}
