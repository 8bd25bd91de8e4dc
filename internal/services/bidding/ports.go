package bidding

import (
	"context"

	"bahar-go/internal/model"
)

type ProjectSource interface {
	Source() string
	ListOpenProjects(ctx context.Context) ([]model.ProjectInfo, error)
}

type OfferSubmitter interface {
	SubmitOffer(ctx context.Context, project model.ProjectInfo, offer model.GeneratedOffer) (model.SubmissionResult, error)
}

type Notifier interface {
	SendAlert(project model.ProjectInfo, offer model.GeneratedOffer)
}
