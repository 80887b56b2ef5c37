// Package notify delivers DealActivated events to the surrounding system.
// Delivery is fire-and-forget: a failed or dropped event never affects the
// booking that produced it.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DealActivated is emitted once per deal, by the booking whose commit made the
// customer count reach the minimum.
type DealActivated struct {
	EventID     string    `json:"eventId"`
	DealID      int       `json:"dealId"`
	ActivatedAt time.Time `json:"activatedAt"`
}

func NewDealActivated(dealID int, at time.Time) DealActivated {
	return DealActivated{
		EventID:     uuid.NewString(),
		DealID:      dealID,
		ActivatedAt: at,
	}
}

// Publisher hands an event to its consumers.
type Publisher interface {
	Publish(ctx context.Context, event DealActivated) error
}

// LogPublisher writes events to the application log. It stands in for an
// external broker at this boundary.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, event DealActivated) error {
	zap.L().Info("deal activated",
		zap.String("event_id", event.EventID),
		zap.Int("deal_id", event.DealID),
		zap.Time("activated_at", event.ActivatedAt),
	)
	return nil
}
