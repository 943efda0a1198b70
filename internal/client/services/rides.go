package services

import (
	"context"

	"github.com/ifti227i/RideShareX/internal/client/client"
	"github.com/ifti227i/RideShareX/internal/client/models"
	"github.com/ifti227i/RideShareX/internal/client/rides"
	"github.com/ifti227i/RideShareX/internal/client/session"
	"github.com/ifti227i/RideShareX/internal/logging"
)

type RideService interface {
	AvailableRides(ctx context.Context) ([]models.Rider, Source, error)
}

type rideService struct {
	client  client.Client
	session *session.Session
	tokens  *LocalTokens
	log     logging.Logger
}

func NewRideService(c client.Client, s *session.Session, tokens *LocalTokens, log logging.Logger) RideService {
	return &rideService{client: c, session: s, tokens: tokens, log: log}
}

// AvailableRides lists riders from GET /rides, or the sample riders when
// the API cannot answer.
func (r *rideService) AvailableRides(ctx context.Context) ([]models.Rider, Source, error) {
	if _, err := r.session.User(ctx); err != nil {
		return nil, "", err
	}

	token, _, err := r.session.Token(ctx)
	if err != nil {
		return nil, "", err
	}
	if r.tokens.IsLocal(ctx, token) {
		return rides.SampleRiders(), SourceLocalFallback, nil
	}

	riders, err := r.client.AvailableRides(ctx)
	if err != nil {
		if isExpired(err) {
			return nil, "", err
		}
		r.log.Warn(ctx, "remote rides unavailable, showing sample riders", "error", err)
		return rides.SampleRiders(), SourceLocalFallback, nil
	}
	return riders, SourceRemote, nil
}
