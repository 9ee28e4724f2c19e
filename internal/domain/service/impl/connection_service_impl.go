package impl

import (
	"context"
	"time"

	"github.com/connecthub/connecthub-go/internal/domain/entity"
	"github.com/connecthub/connecthub-go/internal/domain/repository"
	"github.com/connecthub/connecthub-go/internal/domain/service"
	"github.com/connecthub/connecthub-go/internal/dto/response"
)

// connectionService implements service.ConnectionService
type connectionService struct {
	profileRepo repository.ProfileRepository
}

// NewConnectionService creates a new ConnectionService instance
func NewConnectionService(profileRepo repository.ProfileRepository) service.ConnectionService {
	return &connectionService{profileRepo: profileRepo}
}

func (s *connectionService) load(ctx context.Context, id string) (*entity.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, service.ErrProfileNotFound
	}
	return profile, nil
}

// Request records a pending entry on the requester's profile referencing the
// target. The entry lives on the requester: the target accepts or rejects by
// mutating it.
func (s *connectionService) Request(ctx context.Context, requesterID, targetID string) error {
	if requesterID == targetID {
		return service.ErrSelfConnection
	}

	requester, err := s.load(ctx, requesterID)
	if err != nil {
		return err
	}
	if _, err := s.load(ctx, targetID); err != nil {
		return err
	}

	if requester.ConnectionWith(targetID) != nil {
		return service.ErrConnectionExists
	}

	now := time.Now()
	requester.Connections = append(requester.Connections, entity.Connection{
		PeerID:      targetID,
		Status:      entity.ConnectionPending,
		RequestedAt: &now,
	})
	return s.profileRepo.Save(ctx, requester)
}

// Accept flips the requester's pending entry to accepted and mirrors an
// accepted entry onto the acceptor, so both sides list the connection.
func (s *connectionService) Accept(ctx context.Context, acceptorID, requesterID string) error {
	requester, err := s.load(ctx, requesterID)
	if err != nil {
		return err
	}
	acceptor, err := s.load(ctx, acceptorID)
	if err != nil {
		return err
	}

	conn := requester.ConnectionWith(acceptorID)
	if conn == nil || conn.Status != entity.ConnectionPending {
		return service.ErrConnectionNotFound
	}

	now := time.Now()
	conn.Status = entity.ConnectionAccepted
	conn.ConnectedAt = &now
	if err := s.profileRepo.Save(ctx, requester); err != nil {
		return err
	}

	acceptor.Connections = append(acceptor.Connections, entity.Connection{
		PeerID:      requesterID,
		Status:      entity.ConnectionAccepted,
		RequestedAt: conn.RequestedAt,
		ConnectedAt: &now,
	})
	return s.profileRepo.Save(ctx, acceptor)
}

// Reject strips the profile's own entry referencing the peer, whatever its
// status. Rejecting an absent entry is a no-op, not an error.
func (s *connectionService) Reject(ctx context.Context, profileID, peerID string) error {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return err
	}

	profile.RemoveConnection(peerID)
	return s.profileRepo.Save(ctx, profile)
}

// Remove drops the entries on both sides, regardless of status.
func (s *connectionService) Remove(ctx context.Context, profileID, peerID string) error {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return err
	}

	if profile.ConnectionWith(peerID) == nil {
		return service.ErrConnectionNotFound
	}

	profile.RemoveConnection(peerID)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return err
	}

	// The peer may have been deleted; a missing peer side is fine.
	peer, err := s.profileRepo.GetByID(ctx, peerID)
	if err != nil {
		return err
	}
	if peer == nil || peer.ConnectionWith(profileID) == nil {
		return nil
	}

	peer.RemoveConnection(profileID)
	return s.profileRepo.Save(ctx, peer)
}

// List resolves the accepted connections of a profile to peer summaries.
// Entries referencing deleted profiles are silently dropped.
func (s *connectionService) List(ctx context.Context, profileID string) ([]response.ConnectionResponse, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	connections := make([]response.ConnectionResponse, 0, len(profile.Connections))
	for _, conn := range profile.Connections {
		if conn.Status != entity.ConnectionAccepted {
			continue
		}

		peer, err := s.profileRepo.GetByID(ctx, conn.PeerID)
		if err != nil {
			return nil, err
		}
		if peer == nil {
			continue
		}

		connections = append(connections, response.ConnectionResponse{
			Peer:        response.NewConnectionPeer(peer),
			Status:      string(conn.Status),
			RequestedAt: conn.RequestedAt,
			ConnectedAt: conn.ConnectedAt,
		})
	}
	return connections, nil
}
