package service

import (
	"context"

	"github.com/connecthub/connecthub-go/internal/dto/response"
)

// ConnectionService manages the connection lifecycle between two profiles.
// A pending request lives as a single entry on the requester's profile; an
// accepted connection is mirrored as one entry on each side.
type ConnectionService interface {
	// Request records a pending connection from requester to target
	Request(ctx context.Context, requesterID, targetID string) error

	// Accept marks the requester's pending entry accepted and mirrors an
	// accepted entry onto the acceptor
	Accept(ctx context.Context, acceptorID, requesterID string) error

	// Reject removes the profile's entry referencing the peer, whatever its
	// status; an absent entry is a no-op
	Reject(ctx context.Context, profileID, peerID string) error

	// Remove deletes the connection entries on both sides
	Remove(ctx context.Context, profileID, peerID string) error

	// List returns the accepted connections of a profile with each peer
	// resolved to its public summary. Entries whose peer no longer
	// exists are dropped.
	List(ctx context.Context, profileID string) ([]response.ConnectionResponse, error)
}
