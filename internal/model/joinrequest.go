package model

import "time"

type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestApproved JoinRequestStatus = "approved"
	JoinRequestDeclined JoinRequestStatus = "declined"
)

// JoinRequest is keyed by (UserID, ChatID); the store upserts on conflict so
// at most one record exists per pair. Name and bio are snapshots taken at
// request time.
type JoinRequest struct {
	UserID      int64
	ChatID      int64
	Username    string
	FirstName   string
	LastName    string
	Bio         string
	Status      JoinRequestStatus
	RequestedAt time.Time
	ProcessedAt *time.Time
	ProcessedBy *int64
}

type Favorite struct {
	UserID    int64
	StockCode string
	CreatedAt time.Time
}
