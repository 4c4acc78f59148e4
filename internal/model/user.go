package model

import "time"

type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	IsMember  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Canonical setting keys. main_channel_link is the legacy public @-handle
// field kept for older dashboard installs.
const (
	SettingMainChannelID   = "main_channel_id"
	SettingInviteLink      = "invite_link"
	SettingMainChannelLink = "main_channel_link"
)
