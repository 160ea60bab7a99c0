package share

import "time"

// ShareLink grants time-bounded, revocable, read-only access to one folder
// subtree beneath the shareable root. The token is the public capability
// credential embedded in share URLs; the id is only used for revocation.
type ShareLink struct {
	ID           string     `gorm:"column:id;primaryKey" json:"id"`
	Token        string     `gorm:"column:token;uniqueIndex" json:"token"`
	FolderPath   string     `gorm:"column:folder_path" json:"folderPath"`
	Description  string     `gorm:"column:description" json:"description,omitempty"`
	CreatedBy    string     `gorm:"column:created_by" json:"createdBy"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"createdAt"`
	ExpiresAt    *time.Time `gorm:"column:expires_at" json:"expiresAt,omitempty"`
	IsActive     bool       `gorm:"column:is_active" json:"isActive"`
}

func (ShareLink) TableName() string { return "share_links" }

// IsUsable reports whether the link grants access at the given instant.
// Revocation (IsActive=false) and expiry each independently disable it;
// a nil ExpiresAt means the link never expires.
func (l *ShareLink) IsUsable(now time.Time) bool {
	if !l.IsActive {
		return false
	}
	if l.ExpiresAt != nil && !l.ExpiresAt.After(now) {
		return false
	}
	return true
}
