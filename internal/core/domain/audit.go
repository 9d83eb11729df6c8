package domain

import "time"

// AuditAction identifies an account lifecycle action worth recording.
type AuditAction string

const (
	ActionRegistered       AuditAction = "registered"
	ActionLoggedIn         AuditAction = "logged_in"
	ActionProfileUpdated   AuditAction = "profile_updated"
	ActionPasswordChanged  AuditAction = "password_changed"
	ActionAccountDeleted   AuditAction = "account_deleted"
	ActionAdminCreatedUser AuditAction = "admin_created_user"
	ActionAdminUpdatedUser AuditAction = "admin_updated_user"
	ActionAdminDeletedUser AuditAction = "admin_deleted_user"
)

// AuditEvent records a single account lifecycle action. Events are
// processed asynchronously; a lost event never fails the operation
// that produced it.
type AuditEvent struct {
	UserID     int64
	Email      string
	Action     AuditAction
	OccurredAt time.Time
}
