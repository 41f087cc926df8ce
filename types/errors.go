package types

const (
	ErrInvalidInput       = "Invalid input"
	ErrInvalidMemberID    = "Invalid member ID"
	ErrMemberNotFound     = "Member not found"
	ErrDatabaseError      = "Database error"
	ErrInvalidCredentials = "Invalid username or password"
	ErrUnauthorized       = "Unauthorized access"
	ErrInternalError      = "internal server error"
	ErrAdminNotConfigured = "Admin password is not configured"
)

const (
	MsgAdminCreated = "Admin created"
	MsgAdminExists  = "Admin already exists"
	MsgMemberAdded  = "Member added"
	MsgEarningAdded = "Earning added"
)
