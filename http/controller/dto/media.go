package dto

// ItemIDRequest carries the row identifier when it arrives in the body
// instead of path or query.
type ItemIDRequest struct {
	ID uint `json:"id"`
}

// UpdateImageRequest is a partial patch: only non-nil fields change.
type UpdateImageRequest struct {
	CapturedAt *string `json:"captured_at"`
}

// UpdateLetterRequest is a partial patch: only non-nil fields change.
type UpdateLetterRequest struct {
	WrittenAt *string `json:"written_at"`
	Writer    *string `json:"writer"`
}

// SessionRequest exchanges the admin password for a session token.
type SessionRequest struct {
	Password string `json:"password" binding:"required"`
}
