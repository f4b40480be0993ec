package analytics

import "time"

// Topics for analytics events. Delivery is best-effort; request handling
// never fails on a publish error.
const (
	TopicLinkCreated      = "link.created"
	TopicLinkAccessed     = "link.accessed"
	TopicUploadAuthorized = "upload.authorized"
)

// LinkCreatedEvent is emitted when a short link is allocated.
type LinkCreatedEvent struct {
	Code      string    `json:"code"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"createdAt"`
	ClientIP  string    `json:"clientIp"`
	UserAgent string    `json:"userAgent"`
}

// LinkAccessedEvent is emitted when a short link is resolved for redirect.
type LinkAccessedEvent struct {
	Code       string    `json:"code"`
	AccessedAt time.Time `json:"accessedAt"`
	ClientIP   string    `json:"clientIp"`
	UserAgent  string    `json:"userAgent"`
	Referrer   string    `json:"referrer"`
}

// UploadAuthorizedEvent is emitted when an upload grant is issued.
type UploadAuthorizedEvent struct {
	StorageKey   string    `json:"storageKey"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	Subject      string    `json:"subject,omitempty"`
	Saved        bool      `json:"saved"`
	AuthorizedAt time.Time `json:"authorizedAt"`
}
