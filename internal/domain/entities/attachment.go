package entities

import (
	"fmt"
	"time"
)

// ParentKind identifies the entity type owning an attachment.
type ParentKind string

const (
	ParentListing        ParentKind = "listing"
	ParentApplication    ParentKind = "application"
	ParentVendor         ParentKind = "vendor"
	ParentListingReport  ParentKind = "listing_report"
	ParentAwardedListing ParentKind = "awarded_listing"
)

// ParentRef points at the single entity owning an attachment.
type ParentRef struct {
	Kind ParentKind `json:"kind"`
	ID   string     `json:"id"`
}

// Key is the composite value stored and indexed on attachment rows.
func (p ParentRef) Key() string {
	return fmt.Sprintf("%s#%s", p.Kind, p.ID)
}

// Attachment is a stored document owned by exactly one parent entity.
// Bytes are held in memory for the duration of a single request only.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (parent_ref-index): parent_ref = Kind + "#" + parent id
type Attachment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mime_type"`
	Bytes     []byte    `json:"-"`
	Parent    ParentRef `json:"parent"`
	CreatedAt time.Time `json:"created_at"`
}

// FileUpload is an uploaded blob before it is linked to a parent.
type FileUpload struct {
	Name     string
	Size     int64
	MimeType string
	Bytes    []byte
}
