package ticket

import "time"

// Attachment is a file stored in the external blob store and linked to
// either a ticket or a reply. PublicID identifies the blob for deletion;
// URL is what clients download.
type Attachment struct {
	ID           uint
	OwnerID      uint // ticket ID or reply ID depending on the repository
	URL          string
	OriginalName string
	PublicID     string
	CreatedAt    time.Time
}
