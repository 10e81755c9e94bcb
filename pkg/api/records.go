// Package api defines the JSON wire types of the Waymark REST API.
// The sync-state fields of the local cache are deliberately absent:
// they never leave the client.
package api

// Record is the wire form of a geotagged record
type Record struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"owner_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageRef    *string `json:"image_ref,omitempty"`
	Visibility  string  `json:"visibility"`
	CreatedAt   int64   `json:"created_at"` // epoch millis
}

// RecordResponse wraps a single record returned by the server
type RecordResponse struct {
	Record Record `json:"record"`
}

// RecordsResponse wraps a record listing
type RecordsResponse struct {
	Records []Record `json:"records"`
}

// MessageResponse is returned by operations without a payload (delete)
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body returned by the server
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
