package attachment

import "strings"

// Attachment is an uploaded document passed through untouched.
// Data holds the encoded payload exactly as the client sent it.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	Data        string `json:"data"`
}

// Empty reports whether the attachment carries no payload.
func (a *Attachment) Empty() bool {
	return a == nil || strings.TrimSpace(a.Data) == ""
}

// Label returns a display name for exports.
func (a *Attachment) Label() string {
	if a.Empty() {
		return ""
	}
	if a.Name != "" {
		return a.Name
	}
	return "attachment"
}
