package clickup

import "fmt"

// Content formats accepted by the ClickUp Docs API.
const (
	FormatMarkdown  = "markdown"
	FormatHTML      = "html"
	FormatTextMD    = "text/md"
	FormatTextPlain = "text/plain"
	FormatTextHTML  = "text/html"

	// DefaultContentFormat is used when no format is specified.
	DefaultContentFormat = FormatMarkdown
)

// readFormats lists the formats accepted by read operations.
var readFormats = map[string]bool{
	FormatMarkdown:  true,
	FormatHTML:      true,
	FormatTextMD:    true,
	FormatTextPlain: true,
	FormatTextHTML:  true,
}

// writeFormats lists the formats accepted by page create/update operations.
// text/plain is read-only: the API cannot render plain text back into a page.
var writeFormats = map[string]bool{
	FormatMarkdown: true,
	FormatHTML:     true,
	FormatTextMD:   true,
	FormatTextHTML: true,
}

// ValidReadFormat reports whether format is accepted by read operations.
func ValidReadFormat(format string) bool {
	return readFormats[format]
}

// ValidWriteFormat reports whether format is accepted by page create/update.
func ValidWriteFormat(format string) bool {
	return writeFormats[format]
}

// checkReadFormat validates an optional content format for a read operation.
func checkReadFormat(op, format string) error {
	if format == "" || ValidReadFormat(format) {
		return nil
	}
	return fmt.Errorf("%s: invalid content format %q (must be one of: markdown, html, text/md, text/plain, text/html)", op, format)
}

// checkWriteFormat validates an optional content format for a write operation.
func checkWriteFormat(op, format string) error {
	if format == "" || ValidWriteFormat(format) {
		return nil
	}
	return fmt.Errorf("%s: invalid content format %q (must be one of: markdown, html, text/md, text/html)", op, format)
}

// DocParent references the container a document lives in.
type DocParent struct {
	ID   string `json:"id"`
	Type int    `json:"type"`
}

// Doc represents a ClickUp document.
type Doc struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	DateCreated int64          `json:"date_created,omitempty"`
	DateUpdated int64          `json:"date_updated,omitempty"`
	Parent      *DocParent     `json:"parent,omitempty"`
	Public      bool           `json:"public,omitempty"`
	WorkspaceID int64          `json:"workspace_id,omitempty"`
	Creator     int64          `json:"creator,omitempty"`
	Deleted     bool           `json:"deleted,omitempty"`
	Type        int            `json:"type,omitempty"`
	Content     string         `json:"content,omitempty"`
	URL         string         `json:"url,omitempty"`
	Sharing     *SharingConfig `json:"sharing,omitempty"`
	PageCount   int            `json:"page_count,omitempty"`
}

// Page represents a page within a document. Pages nest: when a listing is
// requested at full depth, child pages appear under Pages in sibling order.
type Page struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Content      string  `json:"content,omitempty"`
	DocID        string  `json:"doc_id,omitempty"`
	ParentPageID string  `json:"parent_page_id,omitempty"`
	Position     float64 `json:"position,omitempty"`
	DateCreated  int64   `json:"date_created,omitempty"`
	DateUpdated  int64   `json:"date_updated,omitempty"`
	Creator      int64   `json:"creator,omitempty"`
	Pages        []Page  `json:"pages,omitempty"`
}

// SharingConfig describes the sharing state of a document.
type SharingConfig struct {
	Public               bool     `json:"public"`
	PublicShareExpiresOn string   `json:"public_share_expires_on,omitempty"`
	PublicFields         []string `json:"public_fields,omitempty"`
	TeamSharing          bool     `json:"team_sharing,omitempty"`
	GuestSharing         bool     `json:"guest_sharing,omitempty"`
	Token                string   `json:"token,omitempty"`
	SEOOptimized         bool     `json:"seo_optimized,omitempty"`
}

// Workspace represents a ClickUp workspace (called "team" by the v2 API).
type Workspace struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DocsPage is one page of document listing or search results.
type DocsPage struct {
	Docs       []Doc  `json:"docs"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// ListDocsOptions controls pagination and filtering for ListDocs.
type ListDocsOptions struct {
	// Cursor continues a previous listing. Empty starts from the beginning.
	Cursor string
	// Deleted includes soft-deleted documents.
	Deleted bool
	// Archived includes archived documents.
	Archived bool
	// Limit caps the page size. Zero leaves the server default; otherwise
	// it must be between 1 and 100.
	Limit int
}

// SearchDocsOptions controls a document search.
type SearchDocsOptions struct {
	// Query filters documents by name. A query prefixed with "space:" is
	// reinterpreted as a space identifier filter and the name filter is
	// dropped; this is a client-side convention, not an API feature.
	Query string
	// Cursor continues a previous search.
	Cursor string
}

// CreateDocRequest describes a document to create. Exactly one of
// WorkspaceID, SpaceID or FolderID must be set to anchor the document.
type CreateDocRequest struct {
	WorkspaceID string `json:"-"`
	SpaceID     string `json:"-"`
	FolderID    string `json:"-"`

	Name       string `json:"name"`
	Content    string `json:"content,omitempty"`
	Public     *bool  `json:"public,omitempty"`
	TemplateID string `json:"template_id,omitempty"`

	// TemplateVariables substitutes placeholder values when creating from
	// a template. Ignored by the server otherwise.
	TemplateVariables map[string]string `json:"template_variables,omitempty"`
}

// HasAnchor reports whether any creation anchor is set.
func (r *CreateDocRequest) HasAnchor() bool {
	return r.WorkspaceID != "" || r.SpaceID != "" || r.FolderID != ""
}

// UpdateDocRequest carries a partial document update. Nil fields are omitted
// from the request body.
type UpdateDocRequest struct {
	Name    *string `json:"name,omitempty"`
	Content *string `json:"content,omitempty"`
	Public  *bool   `json:"public,omitempty"`
}

// HasChanges reports whether at least one field is set.
func (r *UpdateDocRequest) HasChanges() bool {
	return r.Name != nil || r.Content != nil || r.Public != nil
}

// CreatePageRequest describes a page to create within a document.
type CreatePageRequest struct {
	Name          string   `json:"name"`
	Content       string   `json:"content"`
	ContentFormat string   `json:"content_format,omitempty"`
	ParentPageID  string   `json:"parent_page_id,omitempty"`
	Position      *float64 `json:"position,omitempty"`
}

// UpdatePageRequest carries a partial page update.
type UpdatePageRequest struct {
	Name          *string  `json:"name,omitempty"`
	Content       *string  `json:"content,omitempty"`
	ContentFormat string   `json:"content_format,omitempty"`
	Position      *float64 `json:"position,omitempty"`
}

// HasChanges reports whether at least one field is set. ContentFormat alone
// does not count: it only qualifies how Content is interpreted.
func (r *UpdatePageRequest) HasChanges() bool {
	return r.Name != nil || r.Content != nil || r.Position != nil
}

// UpdateSharingRequest carries a partial sharing update. Nil fields are
// omitted from the request body.
type UpdateSharingRequest struct {
	Public               *bool     `json:"public,omitempty"`
	PublicShareExpiresOn *string   `json:"public_share_expires_on,omitempty"`
	PublicFields         *[]string `json:"public_fields,omitempty"`
	TeamSharing          *bool     `json:"team_sharing,omitempty"`
	GuestSharing         *bool     `json:"guest_sharing,omitempty"`
}

// HasChanges reports whether at least one field is set.
func (r *UpdateSharingRequest) HasChanges() bool {
	return r.Public != nil || r.PublicShareExpiresOn != nil || r.PublicFields != nil ||
		r.TeamSharing != nil || r.GuestSharing != nil
}
