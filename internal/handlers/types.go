package handlers

// CreateShortLinkRequest is the request body for shortening a URL.
type CreateShortLinkRequest struct {
	Body struct {
		URL            string `doc:"The URL to shorten"          example:"https://example.com/a/b?c=1" json:"url"            maxLength:"256"`
		TurnstileToken string `doc:"Bot verification token"      json:"turnstileToken"`
	}
}

// CreateShortLinkResponse is the response for a successfully shortened URL.
type CreateShortLinkResponse struct {
	Body struct {
		URL string `doc:"The full short URL" example:"https://short.example/Ab3dQ9" json:"url"`
	}
}

// RedirectRequest is the request for resolving a short code.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"Ab3dQ9" path:"code"`
}

// RedirectResponse redirects the caller to the stored target, or to the
// landing page when the code is unknown.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The redirect target" header:"Location"`
	}
}

// AuthorizeUploadRequest describes a pending file upload.
type AuthorizeUploadRequest struct {
	Body struct {
		Name           string `doc:"Original file name"                  example:"photo.jpg"  json:"name"`
		Type           string `doc:"Declared content type"               example:"image/jpeg" json:"type"`
		Size           int64  `doc:"Declared content length in bytes"    example:"1048576"    json:"size" minimum:"0"`
		Save           bool   `doc:"Persist the file to the caller's account" json:"save"`
		TurnstileToken string `doc:"Bot verification token"              json:"turnstileToken"`
	}
}

// AuthorizeUploadResponse carries the pre-signed upload URL. The client PUTs
// the file bytes directly against it.
type AuthorizeUploadResponse struct {
	Body struct {
		URL string `doc:"Pre-signed PUT URL, valid for 900 seconds" json:"url"`
	}
}

// FileItem is one saved file in a listing.
type FileItem struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// ListFilesResponse lists the authenticated user's saved files.
type ListFilesResponse struct {
	Body struct {
		Files []FileItem `json:"files"`
	}
}
