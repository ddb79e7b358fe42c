package handlers

import (
	"net/http"

	"github.com/Harris-PS/Post-Sharing-Fast-Api/internal/imagekit"
)

type UploadAuthHandler struct {
	authorizer *imagekit.Authorizer
}

func NewUploadAuthHandler(authorizer *imagekit.Authorizer) *UploadAuthHandler {
	return &UploadAuthHandler{authorizer: authorizer}
}

// Authenticate hands the browser a signed credential for a direct upload.
// Nothing is stored; the upload service checks the signature on its side.
func (h *UploadAuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.authorizer.Credential())
}
