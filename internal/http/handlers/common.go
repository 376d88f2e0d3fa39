package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"careerhub/internal/common"
	"careerhub/internal/domain/listing"
)

func decodeJSON(r *http.Request, dest any) error {
	defer io.Copy(io.Discard, r.Body)
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		return common.NewError(common.CodeValidation, "invalid json body", err)
	}
	return nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}

// pathSegment returns the index-th slash-separated segment of the request
// path, zero-based from the leading resource name.
func pathSegment(r *http.Request, index int) string {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if index < 0 || index >= len(parts) {
		return ""
	}
	return parts[index]
}

func idFromPath(r *http.Request, index int) (common.UUID, error) {
	raw := pathSegment(r, index)
	if raw == "" {
		return "", common.NewValidationError("invalid path", map[string]string{"id": "id is required"})
	}
	parsed, err := common.ParseUUID(raw)
	if err != nil {
		return "", common.NewValidationError("invalid path", map[string]string{"id": "invalid uuid"})
	}
	return parsed, nil
}

func kindFromPath(r *http.Request, index int) (listing.Kind, error) {
	kind, ok := listing.ParseKind(pathSegment(r, index))
	if !ok {
		return "", common.NewValidationError("invalid path", map[string]string{"kind": "unknown listing kind"})
	}
	return kind, nil
}
