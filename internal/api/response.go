package api

import (
	"encoding/json"
	"fmt"
)

// UploadResponse is the JSON body the upload endpoint returns on success.
type UploadResponse struct {
	Files []string `json:"files"`
}

// ExtractURL decodes body and returns the single resulting URL. A body that
// does not parse is an error; a body with zero or multiple URLs returns
// ok=false with no error — the endpoint is expected to always return exactly
// one, and anything else is treated as nothing to act on. Known gap: that
// case produces no message at all.
func ExtractURL(body []byte) (url string, ok bool, err error) {
	var resp UploadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", false, fmt.Errorf("failed to parse upload response: %w", err)
	}

	if len(resp.Files) != 1 {
		return "", false, nil
	}

	return resp.Files[0], true, nil
}
