package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// MediaAsset represents an uploaded media file.
type MediaAsset struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	FileName  string `json:"file_name"`
	MimeType  string `json:"mime_type,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	AltText   string `json:"alt_text,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Credit    string `json:"credit,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// MediaMeta is the optional descriptive metadata attached to an upload.
type MediaMeta struct {
	AltText string
	Caption string
	Credit  string
}

// MediaList is the paginated media listing envelope.
type MediaList struct {
	Items []MediaAsset `json:"items"`
	Total int          `json:"total"`
}

// MediaUsage reports whether an asset is referenced by published articles.
type MediaUsage struct {
	CanDelete bool      `json:"can_delete"`
	Articles  []Article `json:"articles"`
}

// ListMediaParams are the optional media list filters.
type ListMediaParams struct {
	Query  string
	Limit  int
	Offset int
}

func (p ListMediaParams) encode() string {
	v := url.Values{}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	return v.Encode()
}

// ListMedia returns media assets matching the given filters.
func (c *Client) ListMedia(ctx context.Context, params ListMediaParams) (*MediaList, error) {
	path := "/api/media/"
	if q := params.encode(); q != "" {
		path += "?" + q
	}
	var list MediaList
	if err := c.requestJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return &list, nil
}

// UploadMedia uploads a file as multipart form data. The file part is
// renamed to a collision-resistant name so repeated uploads of generic
// names like image.png never clash on the server.
func (c *Client) UploadMedia(ctx context.Context, fileName string, file io.Reader, meta MediaMeta) (*MediaAsset, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", uniqueFileName(fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	fields := map[string]string{
		"alt_text": meta.AltText,
		"caption":  meta.Caption,
		"credit":   meta.Credit,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("failed to build multipart body: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	payload, err := c.Request(ctx, "/api/media/upload", &RequestOptions{
		Method:  http.MethodPost,
		Headers: map[string]string{"Content-Type": w.FormDataContentType()},
		Body:    &buf,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload media: %w", err)
	}

	var asset MediaAsset
	if err := payload.Decode(&asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// CheckMediaUsage reports which published articles reference the asset.
func (c *Client) CheckMediaUsage(ctx context.Context, id string) (*MediaUsage, error) {
	var usage MediaUsage
	path := "/api/media/" + url.PathEscape(id) + "/check-usage"
	if err := c.requestJSON(ctx, http.MethodGet, path, nil, &usage); err != nil {
		return nil, fmt.Errorf("failed to check media usage: %w", err)
	}
	return &usage, nil
}

// DeleteMedia deletes a media asset by id.
func (c *Client) DeleteMedia(ctx context.Context, id string) error {
	path := "/api/media/" + url.PathEscape(id)
	if err := c.requestJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	return nil
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// uniqueFileName prefixes the original name with a millisecond timestamp
// and a short random suffix. A documented convention, not a guarantee:
// a random collision is theoretically possible, practically negligible.
func uniqueFileName(name string) string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// No randomness available; the timestamp alone still avoids
		// the common duplicate-name case.
		return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
	}
	for i := range b {
		b[i] = suffixAlphabet[int(b[i])%len(suffixAlphabet)]
	}
	return fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), string(b), name)
}
