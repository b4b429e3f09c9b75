package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DocumentClient stores product images, logos and invoice PDFs in the document service
type DocumentClient interface {
	UploadDocument(ctx context.Context, req *DocumentUploadRequest) (*DocumentUploadResponse, error)
	DeleteDocument(ctx context.Context, path string) error
}

// DocumentUploadRequest is one object to store under Path in the bucket
type DocumentUploadRequest struct {
	Path        string
	Filename    string
	ContentType string
	Data        []byte
	IsPublic    bool
	// EntityType is product, logo, brand or invoice
	EntityType string
	EntityID   string
}

// DocumentUploadResponse is what the document service returns for a stored object
type DocumentUploadResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
	Size int64  `json:"size"`
}

// StatusError is returned when the document service answers with an unexpected status
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("document %s failed with status %d: %s", e.Op, e.StatusCode, e.Body)
}

type documentClient struct {
	baseURL    string
	bucket     string
	service    string
	httpClient *http.Client
}

// NewDocumentClient creates a client for the document service at baseURL
func NewDocumentClient(baseURL, bucket, serviceName string) DocumentClient {
	return &documentClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		bucket:     bucket,
		service:    serviceName,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// objectURL is where the document service serves path from
func (c *documentClient) objectURL(path string) string {
	return c.baseURL + "/api/v1/documents/" + c.bucket + "/" + strings.TrimPrefix(path, "/")
}

func (c *documentClient) UploadDocument(ctx context.Context, req *DocumentUploadRequest) (*DocumentUploadResponse, error) {
	body, contentType, err := c.encodeUpload(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/documents/upload", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.send(httpReq, "upload", http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out DocumentUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if out.Path == "" {
		out.Path = req.Path
	}
	if out.URL == "" {
		out.URL = c.objectURL(out.Path)
	}
	return &out, nil
}

func (c *documentClient) DeleteDocument(ctx context.Context, path string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(path), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.send(httpReq, "delete", http.StatusOK, http.StatusNoContent, http.StatusNotFound)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *documentClient) encodeUpload(req *DocumentUploadRequest) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", req.Filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(req.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write file data: %w", err)
	}

	fields := [][2]string{
		{"bucket", c.bucket},
		{"path", req.Path},
		{"isPublic", strconv.FormatBool(req.IsPublic)},
		{"contentType", req.ContentType},
		{"entity_type", req.EntityType},
		{"entity_id", req.EntityID},
	}
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", f[0], err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

// send performs the request and returns a StatusError unless the status is one of ok.
// The caller closes the body of a successful response.
func (c *documentClient) send(req *http.Request, op string, ok ...int) (*http.Response, error) {
	req.Header.Set("X-Internal-Service", c.service)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("document %s request failed: %w", op, err)
	}
	for _, code := range ok {
		if resp.StatusCode == code {
			return resp, nil
		}
	}
	defer resp.Body.Close()
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
}
