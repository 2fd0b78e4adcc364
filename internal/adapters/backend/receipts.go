package backend

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
)

func receiptPath(receiptID string) string {
	return fmt.Sprintf("/api/receipts/%s", url.PathEscape(receiptID))
}

func decodeReceipt(endpoint string, data []byte) (*domain.Receipt, error) {
	var receipt domain.Receipt
	if err := decodeInto(data, &receipt, "receipt"); err != nil {
		return nil, decodeErr(endpoint, err)
	}
	return &receipt, nil
}

// UploadReceipt sends a receipt file as multipart form data.
func (c *Client) UploadReceipt(ctx context.Context, companyID string, file domain.FileBlob) (*domain.Receipt, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := form.WriteField("companyId", companyID); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Filename))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := form.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	data, err := c.do(ctx, request{
		endpoint:    "upload_receipt",
		method:      http.MethodPost,
		path:        "/api/receipts/upload",
		rawBody:     &buf,
		contentType: form.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}
	return decodeReceipt("upload_receipt", data)
}

// GetReceipt retrieves one receipt.
func (c *Client) GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	data, err := c.do(ctx, request{
		endpoint: "get_receipt",
		method:   http.MethodGet,
		path:     receiptPath(receiptID),
	})
	if err != nil {
		return nil, err
	}
	return decodeReceipt("get_receipt", data)
}

// UpdateReceipt patches the reviewed fields of a receipt.
func (c *Client) UpdateReceipt(ctx context.Context, receiptID string, update domain.ReceiptUpdate) (*domain.Receipt, error) {
	data, err := c.do(ctx, request{
		endpoint: "update_receipt",
		method:   http.MethodPatch,
		path:     receiptPath(receiptID),
		body:     update,
	})
	if err != nil {
		return nil, err
	}
	return decodeReceipt("update_receipt", data)
}

// DeleteReceipt removes a receipt.
func (c *Client) DeleteReceipt(ctx context.Context, receiptID string) error {
	_, err := c.do(ctx, request{
		endpoint: "delete_receipt",
		method:   http.MethodDelete,
		path:     receiptPath(receiptID),
	})
	return err
}

// ExportReceiptsXLSX returns a spreadsheet of the given receipts.
func (c *Client) ExportReceiptsXLSX(ctx context.Context, companyID string, receiptIDs []string) ([]byte, error) {
	return c.do(ctx, request{
		endpoint: "export_receipts",
		method:   http.MethodPost,
		path:     "/receipts/export/xlsx",
		body: map[string]any{
			"companyId":  companyID,
			"receiptIds": receiptIDs,
		},
	})
}
