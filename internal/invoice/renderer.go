//go:generate mockgen -source ./renderer.go -destination=./mocks/renderer.go -package=mock_invoice
package invoice

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Renderer produces the invoice document for an order. The document format
// is opaque to the rest of the system; callers only see bytes.
type Renderer interface {
	Render(ctx context.Context, orderID uuid.UUID, customerEmail string) ([]byte, error)
}

// RenderError wraps I/O and formatting failures during invoice rendering.
type RenderError struct {
	OrderID uuid.UUID
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render invoice for order %s: %v", e.OrderID, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// FileRenderer renders invoices and persists a copy under a local directory.
type FileRenderer struct {
	dir    string
	logger *zap.Logger
}

func NewFileRenderer(dir string, logger *zap.Logger) *FileRenderer {
	return &FileRenderer{dir: dir, logger: logger}
}

func (r *FileRenderer) Render(ctx context.Context, orderID uuid.UUID, customerEmail string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("ArtiCurated - Invoice\n\n")
	fmt.Fprintf(&buf, "Order: %s\n", orderID)
	fmt.Fprintf(&buf, "Customer: %s\n", customerEmail)
	fmt.Fprintf(&buf, "Date: %s\n", time.Now().UTC().Format(time.RFC3339))

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, &RenderError{OrderID: orderID, Err: err}
	}
	path := filepath.Join(r.dir, orderID.String()+".pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, &RenderError{OrderID: orderID, Err: err}
	}

	r.logger.Debug("invoice rendered",
		zap.String("order_id", orderID.String()),
		zap.String("path", path),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}
