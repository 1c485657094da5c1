package repositories

import "context"

// QRScanRepository exposes the scan counter used by the dashboard
type QRScanRepository interface {
	Count(ctx context.Context) (int64, error)
}
