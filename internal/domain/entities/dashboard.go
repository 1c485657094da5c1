package entities

// DashboardStats are the headline counters on the dashboard landing page.
type DashboardStats struct {
	Customers       int64 `json:"customers"`
	BusinessOwners  int64 `json:"businessOwners"`
	QRScans         int64 `json:"qrScans"`
	PrivateFeedback int64 `json:"privateFeedback"`
}
