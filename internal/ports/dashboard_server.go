package ports

// DashboardServer defines the interface for a dashboard-facing server
// surface
type DashboardServer interface {
	// Start starts serving requests
	Start() error

	// Stop stops the server
	Stop() error
}
