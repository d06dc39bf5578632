package models

// Metric is one labeled dashboard figure. Growth and Color are presentation
// constants, not computed values.
type Metric struct {
	Label  string `json:"label"`
	Value  any    `json:"value"`
	Growth string `json:"growth"`
	Color  string `json:"color"`
}

// ChartData feeds the dashboard chart.
type ChartData struct {
	Orders  int64 `json:"orders"`
	Reviews int64 `json:"reviews"`
	Carts   int64 `json:"carts"`
}

// DashboardStats is the role-gated response of GET /dashboard-stats/:email.
// Admins see global counts; everyone else sees counts filtered to their own
// email.
type DashboardStats struct {
	Role        string    `json:"role"`
	Title       string    `json:"title"`
	Metrics     []Metric  `json:"metrics"`
	Probability string    `json:"probability"`
	ChartData   ChartData `json:"chartData"`
}
