package models

// DashboardStats is the role-varying payload of GET /dashboard/stats: every
// role gets the counters, doctors additionally get their own appointment list
// for today while the pending counters stay zero.
type DashboardStats struct {
	TotalPatients     int           `json:"total_patients"`
	TodayAppointments int           `json:"today_appointments"`
	PendingOrders     int           `json:"pending_orders,omitempty"`
	PendingInvoices   int           `json:"pending_invoices,omitempty"`
	Appointments      []Appointment `json:"appointments,omitempty"`
}
