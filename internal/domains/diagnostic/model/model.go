package model

const EntityName = "diagnostic"

// Statistic keys reported by the stats endpoint.
const (
	StatTotalRooms        = "totalRooms"
	StatAvailableRooms    = "availableRooms"
	StatTotalCustomers    = "totalCustomers"
	StatTotalBookings     = "totalBookings"
	StatPendingBookings   = "pendingBookings"
	StatConfirmedBookings = "confirmedBookings"
	StatCancelledBookings = "cancelledBookings"
)

// TableInfo is one user table with the planner's live row estimate.
type TableInfo struct {
	TableName string `db:"table_name"`
	TableRows int64  `db:"table_rows"`
}
