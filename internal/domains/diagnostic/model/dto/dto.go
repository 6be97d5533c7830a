package dto

import "hotel/internal/domains/diagnostic/model"

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type Connection struct {
	Host     string `json:"host"`
	Database string `json:"database"`
	User     string `json:"user"`
}

type DatabaseStatusResponse struct {
	Status     string     `json:"status"`
	Message    string     `json:"message"`
	Timestamp  string     `json:"timestamp"`
	Connection Connection `json:"connection"`
}

type TableResponse struct {
	TableName string `json:"TABLE_NAME"`
	TableRows int64  `json:"TABLE_ROWS"`
}

type TablesResponse struct {
	Status    string          `json:"status"`
	Message   string          `json:"message"`
	Timestamp string          `json:"timestamp"`
	Tables    []TableResponse `json:"tables"`
}

func (r *TablesResponse) FromModels(tables []model.TableInfo) {
	r.Tables = make([]TableResponse, len(tables))
	for i, table := range tables {
		r.Tables[i] = TableResponse{TableName: table.TableName, TableRows: table.TableRows}
	}
}

// StatisticError stands in for a count that could not be computed.
type StatisticError struct {
	Error string `json:"error"`
}

type StatisticsResponse struct {
	Status     string         `json:"status"`
	Message    string         `json:"message"`
	Timestamp  string         `json:"timestamp"`
	Statistics map[string]any `json:"statistics"`
}

// ErrorResponse is the diagnostics failure body, which keeps the report envelope.
type ErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}
