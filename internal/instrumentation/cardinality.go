package instrumentation

// Common operation types for ClickUp API metrics.
// Keeping these to a fixed set bounds label cardinality in the metrics
// backend. Status and Service constants are defined in config.go.
const (
	OperationList   = "list"
	OperationGet    = "get"
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationSearch = "search"
)
