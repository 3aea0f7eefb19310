package models

// Pagination describes the page of a listing returned to the client.
type Pagination struct {
	Page     uint64 `json:"page"`
	Limit    uint64 `json:"limit"`
	Total    uint64 `json:"total"`
	LastPage uint64 `json:"last_page"`
}

// NewPagination computes the pagination block for a listing of total rows
// split into pages of limit rows. LastPage is never less than 1.
func NewPagination(page, limit, total uint64) Pagination {
	lastPage := uint64(1)
	if limit > 0 && total > 0 {
		lastPage = (total + limit - 1) / limit
	}

	return Pagination{
		Page:     page,
		Limit:    limit,
		Total:    total,
		LastPage: lastPage,
	}
}

// Offset returns the number of rows to skip for the page.
func (p Pagination) Offset() uint64 {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// ShipmentFilter narrows a shipment listing.
//
// OwnerID restricts the listing to one user's shipments; zero lists every
// shipment. WithOwner attaches the owning user to each shipment.
type ShipmentFilter struct {
	OwnerID   int64
	Status    ShipmentStatus
	Page      uint64
	Limit     uint64
	WithOwner bool
}

// LogFilter narrows a system log listing.
type LogFilter struct {
	Page  uint64
	Limit uint64
}

// ShipmentPage is one page of shipments.
type ShipmentPage struct {
	Shipments  []Shipment `json:"shipments"`
	Pagination Pagination `json:"pagination"`
}

// SystemLogPage is one page of system logs.
type SystemLogPage struct {
	Logs       []SystemLog `json:"logs"`
	Pagination Pagination  `json:"pagination"`
}
