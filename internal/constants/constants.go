package constants

// Production status lifecycle anchors. A batch may only be deleted while its
// current status sits on one of these two orders.
const (
	StatusOrderCreated   = 0
	StatusOrderCancelled = 90
)

// StatusNameCreated is the status every new batch transitions to. Its absence
// from the database is a configuration error that blocks batch creation.
const StatusNameCreated = "CRIADO"

// BatchCreatedNotes is the note attached to the initial status transition.
const BatchCreatedNotes = "Produção Criada"

// Pagination defaults for the paginated unit listing.
const (
	DefaultPage    = 1
	DefaultPerPage = 5
	MaxPerPage     = 100
)
