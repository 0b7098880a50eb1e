package constant

type contextKey int

const (
	// ActorKey carries the authenticated model.Actor through request contexts.
	ActorKey contextKey = iota
)

// RoleWarehouseSupervisor is required to cancel an already-validated output.
const RoleWarehouseSupervisor = "warehouse:supervisor"
