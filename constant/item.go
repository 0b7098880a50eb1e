package constant

type ItemState string

const (
	ItemStateAvailable        ItemState = "AVAILABLE"
	ItemStateReserved         ItemState = "RESERVED"
	ItemStateInTransit        ItemState = "IN_TRANSIT"
	ItemStateGotOut           ItemState = "GOT_OUT"
	ItemStatePendingReception ItemState = "PENDING_RECEPTION"
	ItemStateIsDead           ItemState = "IS_DEAD"
	ItemStateDiscovered       ItemState = "DISCOVERED"
)

// ItemStateColumn maps an item state to its per-state quantity column on the
// variant_quantity and product_quantity tables. The map doubles as a
// whitelist: states absent here can never reach a counter update statement.
var ItemStateColumn = map[ItemState]string{
	ItemStateAvailable:        "available",
	ItemStateReserved:         "reserved",
	ItemStateInTransit:        "in_transit",
	ItemStateGotOut:           "got_out",
	ItemStatePendingReception: "pending_reception",
	ItemStateIsDead:           "is_dead",
	ItemStateDiscovered:       "discovered",
}

// Movable reports whether an item in this state may be confirmed into an output.
func (s ItemState) Movable() bool {
	return s == ItemStateAvailable || s == ItemStateReserved
}
