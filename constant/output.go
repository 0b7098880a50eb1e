package constant

type OutputStatus int

const (
	OutputStatusPending   OutputStatus = 1
	OutputStatusConfirmed OutputStatus = 2
	OutputStatusValidated OutputStatus = 3
	OutputStatusCanceled  OutputStatus = 4
)

var OutputStatusName = map[OutputStatus]string{
	OutputStatusPending:   "PENDING",
	OutputStatusConfirmed: "CONFIRMED",
	OutputStatusValidated: "VALIDATED",
	OutputStatusCanceled:  "CANCELED",
}

type OutputType string

const (
	OutputTypeFleet        OutputType = "FLEET"
	OutputTypePus          OutputType = "PUS"
	OutputTypeSav          OutputType = "SAV"
	OutputTypeSupplier     OutputType = "SUPPLIER"
	OutputTypeB2B          OutputType = "B2B"
	OutputTypeOther        OutputType = "OTHER"
	OutputTypeInternalNeed OutputType = "INTERNAL_NEED"
)

var outputTypes = map[OutputType]bool{
	OutputTypeFleet:        true,
	OutputTypePus:          true,
	OutputTypeSav:          true,
	OutputTypeSupplier:     true,
	OutputTypeB2B:          true,
	OutputTypeOther:        true,
	OutputTypeInternalNeed: true,
}

func (t OutputType) Valid() bool {
	return outputTypes[t]
}

// RequiresOrderRef reports whether the type must carry an external order identifier.
func (t OutputType) RequiresOrderRef() bool {
	switch t {
	case OutputTypeFleet, OutputTypePus, OutputTypeSav, OutputTypeSupplier:
		return true
	}
	return false
}

// CancelReasonPartialRefused is set on the child output spawned by a
// partial confirm when the caller refused partial fulfillment.
const CancelReasonPartialRefused = "partial fulfillment refused"
