package constant

type MovementType string

const (
	MovementTypeInternal MovementType = "INTERNAL"
	MovementTypeOut      MovementType = "OUT"
	MovementTypeIn       MovementType = "IN"
)

type MovementTrigger string

const (
	MovementTriggerOutputConfirm  MovementTrigger = "OUTPUT_CONFIRM"
	MovementTriggerOutputValidate MovementTrigger = "OUTPUT_VALIDATE"
	MovementTriggerReception      MovementTrigger = "RECEPTION"
)

// LocationPurpose selects a default staging location for a storage point.
type LocationPurpose string

const (
	LocationPurposePreparation  LocationPurpose = "PREPARATION"
	LocationPurposeInternalNeed LocationPurpose = "INTERNAL_NEED"
	LocationPurposeDeadStock    LocationPurpose = "DEAD_STOCK"
)
