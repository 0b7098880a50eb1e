package constant

type ReceptionStatus int

const (
	ReceptionStatusPending   ReceptionStatus = 1
	ReceptionStatusValidated ReceptionStatus = 2
	ReceptionStatusCanceled  ReceptionStatus = 3
)

type ReceptionType string

const (
	ReceptionTypeInternalProblem ReceptionType = "INTERNAL_PROBLEM"
)
