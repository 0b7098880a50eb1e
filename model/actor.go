package model

// Actor is the authenticated agent performing an operation. It is passed
// explicitly through every application call, never read from global state.
type Actor struct {
	ID    uint64   `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}
