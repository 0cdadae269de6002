package domain

// FairnessState is a snapshot of the accumulated scheduling inconvenience of
// each party. Larger numbers mean a higher burden.
type FairnessState struct {
	PartyA int `json:"partyA" yaml:"partyA"`
	PartyB int `json:"partyB" yaml:"partyB"`
}

// Heavier returns the party carrying the larger burden, or an empty PartyID
// when both burdens are equal.
func (f FairnessState) Heavier() PartyID {
	switch {
	case f.PartyA > f.PartyB:
		return PartyA
	case f.PartyB > f.PartyA:
		return PartyB
	default:
		return ""
	}
}

// Burden returns the counter of the given party.
func (f FairnessState) Burden(id PartyID) int {
	if id == PartyB {
		return f.PartyB
	}

	return f.PartyA
}
