package domain

// Profile is the single reusable delivery record. Saving a new one
// replaces the previous record entirely.
type Profile struct {
	Address  string
	Postcode string
	Email    string
}
