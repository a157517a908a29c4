package models

// CreatorPrincipal is the authenticated creator identity, threaded explicitly
// through every function that touches per-creator state. The service layer
// refuses ambient (context-carried) tenancy: if a call site has no principal,
// it has no business reading creator data.
type CreatorPrincipal struct {
	CreatorID string
}

// Valid reports whether the principal identifies a creator.
func (p CreatorPrincipal) Valid() bool {
	return p.CreatorID != ""
}
