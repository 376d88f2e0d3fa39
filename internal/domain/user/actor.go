package user

// Actor is the authenticated identity a request acts as. Handlers build it
// from token claims and pass it explicitly into services.
type Actor struct {
	Email string
	Role  Role
}
