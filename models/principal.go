package models

// Principal is the identity a request acts as: either an authenticated
// user or the anonymous visitor. The zero value is anonymous.
type Principal struct {
	User *User
}

// Anonymous is the principal for requests without a valid session.
var Anonymous = Principal{}

func (p Principal) IsAuthenticated() bool {
	return p.User != nil
}

// Can reports whether the principal holds the given permission bit.
// Anonymous visitors are granted exactly PermissionComment and nothing
// else, not even as part of a combined mask.
func (p Principal) Can(permission int) bool {
	if p.User == nil {
		return permission == PermissionComment
	}
	return p.User.Role.Permissions&permission != 0
}

func (p Principal) IsAdministrator() bool {
	return p.Can(PermissionAdminister)
}
