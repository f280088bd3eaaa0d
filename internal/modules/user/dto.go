package user

// UpdateUserRequest carries only the fields the caller wants changed.
// Email, password and role are not updatable through this endpoint.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Position  *string `json:"position"`
	Picture   *string `json:"picture"`
}
