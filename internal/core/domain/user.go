package domain

// User is a registered customer.
type User struct {
	// ID is the unique, immutable identifier.
	ID int64

	// Name is free text.
	Name string

	// Email has passed ValidEmail.
	Email string

	// NationalID is the CPF stored canonically as 11 digits, no punctuation.
	NationalID string
}

// NewUser carries the caller-supplied fields for creating a user.
type NewUser struct {
	Name       string
	Email      string
	NationalID string
}

// UserView is a User prepared for display, with the national ID punctuated.
type UserView struct {
	ID         int64
	Name       string
	Email      string
	NationalID string
}

// View renders the user for display.
func (u User) View() UserView {
	return UserView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		NationalID: FormatNationalID(u.NationalID),
	}
}
