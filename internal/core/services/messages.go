package services

// Messages returned to clients.
const (
	MsgUserNotFound          = "User not found"
	MsgInvalidEmail          = "Invalid email"
	MsgInvalidNationalID     = "Invalid CPF"
	MsgNationalIDTaken       = "CPF already registered"
	MsgUserCreated           = "User created successfully"
	MsgUsersPersistFailed    = "failed to persist users"
	MsgServiceNotFound       = "Service not found"
	MsgOwnerNotFound         = "User with the given ID not found"
	MsgInvalidCategory       = "Invalid service category. Must be a number between 1 and 5."
	MsgInvalidDateFormat     = "Invalid date format. Use dd/mm/yyyy."
	MsgInvalidDate           = "Invalid date. Use a real calendar day in dd/mm/yyyy."
	MsgInvalidDateRange      = "Start date must be before end date."
	MsgServiceCreated        = "Service created successfully"
	MsgServicesPersistFailed = "failed to persist services"
)
