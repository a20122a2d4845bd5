package models

// Employee is the admin panel auth principal, stored in the 'employee' table.
// Password holds the bcrypt hash and is never serialized.
type Employee struct {
	ID        int64   `json:"employee_id"`
	Username  string  `json:"username"`
	Password  string  `json:"-"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}
