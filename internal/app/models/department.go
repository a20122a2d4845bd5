package models

// Department is an immutable reference row; the admin surface only lists them.
type Department struct {
	ID   int64  `json:"department_id"`
	Name string `json:"department_name"`
}
