package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterUser struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	FullName       string `json:"full_name" validate:"required"`
	Role           string `json:"role" validate:"required,oneof=ADMIN DOCTOR NURSE RECEPTIONIST LAB_TECHNICIAN ACCOUNTANT"`
	EmployeeID     string `json:"employee_id,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Phone          string `json:"phone,omitempty"`
}
