package dto

type UserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PersonRequest struct {
	CPF    string `json:"cpf" validate:"required,max=11"`
	Name   string `json:"name" validate:"required,max=100"`
	Birth  string `json:"birth" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	UserID *int64 `json:"user_id"`
}
