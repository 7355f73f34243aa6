package dto

type LoginResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type PersonResponse struct {
	ID    int64  `json:"id"`
	CPF   string `json:"cpf"`
	Name  string `json:"name"`
	Birth string `json:"birth"`
	Email string `json:"email"`
}

type UserWithPersonResponse struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Person   *PersonResponse `json:"person"`
}
