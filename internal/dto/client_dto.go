package dto

type CreateClientRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=120"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateClientRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1,max=120"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type ClientResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
