package ordersapi

import (
	"time"

	"portfolio-backend/internal/domain/orders"
)

type OrderDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	PetType   string    `json:"pet_type"`
	Message   string    `json:"message"`
	PhotoURL  string    `json:"photo_url"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

type ListOrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
}

type CreateOrderRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Message  string `json:"message" binding:"required"`
	PhotoURL string `json:"photo_url" binding:"required"`
	PetType  string `json:"pet_type"`
}

type CreateOrderResponse struct {
	Order     OrderDTO `json:"order"`
	EmailSent bool     `json:"email_sent"`
	Warning   string   `json:"warning,omitempty"`
}

func toOrderDTO(o orders.Order) OrderDTO {
	return OrderDTO{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Phone:     o.Phone,
		PetType:   o.PetType,
		Message:   o.Message,
		PhotoURL:  o.PhotoURL,
		Date:      o.Date,
		CreatedAt: o.CreatedAt,
	}
}
