package ordersapi

import (
	"fmt"
	"net/http"
	"time"

	"portfolio-backend/database"
	"portfolio-backend/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

// POST /orders
//
// The public commission form. The notification email goes out first and is
// allowed to fail; the order row is written regardless. Only a failed write
// is an error to the caller.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, phone, message and photo are required"})
		return
	}

	if req.PetType == "" {
		req.PetType = orders.DefaultPetType
	}

	order := orders.Order{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		PetType:  req.PetType,
		Message:  req.Message,
		PhotoURL: req.PhotoURL,
		Date:     time.Now().Format("2006-01-02"),
	}

	emailErr := Notifier.SendOrderNotification(order)
	if emailErr != nil {
		fmt.Println("⚠️  Order notification email failed:", emailErr)
	}

	if err := database.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}

	resp := CreateOrderResponse{Order: toOrderDTO(order), EmailSent: emailErr == nil}
	if emailErr != nil {
		resp.Warning = "Order saved but the notification email could not be sent"
	}
	c.JSON(http.StatusCreated, resp)
}

// GET /admin/orders
func ListOrders(c *gin.Context) {
	var list []orders.Order
	if err := database.DB.
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	out := ListOrdersResponse{Orders: make([]OrderDTO, 0, len(list))}
	for _, o := range list {
		out.Orders = append(out.Orders, toOrderDTO(o))
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /admin/orders/:id
func DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&orders.Order{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
