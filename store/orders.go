package store

import (
	"homecooked/models"

	"gorm.io/gorm"
)

func CreateOrder(db *gorm.DB, order *models.Order) error {
	return db.Create(order).Error
}

func UserOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func UserOrder(db *gorm.DB, userID, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// AllOrders lists every order with its customer for the back office.
func AllOrders(db *gorm.DB, status string) ([]models.Order, error) {
	var orders []models.Order
	q := db.Preload("User")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at DESC").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func UpdateOrderStatus(db *gorm.DB, orderID uint, status string) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	order.Status = status
	return &order, nil
}
