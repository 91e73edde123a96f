package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the full schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&productModel{},
		&cartItemModel{},
		&orderModel{},
		&warrantyPlanModel{},
		&userPlanModel{},
		&kitchenDetailsModel{},
		&serviceRequestModel{},
		&contractModel{},
		&notificationModel{},
		&deviceTokenModel{},
		&technicianModel{},
		&maintenanceTipModel{},
	)
}
