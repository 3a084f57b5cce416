package migration

import (
	"mangedesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.TicketResponsibleModel{},
		&models.StatusHistoryModel{},
		&models.StatusPhotoModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.AssetModel{},
		&models.AssetHistoryModel{},
	}
}
