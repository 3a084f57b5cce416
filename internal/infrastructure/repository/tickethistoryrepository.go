package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/infrastructure/persistence/mappers"
	"mangedesk/internal/infrastructure/persistence/models"
	"mangedesk/internal/shared/db"
)

type TicketHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketHistoryRepository(gdb *gorm.DB) *TicketHistoryRepository {
	return &TicketHistoryRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

// Append writes the entry and its photos. Callers that pair this with a
// status write must carry a transaction in the context.
func (r *TicketHistoryRepository) Append(ctx context.Context, entry *ticket.StatusHistoryEntry) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.HistoryToModel(entry)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		return err
	}

	for _, photo := range entry.Photos() {
		photoModel := models.StatusPhotoModel{
			HistoryID:    model.ID,
			Path:         photo.Path(),
			OriginalName: photo.OriginalName(),
			UploadedAt:   photo.UploadedAt().UnixMilli(),
		}
		if err := tx.Create(&photoModel).Error; err != nil {
			return fmt.Errorf("failed to save status photo: %w", err)
		}
	}

	return nil
}

func (r *TicketHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.StatusHistoryEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.StatusHistoryModel
	if err := tx.Where("ticket_id = ?", ticketID).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	photos, err := r.loadPhotos(tx, rows)
	if err != nil {
		return nil, err
	}

	entries := make([]*ticket.StatusHistoryEntry, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.HistoryToDomain(&rows[i], photos[rows[i].ID])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *TicketHistoryRepository) loadPhotos(tx *gorm.DB, rows []models.StatusHistoryModel) (map[uint][]*ticket.StatusPhoto, error) {
	result := make(map[uint][]*ticket.StatusPhoto, len(rows))
	if len(rows) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var photoRows []models.StatusPhotoModel
	if err := tx.Where("history_id IN ?", ids).Order("id").Find(&photoRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load status photos: %w", err)
	}

	for i := range photoRows {
		photo, err := r.mapper.PhotoToDomain(&photoRows[i])
		if err != nil {
			return nil, err
		}
		result[photoRows[i].HistoryID] = append(result[photoRows[i].HistoryID], photo)
	}

	return result, nil
}

type TicketCommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketCommentRepository(gdb *gorm.DB) *TicketCommentRepository {
	return &TicketCommentRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.CommentToModel(comment)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return comment.SetID(model.ID)
}

// ListByTicket returns the ticket's comments newest first.
func (r *TicketCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.CommentModel
	if err := tx.Where("ticket_id = ?", ticketID).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(rows))
	for i := range rows {
		comment, err := r.mapper.CommentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

type TicketAttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketAttachmentRepository(gdb *gorm.DB) *TicketAttachmentRepository {
	return &TicketAttachmentRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketAttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.AttachmentToModel(attachment)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return attachment.SetID(model.ID)
}

func (r *TicketAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.AttachmentModel
	if err := tx.Where("ticket_id = ?", ticketID).Order("uploaded_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, 0, len(rows))
	for i := range rows {
		attachment, err := r.mapper.AttachmentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, attachment)
	}

	return attachments, nil
}
