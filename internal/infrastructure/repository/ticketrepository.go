package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"mangedesk/internal/domain/ticket"
	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/infrastructure/persistence/mappers"
	"mangedesk/internal/infrastructure/persistence/models"
	"mangedesk/internal/shared/db"
	"mangedesk/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":         true,
	"title":      true,
	"status":     true,
	"urgency":    true,
	"created_at": true,
	"updated_at": true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return r.replaceResponsibles(tx, model.ID, t.ResponsibleIDs())
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "asset_tag", "environment", "requester_id",
			"urgency", "status", "suggested_date", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return r.replaceResponsibles(tx, model.ID, t.ResponsibleIDs())
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", id))
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	responsibles, err := r.loadResponsibles(tx, []uint{model.ID})
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, responsibles[model.ID])
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.TicketModel{}), filter)
	return r.queryTickets(tx, query, filter)
}

func (r *TicketRepository) ListVisible(ctx context.Context, identity user.Identity, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if identity.IsAnonymous() {
		return []*ticket.Ticket{}, 0, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.TicketModel{}), filter)
	query = r.applyVisibility(query, identity)

	return r.queryTickets(tx, query, filter)
}

func (r *TicketRepository) ListAllVisible(ctx context.Context, identity user.Identity) ([]*ticket.Ticket, error) {
	if identity.IsAnonymous() {
		return []*ticket.Ticket{}, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyVisibility(tx.Model(&models.TicketModel{}), identity).
		Order("created_at DESC")

	var rows []models.TicketModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(tx, rows)
}

// DeleteGuarded performs the status guard and the delete as one conditional
// statement, then cascades to owned rows. Run inside a transaction so a
// concurrent status change either happens entirely before the guard or
// observes the ticket gone.
func (r *TicketRepository) DeleteGuarded(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("id = ? AND status <> ?", id, vo.StatusInProgress.String()).
		Delete(&models.TicketModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.TicketModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check ticket: %w", err)
		}
		if count == 0 {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", id))
		}
		return errors.NewConflictError("cannot delete a ticket that is in progress")
	}

	var historyIDs []uint
	if err := tx.Model(&models.StatusHistoryModel{}).
		Where("ticket_id = ?", id).
		Pluck("id", &historyIDs).Error; err != nil {
		return fmt.Errorf("failed to load history ids: %w", err)
	}

	if len(historyIDs) > 0 {
		if err := tx.Where("history_id IN ?", historyIDs).Delete(&models.StatusPhotoModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete status photos: %w", err)
		}
	}

	cascades := []interface{}{
		&models.StatusHistoryModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.TicketResponsibleModel{},
	}
	for _, model := range cascades {
		if err := tx.Where("ticket_id = ?", id).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to cascade delete: %w", err)
		}
	}

	return nil
}

func (r *TicketRepository) applyVisibility(query *gorm.DB, identity user.Identity) *gorm.DB {
	if identity.IsStaff {
		return query
	}
	return query.Where(
		"requester_id = ? OR id IN (?)",
		identity.UserID,
		r.db.Model(&models.TicketResponsibleModel{}).
			Select("ticket_id").
			Where("user_id = ?", identity.UserID),
	)
}

func (r *TicketRepository) applyFilter(query *gorm.DB, filter ticket.Filter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Urgency != nil {
		query = query.Where("urgency = ?", filter.Urgency.String())
	}
	if filter.Environment != nil {
		query = query.Where("environment = ?", filter.Environment.String())
	}
	if filter.Search != "" {
		pattern := "%" + strings.TrimSpace(filter.Search) + "%"
		query = query.Where(
			"title LIKE ? OR description LIKE ? OR asset_tag LIKE ?",
			pattern, pattern, pattern,
		)
	}
	return query
}

func (r *TicketRepository) queryTickets(tx *gorm.DB, query *gorm.DB, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	orderBy := "created_at"
	if filter.SortBy != "" && allowedTicketOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}
	query = query.Order(orderBy + " " + direction)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var rows []models.TicketModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.toDomainList(tx, rows)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepository) toDomainList(tx *gorm.DB, rows []models.TicketModel) ([]*ticket.Ticket, error) {
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	responsibles, err := r.loadResponsibles(tx, ids)
	if err != nil {
		return nil, err
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i], responsibles[rows[i].ID])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, nil
}

func (r *TicketRepository) loadResponsibles(tx *gorm.DB, ticketIDs []uint) (map[uint][]uint, error) {
	result := make(map[uint][]uint, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return result, nil
	}

	var links []models.TicketResponsibleModel
	if err := tx.Where("ticket_id IN ?", ticketIDs).Order("id").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to load responsibles: %w", err)
	}

	for _, link := range links {
		result[link.TicketID] = append(result[link.TicketID], link.UserID)
	}

	return result, nil
}

func (r *TicketRepository) replaceResponsibles(tx *gorm.DB, ticketID uint, userIDs []uint) error {
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketResponsibleModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear responsibles: %w", err)
	}

	for _, userID := range userIDs {
		link := models.TicketResponsibleModel{TicketID: ticketID, UserID: userID}
		if err := tx.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to link responsible: %w", err)
		}
	}

	return nil
}
