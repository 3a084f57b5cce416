package mappers

import (
	"fmt"

	"mangedesk/internal/domain/ticket"
	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and
// persistence models. The responsible-party id set is loaded separately by
// the repository and passed in.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel, responsibleIDs []uint) (*ticket.Ticket, error)
	HistoryToModel(e *ticket.StatusHistoryEntry) *models.StatusHistoryModel
	HistoryToDomain(model *models.StatusHistoryModel, photos []*ticket.StatusPhoto) (*ticket.StatusHistoryEntry, error)
	PhotoToDomain(model *models.StatusPhotoModel) (*ticket.StatusPhoto, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:            t.ID(),
		Title:         t.Title(),
		Description:   t.Description(),
		AssetTag:      t.AssetTag(),
		Environment:   t.Environment().String(),
		RequesterID:   t.RequesterID(),
		Urgency:       t.Urgency().String(),
		Status:        t.Status().String(),
		SuggestedDate: timePtrToMillis(t.SuggestedDate()),
		CreatedAt:     t.CreatedAt().UnixMilli(),
		UpdatedAt:     t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, responsibleIDs []uint) (*ticket.Ticket, error) {
	environment, err := vo.NewEnvironment(model.Environment)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	urgency, err := vo.NewUrgency(model.Urgency)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		model.AssetTag,
		environment,
		model.RequesterID,
		responsibleIDs,
		urgency,
		status,
		millisPtrToTime(model.SuggestedDate),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) HistoryToModel(e *ticket.StatusHistoryEntry) *models.StatusHistoryModel {
	return &models.StatusHistoryModel{
		ID:          e.ID(),
		TicketID:    e.TicketID(),
		Status:      e.Status().String(),
		Description: e.Description(),
		ActorID:     e.ActorID(),
		CreatedAt:   e.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) HistoryToDomain(model *models.StatusHistoryModel, photos []*ticket.StatusPhoto) (*ticket.StatusHistoryEntry, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("history entry %d: %w", model.ID, err)
	}

	return ticket.ReconstructStatusHistoryEntry(
		model.ID,
		model.TicketID,
		status,
		model.Description,
		model.ActorID,
		millisToTime(model.CreatedAt),
		photos,
	)
}

func (m *TicketMapperImpl) PhotoToDomain(model *models.StatusPhotoModel) (*ticket.StatusPhoto, error) {
	return ticket.ReconstructStatusPhoto(
		model.ID,
		model.HistoryID,
		model.Path,
		model.OriginalName,
		millisToTime(model.UploadedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Text,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		Path:         a.Path(),
		OriginalName: a.OriginalName(),
		UploadedAt:   a.UploadedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.Path,
		model.OriginalName,
		millisToTime(model.UploadedAt),
	)
}
