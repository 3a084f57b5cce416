package dto

import (
	"time"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/shared/mapper"
)

type TicketDTO struct {
	ID              uint            `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DescriptionHTML string          `json:"description_html,omitempty"`
	AssetTag        string          `json:"asset_tag"`
	Environment     string          `json:"environment"`
	RequesterID     *uint           `json:"requester_id"`
	ResponsibleIDs  []uint          `json:"responsible_ids"`
	Urgency         string          `json:"urgency"`
	Status          string          `json:"status"`
	SuggestedDate   *time.Time      `json:"suggested_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	History         []HistoryDTO    `json:"history,omitempty"`
	Comments        []CommentDTO    `json:"comments,omitempty"`
	Attachments     []AttachmentDTO `json:"attachments,omitempty"`
}

type HistoryDTO struct {
	ID          uint       `json:"id"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
	ActorID     *uint      `json:"actor_id"`
	CreatedAt   time.Time  `json:"created_at"`
	Photos      []PhotoDTO `json:"photos,omitempty"`
}

type PhotoDTO struct {
	ID           uint      `json:"id"`
	Path         string    `json:"path"`
	OriginalName string    `json:"original_name"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	AuthorID  *uint     `json:"author_id"`
	Text      string    `json:"text"`
	TextHTML  string    `json:"text_html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	Path         string    `json:"path"`
	OriginalName string    `json:"original_name"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type TicketListItemDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	AssetTag    string `json:"asset_tag"`
	Environment string `json:"environment"`
	Urgency     string `json:"urgency"`
	Status      string `json:"status"`
	RequesterID *uint  `json:"requester_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:             t.ID(),
		Title:          t.Title(),
		Description:    t.Description(),
		AssetTag:       t.AssetTag(),
		Environment:    t.Environment().String(),
		RequesterID:    t.RequesterID(),
		ResponsibleIDs: t.ResponsibleIDs(),
		Urgency:        t.Urgency().String(),
		Status:         t.Status().String(),
		SuggestedDate:  t.SuggestedDate(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func ToHistoryDTO(e *ticket.StatusHistoryEntry) HistoryDTO {
	return HistoryDTO{
		ID:          e.ID(),
		Status:      e.Status().String(),
		Description: e.Description(),
		ActorID:     e.ActorID(),
		CreatedAt:   e.CreatedAt(),
		Photos:      mapper.MapSlice(e.Photos(), ToPhotoDTO),
	}
}

func ToPhotoDTO(p *ticket.StatusPhoto) PhotoDTO {
	return PhotoDTO{
		ID:           p.ID(),
		Path:         p.Path(),
		OriginalName: p.OriginalName(),
		UploadedAt:   p.UploadedAt(),
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		AuthorID:  c.AuthorID(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		Path:         a.Path(),
		OriginalName: a.OriginalName(),
		UploadedAt:   a.UploadedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		AssetTag:    t.AssetTag(),
		Environment: t.Environment().String(),
		Urgency:     t.Urgency().String(),
		Status:      t.Status().String(),
		RequesterID: t.RequesterID(),
		CreatedAt:   t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt().Format(time.RFC3339),
	}
}

func ToTicketListItemDTOs(tickets []*ticket.Ticket) []TicketListItemDTO {
	return mapper.MapSlice(tickets, ToTicketListItemDTO)
}
