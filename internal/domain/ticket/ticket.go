package ticket

import (
	"fmt"
	"time"

	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
)

// Ticket is the helpdesk work item (chamado). The requester reference is
// nullable: it survives the deletion of the requesting account as null.
// Responsible parties are a set of user ids managed through a join table.
type Ticket struct {
	id             uint
	title          string
	description    string
	assetTag       string
	environment    vo.Environment
	requesterID    *uint
	responsibleIDs []uint
	urgency        vo.Urgency
	status         vo.TicketStatus
	suggestedDate  *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(
	title string,
	description string,
	assetTag string,
	environment vo.Environment,
	urgency vo.Urgency,
	requesterID uint,
	suggestedDate *time.Time,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !environment.IsValid() {
		return nil, fmt.Errorf("invalid environment")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency")
	}
	if requesterID == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	now := time.Now()
	requester := requesterID

	return &Ticket{
		title:          title,
		description:    description,
		assetTag:       assetTag,
		environment:    environment,
		requesterID:    &requester,
		responsibleIDs: []uint{},
		urgency:        urgency,
		status:         vo.StatusOpen,
		suggestedDate:  suggestedDate,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	assetTag string,
	environment vo.Environment,
	requesterID *uint,
	responsibleIDs []uint,
	urgency vo.Urgency,
	status vo.TicketStatus,
	suggestedDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !environment.IsValid() {
		return nil, fmt.Errorf("invalid environment")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if responsibleIDs == nil {
		responsibleIDs = []uint{}
	}

	return &Ticket{
		id:             id,
		title:          title,
		description:    description,
		assetTag:       assetTag,
		environment:    environment,
		requesterID:    requesterID,
		responsibleIDs: responsibleIDs,
		urgency:        urgency,
		status:         status,
		suggestedDate:  suggestedDate,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) AssetTag() string {
	return t.assetTag
}

func (t *Ticket) Environment() vo.Environment {
	return t.environment
}

func (t *Ticket) RequesterID() *uint {
	return t.requesterID
}

func (t *Ticket) ResponsibleIDs() []uint {
	ids := make([]uint, len(t.responsibleIDs))
	copy(ids, t.responsibleIDs)
	return ids
}

func (t *Ticket) Urgency() vo.Urgency {
	return t.urgency
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) SuggestedDate() *time.Time {
	return t.suggestedDate
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to newStatus. Any valid status may follow
// any other; the system intentionally enforces no transition adjacency.
// Whether that permissiveness is product intent or a latent defect is an
// open question tracked in DESIGN.md.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	return nil
}

// AssignResponsibles replaces the responsible-party set. Status is left
// untouched: every status change goes through ChangeStatus so the history
// trail stays complete.
func (t *Ticket) AssignResponsibles(userIDs []uint) error {
	seen := make(map[uint]bool, len(userIDs))
	ids := make([]uint, 0, len(userIDs))
	for _, id := range userIDs {
		if id == 0 {
			return fmt.Errorf("responsible user ID cannot be zero")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	t.responsibleIDs = ids
	t.updatedAt = time.Now()

	return nil
}

// UpdateDetails edits the mutable descriptive fields.
func (t *Ticket) UpdateDetails(
	title string,
	description string,
	assetTag string,
	environment vo.Environment,
	urgency vo.Urgency,
	suggestedDate *time.Time,
) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !environment.IsValid() {
		return fmt.Errorf("invalid environment")
	}
	if !urgency.IsValid() {
		return fmt.Errorf("invalid urgency")
	}

	t.title = title
	t.description = description
	t.assetTag = assetTag
	t.environment = environment
	t.urgency = urgency
	t.suggestedDate = suggestedDate
	t.updatedAt = time.Now()

	return nil
}

// IsDeletable reports whether the ticket may be removed. A ticket that is
// in progress must never be deleted.
func (t *Ticket) IsDeletable() bool {
	return !t.status.IsInProgress()
}

// CanBeViewedBy implements the visibility rule: staff see every ticket,
// other callers only tickets they requested or are responsible for.
// Anonymous callers see nothing.
func (t *Ticket) CanBeViewedBy(identity user.Identity) bool {
	if identity.IsAnonymous() {
		return false
	}
	if identity.IsStaff {
		return true
	}
	if t.requesterID != nil && *t.requesterID == identity.UserID {
		return true
	}
	for _, id := range t.responsibleIDs {
		if id == identity.UserID {
			return true
		}
	}
	return false
}
