package usecases

import (
	"context"
	"sort"
	"time"

	ticketdto "mangedesk/internal/application/ticket/dto"
	"mangedesk/internal/domain/ticket"
	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/logger"
)

const topCriticalLimit = 10

type GetDashboardQuery struct {
	Identity user.Identity

	// Now anchors the created-within windows; the zero value means the
	// current time. Injected so window edges are testable.
	Now time.Time
}

type DashboardResult struct {
	Total           int64                         `json:"total"`
	ByStatus        map[string]int64              `json:"by_status"`
	ByUrgency       map[string]int64              `json:"by_urgency"`
	CriticalOpen    int64                         `json:"critical_open"`
	CreatedLast7d   int64                         `json:"created_last_7d"`
	CreatedLast30d  int64                         `json:"created_last_30d"`
	CreatedLast90d  int64                         `json:"created_last_90d"`
	TopCriticalOpen []ticketdto.TicketListItemDTO `json:"top_critical_open"`
}

// GetDashboardUseCase aggregates over exactly the set of tickets the caller
// is allowed to see. It never mutates anything: two calls over the same data
// return the same numbers.
type GetDashboardUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetDashboardUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*DashboardResult, error) {
	tickets, err := uc.ticketRepo.ListAllVisible(ctx, query.Identity)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for dashboard", "error", err)
		return nil, err
	}

	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}

	result := &DashboardResult{
		Total:     int64(len(tickets)),
		ByStatus:  make(map[string]int64, len(vo.AllStatuses())),
		ByUrgency: make(map[string]int64, len(vo.AllUrgencies())),
	}

	// Every status and urgency is keyed even when its count is zero.
	for _, s := range vo.AllStatuses() {
		result.ByStatus[s.String()] = 0
	}
	for _, u := range vo.AllUrgencies() {
		result.ByUrgency[u.String()] = 0
	}

	cutoff7 := now.AddDate(0, 0, -7)
	cutoff30 := now.AddDate(0, 0, -30)
	cutoff90 := now.AddDate(0, 0, -90)

	var critical []*ticket.Ticket

	for _, t := range tickets {
		result.ByStatus[t.Status().String()]++
		result.ByUrgency[t.Urgency().String()]++

		if t.Urgency().IsSevere() && t.Status().IsActionable() {
			result.CriticalOpen++
			critical = append(critical, t)
		}

		created := t.CreatedAt()
		// Window edges are inclusive: a ticket created exactly at the
		// cutoff instant counts.
		if !created.Before(cutoff7) {
			result.CreatedLast7d++
		}
		if !created.Before(cutoff30) {
			result.CreatedLast30d++
		}
		if !created.Before(cutoff90) {
			result.CreatedLast90d++
		}
	}

	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].CreatedAt().After(critical[j].CreatedAt())
	})
	if len(critical) > topCriticalLimit {
		critical = critical[:topCriticalLimit]
	}
	result.TopCriticalOpen = ticketdto.ToTicketListItemDTOs(critical)

	return result, nil
}
