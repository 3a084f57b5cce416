package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/domain/user"
	"mangedesk/internal/shared/logger"
)

type ExportTicketsQuery struct {
	Identity user.Identity
}

type ExportTicketsResult struct {
	FileName string
	Content  []byte
}

// ExportTicketsUseCase renders every ticket visible to the caller as CSV,
// newest first. The visibility filter is the same one the list endpoint
// applies.
type ExportTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewExportTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ExportTicketsUseCase) Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error) {
	tickets, err := uc.ticketRepo.ListAllVisible(ctx, query.Identity)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for export", "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"id", "title", "asset_tag", "environment", "requester_id", "responsible_ids", "urgency", "status", "created_at"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, t := range tickets {
		requester := ""
		if t.RequesterID() != nil {
			requester = strconv.FormatUint(uint64(*t.RequesterID()), 10)
		}

		responsibles := make([]string, 0, len(t.ResponsibleIDs()))
		for _, id := range t.ResponsibleIDs() {
			responsibles = append(responsibles, strconv.FormatUint(uint64(id), 10))
		}

		row := []string{
			strconv.FormatUint(uint64(t.ID()), 10),
			t.Title(),
			t.AssetTag(),
			t.Environment().String(),
			requester,
			strings.Join(responsibles, ", "),
			t.Urgency().String(),
			t.Status().String(),
			t.CreatedAt().Format("2006-01-02"),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	uc.logger.Infow("tickets exported", "count", len(tickets))

	return &ExportTicketsResult{
		FileName: "tickets.csv",
		Content:  buf.Bytes(),
	}, nil
}
