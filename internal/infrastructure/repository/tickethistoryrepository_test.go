package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mangedesk/internal/domain/ticket"
	"mangedesk/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.CommentModel{},
		&models.StatusHistoryModel{},
		&models.StatusPhotoModel{},
	)
	require.NoError(t, err)

	return gdb
}

func saveTestComment(t *testing.T, repo *TicketCommentRepository, ticketID uint, text string) *ticket.Comment {
	t.Helper()

	author := uint(2)
	comment, err := ticket.NewComment(ticketID, &author, text)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), comment))
	return comment
}

func TestTicketCommentRepository_ListByTicket_NewestFirst(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketCommentRepository(gdb)

	saveTestComment(t, repo, 1, "First comment")
	time.Sleep(10 * time.Millisecond)
	saveTestComment(t, repo, 1, "Second comment")
	time.Sleep(10 * time.Millisecond)
	saveTestComment(t, repo, 1, "Third comment")
	saveTestComment(t, repo, 99, "Other ticket")

	comments, err := repo.ListByTicket(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "Third comment", comments[0].Text())
	assert.Equal(t, "Second comment", comments[1].Text())
	assert.Equal(t, "First comment", comments[2].Text())
}

func TestTicketCommentRepository_ListByTicket_Empty(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketCommentRepository(gdb)

	comments, err := repo.ListByTicket(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, comments, 0)
}
