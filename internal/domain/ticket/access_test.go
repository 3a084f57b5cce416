package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "mangedesk/internal/domain/ticket/valueobjects"
	"mangedesk/internal/domain/user"
)

func buildTicket(t *testing.T, id uint, requesterID *uint, responsibleIDs []uint) *Ticket {
	t.Helper()

	tk, err := ReconstructTicket(
		id,
		"ticket",
		"description",
		"AST-001",
		vo.EnvironmentProduction,
		requesterID,
		responsibleIDs,
		vo.UrgencyMedium,
		vo.StatusOpen,
		nil,
		time.Now(),
		time.Now(),
	)
	require.NoError(t, err)
	return tk
}

func TestVisibleTo(t *testing.T) {
	alice := uint(1)
	bob := uint(2)

	tickets := []*Ticket{
		buildTicket(t, 1, &alice, nil),          // alice requested
		buildTicket(t, 2, &bob, []uint{alice}),  // alice responsible
		buildTicket(t, 3, &alice, []uint{alice}), // both conditions
		buildTicket(t, 4, &bob, []uint{bob}),    // unrelated to alice
		buildTicket(t, 5, nil, nil),             // orphaned requester
	}

	t.Run("staff sees everything", func(t *testing.T) {
		visible := VisibleTo(user.Identity{UserID: 99, IsStaff: true}, tickets)
		assert.Len(t, visible, 5)
	})

	t.Run("non-staff sees requested or responsible without duplicates", func(t *testing.T) {
		visible := VisibleTo(user.Identity{UserID: alice}, tickets)

		require.Len(t, visible, 3)
		ids := []uint{visible[0].ID(), visible[1].ID(), visible[2].ID()}
		assert.Equal(t, []uint{1, 2, 3}, ids)
	})

	t.Run("anonymous sees nothing", func(t *testing.T) {
		visible := VisibleTo(user.Anonymous(), tickets)
		assert.Empty(t, visible)
	})

	t.Run("unrelated user sees nothing", func(t *testing.T) {
		visible := VisibleTo(user.Identity{UserID: 42}, tickets)
		assert.Empty(t, visible)
	})

	t.Run("no side effects on input", func(t *testing.T) {
		before := len(tickets)
		VisibleTo(user.Identity{UserID: alice}, tickets)
		assert.Len(t, tickets, before)
	})
}
