package repository

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"zenstay/infras/otel/mocks"
	"zenstay/shared/dto"
)

type bookingRow struct {
	ID     string `db:"id"`
	RoomID string `db:"room_id"`
	Status string `db:"status"`
}

type capturingExecer struct {
	query string
	arg   interface{}
}

func (c *capturingExecer) NamedExecContext(_ context.Context, query string, arg interface{}) (sql.Result, error) {
	c.query = query
	c.arg = arg

	return noopResult{}, nil
}

type noopResult struct{}

func (noopResult) LastInsertId() (int64, error) { return 0, nil }
func (noopResult) RowsAffected() (int64, error) { return 0, nil }

func TestUpdate_FilterOnUpdatedColumnKeepsBothBindings(t *testing.T) {
	repo := NewRepository[bookingRow]("Booking", "bookings", "id", nil, mocks.NewOtel())
	exec := &capturingExecer{}

	fields := map[string]any{
		"status":      "CANCELLED",
		"modified_by": "test-user",
	}
	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "room_id",
				Value:    "room-1",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			dto.Filter{
				Field:    "status",
				Value:    "APPROVED",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	err := repo.update(context.Background(), exec, fields, filter)
	assert.NoError(t, err)

	assert.Contains(t, exec.query, "status = :set_status")
	assert.Contains(t, exec.query, "bookings.status = :status")

	_, boundArgs, err := sqlx.Named(exec.query, exec.arg)
	assert.NoError(t, err)

	assert.Contains(t, boundArgs, "APPROVED")
	assert.Contains(t, boundArgs, "CANCELLED")
}

func TestUpdate_EmptyFilterUpdatesWholeTable(t *testing.T) {
	repo := NewRepository[bookingRow]("Booking", "bookings", "id", nil, mocks.NewOtel())
	exec := &capturingExecer{}

	fields := map[string]any{
		"status": "CANCELLED",
	}

	err := repo.update(context.Background(), exec, fields, dto.FilterGroup{})
	assert.NoError(t, err)

	assert.False(t, strings.Contains(exec.query, "WHERE"))
	assert.Contains(t, exec.query, "status = :set_status")
}
