package repository

import (
	"database/sql"
	"testing"
	"time"

	"mka-cortes-backend/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func bookingColumns() []string {
	return []string{
		"id", "client_name", "client_phone", "booking_date", "booking_time",
		"haircut_style", "rating", "comment", "status", "confirmation_token",
		"user_id", "created_at", "updated_at",
	}
}

const lookupQuery = `SELECT \* FROM "bookings" WHERE confirmation_token = \$1 AND regexp_replace\(client_phone, '\\D', '', 'g'\) = \$2 ORDER BY created_at DESC`

func TestFindByTokenAndPhone(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	id := uuid.New()
	bookingDate := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows(bookingColumns()).
		AddRow(id, "João Silva", "(11) 98765-4321", bookingDate, "14:00",
			"Degradê", nil, nil, "pending", "A1B2C3D4", nil, createdAt, createdAt)

	mock.ExpectQuery(lookupQuery).
		WithArgs("A1B2C3D4", "11987654321", 1).
		WillReturnRows(rows)

	repo := NewBookingRepository()
	booking, err := repo.FindByTokenAndPhone(db, "A1B2C3D4", "11987654321")

	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, id, booking.ID)
	assert.Equal(t, "João Silva", booking.ClientName)
	assert.Equal(t, "(11) 98765-4321", booking.ClientPhone)
	assert.Equal(t, "2025-03-15", booking.BookingDate.Format("2006-01-02"))
	assert.Equal(t, "14:00", booking.BookingTime)
	assert.Equal(t, "Degradê", booking.HaircutStyle)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, "A1B2C3D4", booking.ConfirmationToken)
	assert.Nil(t, booking.UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByTokenAndPhoneNoMatch(t *testing.T) {
	db, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	mock.ExpectQuery(lookupQuery).
		WithArgs("A1B2C3D4", "11900000000", 1).
		WillReturnRows(sqlmock.NewRows(bookingColumns()))

	repo := NewBookingRepository()
	booking, err := repo.FindByTokenAndPhone(db, "A1B2C3D4", "11900000000")

	require.NoError(t, err)
	assert.Nil(t, booking)
	assert.NoError(t, mock.ExpectationsWereMet())
}
