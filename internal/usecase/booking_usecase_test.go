package usecase

import (
	"context"
	"testing"
	"time"

	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/domain/entity"
	"mka-cortes-backend/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeBookingRepo struct {
	repository.BookingRepository

	lookupToken string
	lookupPhone string
	lookupRet   *entity.Booking
	lookupErr   error
}

func (f *fakeBookingRepo) FindByTokenAndPhone(db *gorm.DB, token, phoneDigits string) (*entity.Booking, error) {
	f.lookupToken = token
	f.lookupPhone = phoneDigits
	return f.lookupRet, f.lookupErr
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db
}

func TestLookupBookingNormalizesPhone(t *testing.T) {
	stored := &entity.Booking{
		ID:                uuid.New(),
		ClientName:        "João Silva",
		ClientPhone:       "(11) 98765-4321",
		BookingDate:       time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		BookingTime:       "14:00",
		HaircutStyle:      "Degradê",
		Status:            entity.BookingStatusPending,
		ConfirmationToken: "A1B2C3D4",
	}
	repo := &fakeBookingRepo{lookupRet: stored}
	u := NewBookingUsecase(testDB(t), logrus.New(), repo, nil, nil)

	resp, err := u.LookupBooking(context.Background(), &dto.LookupBookingRequest{
		Token: "A1B2C3D4",
		Phone: "(11) 98765-4321",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "A1B2C3D4", repo.lookupToken)
	assert.Equal(t, "11987654321", repo.lookupPhone)

	assert.Equal(t, stored.ID, resp.ID)
	assert.Equal(t, "João Silva", resp.ClientName)
	assert.Equal(t, "(11) 98765-4321", resp.ClientPhone)
	assert.Equal(t, "2025-03-15", resp.BookingDate)
	assert.Equal(t, "14:00", resp.BookingTime)
	assert.Equal(t, "Degradê", resp.HaircutStyle)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
}

func TestLookupBookingMiss(t *testing.T) {
	repo := &fakeBookingRepo{}
	u := NewBookingUsecase(testDB(t), logrus.New(), repo, nil, nil)

	resp, err := u.LookupBooking(context.Background(), &dto.LookupBookingRequest{
		Token: "DEADBEEF",
		Phone: "11987654321",
	})

	require.NoError(t, err)
	assert.Nil(t, resp)
}
