package usecase

import (
	"context"
	"errors"
	"time"

	"mka-cortes-backend/internal/converter"
	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/delivery/http/middleware"
	"mka-cortes-backend/internal/domain/entity"
	"mka-cortes-backend/internal/domain/repository"
	"mka-cortes-backend/internal/metrics"
	"mka-cortes-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidTransition = errors.New("status transition is not allowed")

// actorID resolves the acting user for audit entries. Nil when the
// context carries no user, so the audit row stays FK-clean.
func actorID(ctx context.Context) *uuid.UUID {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}

type AdminBookingUsecase interface {
	ListBookings(ctx context.Context, filter dto.BookingFilter) (*dto.BookingListResponse, error)
	GetStats(ctx context.Context) (*dto.BookingStatsResponse, error)
	GetTodayQueue(ctx context.Context, now time.Time) (*dto.TodayQueueResponse, error)
	UpdateBooking(ctx context.Context, bookingID uuid.UUID, req *dto.AdminUpdateBookingRequest) (*dto.BookingResponse, error)
	ChangeStatus(ctx context.Context, bookingID uuid.UUID, target entity.BookingStatus) (*dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
}

type adminBookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	auditService service.AuditService
}

func NewAdminBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	auditService service.AuditService,
) AdminBookingUsecase {
	return &adminBookingUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		auditService: auditService,
	}
}

// ListBookings returns every booking, newest first, narrowed by the
// dashboard filter bar.
func (u *adminBookingUsecase) ListBookings(ctx context.Context, filter dto.BookingFilter) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	filtered := FilterBookings(bookings, filter)

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(filtered),
		Total:    len(filtered),
	}, nil
}

func (u *adminBookingUsecase) GetStats(ctx context.Context) (*dto.BookingStatsResponse, error) {
	bookings, err := u.bookingRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load bookings for stats: %+v", err)
		return nil, err
	}

	stats := ComputeStats(bookings)
	return &stats, nil
}

// GetTodayQueue builds the daily-queue view: today's bookings grouped
// into the pending/arrived/completed columns, the next-client pick and
// the day's counters.
func (u *adminBookingUsecase) GetTodayQueue(ctx context.Context, now time.Time) (*dto.TodayQueueResponse, error) {
	// "Today" is the shop's calendar day, not the server's. A host
	// running on UTC would otherwise flip to the next day at 21:00
	// shop time.
	now = now.In(entity.ShopTimezone)

	bookings, err := u.bookingRepo.FindByDate(u.db.WithContext(ctx), now)
	if err != nil {
		u.log.Warnf("Failed to load today's bookings: %+v", err)
		return nil, err
	}

	buckets := GroupByStatus(bookings)

	resp := &dto.TodayQueueResponse{
		Date:  now.Format("2006-01-02"),
		Stats: ComputeStats(bookings),
	}
	for _, status := range queueStatuses {
		resp.Buckets = append(resp.Buckets, dto.TodayBucketResponse{
			Status:   string(status),
			Count:    len(buckets[status]),
			Bookings: converter.BookingsToResponses(buckets[status]),
		})
	}

	if nextID, ok := NextClientID(bookings, now.Format("15:04")); ok {
		resp.NextClientID = &nextID
	}

	return resp, nil
}

// UpdateBooking applies a partial edit from the admin edit form. Status
// changes go through the lifecycle check; this is the only place where
// a booking can be cancelled.
func (u *adminBookingUsecase) UpdateBooking(ctx context.Context, bookingID uuid.UUID, req *dto.AdminUpdateBookingRequest) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	oldValue := converter.BookingToResponse(booking)

	if req.ClientName != nil {
		booking.ClientName = *req.ClientName
	}
	if req.ClientPhone != nil {
		booking.ClientPhone = entity.FormatPhone(*req.ClientPhone)
	}
	if req.BookingDate != nil {
		date, err := time.Parse("2006-01-02", *req.BookingDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		booking.BookingDate = date
	}
	if req.BookingTime != nil {
		if !entity.ValidTimeSlot(*req.BookingTime) {
			return nil, ErrInvalidTimeSlot
		}
		booking.BookingTime = *req.BookingTime
	}
	if req.HaircutStyle != nil {
		booking.HaircutStyle = *req.HaircutStyle
	}
	if req.Rating != nil {
		if !entity.ValidRating(req.Rating) {
			return nil, ErrInvalidRating
		}
		booking.Rating = req.Rating
	}
	if req.Comment != nil {
		booking.Comment = req.Comment
	}
	if req.Status != nil {
		target := entity.BookingStatus(*req.Status)
		if target != booking.Status {
			if !booking.CanTransitionTo(target) {
				return nil, ErrInvalidTransition
			}
			booking.Status = target
			metrics.IncStatusChange(string(target))
		}
	}

	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", bookingID, err)
		return nil, err
	}

	newValue := converter.BookingToResponse(booking)
	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionBookingUpdate, "booking", bookingID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// ChangeStatus backs the one-click queue actions ("chegou", "concluído").
// Cancellation is intentionally not reachable here.
func (u *adminBookingUsecase) ChangeStatus(ctx context.Context, bookingID uuid.UUID, target entity.BookingStatus) (*dto.BookingResponse, error) {
	if target != entity.BookingStatusArrived && target != entity.BookingStatusCompleted {
		return nil, ErrInvalidTransition
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	// Guarded update: affects zero rows if a concurrent session already
	// moved the booking to a terminal status.
	affected, err := u.bookingRepo.UpdateStatus(tx, bookingID, target)
	if err != nil {
		u.log.Warnf("Failed to change status of booking %s: %+v", bookingID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	oldStatus := booking.Status
	booking.Status = target

	if err := u.auditService.LogUpdate(ctx, tx, actorID(ctx), entity.AuditActionBookingStatus, "booking", bookingID.String(), string(oldStatus), string(target)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	metrics.IncStatusChange(string(target))
	u.log.Infof("Booking status changed: id=%s, %s -> %s", bookingID, oldStatus, target)

	return converter.BookingToResponse(booking), nil
}

func (u *adminBookingUsecase) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	affected, err := u.bookingRepo.Delete(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to delete booking %s: %+v", bookingID, err)
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, actorID(ctx), entity.AuditActionBookingDelete, "booking", bookingID.String(), converter.BookingToResponse(booking)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Booking deleted: id=%s", bookingID)
	return nil
}
