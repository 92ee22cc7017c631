package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
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

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotOwned   = errors.New("booking does not belong to you")
	ErrBookingFinished   = errors.New("booking is already completed or cancelled")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeSlot   = errors.New("booking time is not an offered slot")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

const mailSendTimeout = 15 * time.Second

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error)
	LookupBooking(ctx context.Context, req *dto.LookupBookingRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error)
	UpdateOwnBooking(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateOwnBookingRequest) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	auditService service.AuditService
	mailer       *service.MailerService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	auditService service.AuditService,
	mailer *service.MailerService,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		bookingRepo:  bookingRepo,
		auditService: auditService,
		mailer:       mailer,
	}
}

// CreateBooking inserts a new booking in pending status and returns the
// confirmation token the client uses for self-service lookup. The admin
// notification email is fired asynchronously and never fails the booking.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if !entity.ValidTimeSlot(req.BookingTime) {
		return nil, ErrInvalidTimeSlot
	}
	if !entity.ValidRating(req.Rating) {
		return nil, ErrInvalidRating
	}

	booking := &entity.Booking{
		ClientName:        req.ClientName,
		ClientPhone:       entity.FormatPhone(req.ClientPhone),
		BookingDate:       date,
		BookingTime:       req.BookingTime,
		HaircutStyle:      req.HaircutStyle,
		Rating:            req.Rating,
		Comment:           req.Comment,
		Status:            entity.BookingStatusPending,
		ConfirmationToken: generateConfirmationToken(),
	}

	// Attach the owner when the caller is logged in, so the booking
	// shows up under "meus dados".
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		booking.UserID = &userID
	}

	if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		// A token collision is possible in principle; retry once with
		// a fresh token before giving up.
		if isDuplicateKeyError(err, "confirmation_token") {
			booking.ConfirmationToken = generateConfirmationToken()
			err = u.bookingRepo.Create(u.db.WithContext(ctx), booking)
		}
		if err != nil {
			u.log.Warnf("Failed to create booking: %+v", err)
			return nil, err
		}
	}

	metrics.IncBookingCreated()
	u.log.Infof("Booking created: id=%s, date=%s, time=%s", booking.ID, req.BookingDate, req.BookingTime)

	if err := u.auditService.LogCreate(ctx, u.db.WithContext(ctx), booking.UserID, entity.AuditActionBookingCreate, "booking", booking.ID.String(), converter.BookingToResponse(booking)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	go u.notifyAdmin(booking)

	return &dto.CreateBookingResponse{
		ID:                booking.ID,
		ConfirmationToken: booking.ConfirmationToken,
	}, nil
}

// LookupBooking resolves a confirmation token plus phone to the most
// recent matching booking. A miss is a normal outcome, returned as nil.
func (u *bookingUsecase) LookupBooking(ctx context.Context, req *dto.LookupBookingRequest) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByTokenAndPhone(
		u.db.WithContext(ctx),
		req.Token,
		entity.NormalizePhone(req.Phone),
	)
	if err != nil {
		u.log.Warnf("Failed to look up booking by token: %+v", err)
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}

	return converter.BookingToResponse(booking), nil
}

// GetMyBookings returns all bookings owned by the logged-in client
func (u *bookingUsecase) GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	bookings, err := u.bookingRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// UpdateOwnBooking lets a client adjust their own appointment details.
// Ownership is checked server-side and status never changes here.
func (u *bookingUsecase) UpdateOwnBooking(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateOwnBookingRequest) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if !booking.IsOwnedBy(userID) {
		return nil, ErrBookingNotOwned
	}
	if booking.IsTerminal() {
		return nil, ErrBookingFinished
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

	if err := u.bookingRepo.Update(u.db.WithContext(ctx), booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", bookingID, err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

// notifyAdmin sends the notification email outside the request cycle.
func (u *bookingUsecase) notifyAdmin(booking *entity.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), mailSendTimeout)
	defer cancel()

	err := u.mailer.SendBookingEmail(ctx, service.BookingEmail{
		ClientName:   booking.ClientName,
		ClientPhone:  booking.ClientPhone,
		BookingDate:  booking.BookingDate,
		BookingTime:  booking.BookingTime,
		HaircutStyle: booking.HaircutStyle,
		Comment:      booking.Comment,
	})
	if err != nil {
		if errors.Is(err, service.ErrMailerNotConfigured) {
			u.log.Debug("Mailer not configured, skipping booking notification")
			return
		}
		metrics.IncEmailFailure()
		u.log.Warnf("Failed to send booking notification for %s: %+v", booking.ID, err)
	}
}

// generateConfirmationToken generates an 8-char uppercase hex token,
// shown once to the client after booking.
func generateConfirmationToken() string {
	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)
	return fmt.Sprintf("%08X", randomBytes)
}
