package usecase

import (
	"strings"

	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// FilterAll disables a status or style predicate in a BookingFilter.
const FilterAll = "all"

// NextClientID selects the next client of the day: among pending and
// arrived bookings, the one with the earliest slot not yet passed, with
// now given in "HH:MM" form. Slot strings compare lexicographically.
// Ties go to the first candidate in input order. When every remaining
// slot has already passed there is no next client.
func NextClientID(bookings []entity.Booking, now string) (uuid.UUID, bool) {
	var (
		bestID   uuid.UUID
		bestTime string
		found    bool
	)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.BookingTime < now {
			continue
		}
		if !found || b.BookingTime < bestTime {
			bestID = b.ID
			bestTime = b.BookingTime
			found = true
		}
	}

	return bestID, found
}

// queueStatuses are the daily-queue columns, in display order.
// Cancelled bookings belong to no column.
var queueStatuses = []entity.BookingStatus{
	entity.BookingStatusPending,
	entity.BookingStatusArrived,
	entity.BookingStatusCompleted,
}

// GroupByStatus partitions bookings into the three queue buckets. Every
// booking lands in exactly one bucket; cancelled ones are dropped.
func GroupByStatus(bookings []entity.Booking) map[entity.BookingStatus][]entity.Booking {
	buckets := make(map[entity.BookingStatus][]entity.Booking, len(queueStatuses))
	for _, status := range queueStatuses {
		buckets[status] = []entity.Booking{}
	}

	for _, b := range bookings {
		if _, ok := buckets[b.Status]; ok {
			buckets[b.Status] = append(buckets[b.Status], b)
		}
	}

	return buckets
}

// FilterBookings applies the dashboard filter bar: case-insensitive
// substring on client name AND exact status AND exact style, where
// "all" or empty disables a predicate.
func FilterBookings(bookings []entity.Booking, filter dto.BookingFilter) []entity.Booking {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if search != "" && !strings.Contains(strings.ToLower(b.ClientName), search) {
			continue
		}
		if filter.Status != "" && filter.Status != FilterAll && string(b.Status) != filter.Status {
			continue
		}
		if filter.Style != "" && filter.Style != FilterAll && b.HaircutStyle != filter.Style {
			continue
		}
		filtered = append(filtered, b)
	}

	return filtered
}

// ComputeStats aggregates the dashboard cards. Pending groups pending
// and arrived together, matching the original card layout.
func ComputeStats(bookings []entity.Booking) dto.BookingStatsResponse {
	stats := dto.BookingStatsResponse{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case entity.BookingStatusPending, entity.BookingStatusArrived:
			stats.Pending++
		case entity.BookingStatusCompleted:
			stats.Completed++
		case entity.BookingStatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}
