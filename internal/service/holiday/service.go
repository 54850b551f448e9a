package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftsync/shiftsync-backend-go/internal/domain/attendance"
	"github.com/shiftsync/shiftsync-backend-go/internal/domain/holiday"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/database"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/idgen"
)

type HolidayServiceImpl struct {
	tx                database.Transactor
	holidayRepo       holiday.HolidayRepository
	attendanceService attendance.AttendanceService
	ids               idgen.Generator
	now               func() time.Time
}

func NewHolidayService(
	tx database.Transactor,
	holidayRepo holiday.HolidayRepository,
	attendanceService attendance.AttendanceService,
	ids idgen.Generator,
) holiday.HolidayService {
	return &HolidayServiceImpl{
		tx:                tx,
		holidayRepo:       holidayRepo,
		attendanceService: attendanceService,
		ids:               ids,
		now:               time.Now,
	}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.CreateHolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.CreateHolidayResponse{}, err
	}

	var resp holiday.CreateHolidayResponse
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.holidayRepo.Create(ctx, holiday.PublicHoliday{
			ID:        s.ids.NewID(),
			Date:      req.Date,
			Name:      req.Name,
			CreatedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("failed to create public holiday: %w", err)
		}

		stamped, err := s.attendanceService.StampHoliday(ctx, req.Date, req.Actor)
		if err != nil {
			return fmt.Errorf("failed to stamp public holiday: %w", err)
		}

		resp = holiday.CreateHolidayResponse{Holiday: created, Stamped: stamped}
		return nil
	})
	if err != nil {
		return holiday.CreateHolidayResponse{}, err
	}

	slog.Info("Public holiday created", "holiday_id", resp.Holiday.ID, "date", resp.Holiday.Date, "stamped", resp.Stamped)
	return resp, nil
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, year int) ([]holiday.PublicHoliday, error) {
	holidays, err := s.holidayRepo.List(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	return holidays, nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete public holiday: %w", err)
	}
	return nil
}

// Dates implements holiday.HolidayService.
func (s *HolidayServiceImpl) Dates(ctx context.Context) (map[string]bool, error) {
	holidays, err := s.holidayRepo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	dates := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		dates[h.Date] = true
	}
	return dates, nil
}
