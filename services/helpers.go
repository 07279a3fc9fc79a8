package services

import (
	"context"
	"errors"
	"time"

	"retail-api/dtos"
	"retail-api/utils/apperror"

	"gorm.io/gorm"
)

// now is swapped in tests that depend on the calendar.
var now = func() time.Time { return time.Now().UTC() }

func missingFields(operation string) error {
	return apperror.Validation("Missing required fields for " + operation)
}

// exists loads the row with id into dest and maps a miss to notFoundMsg.
func exists(ctx context.Context, db *gorm.DB, dest interface{}, id uint, notFoundMsg string) error {
	if err := db.WithContext(ctx).First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound(notFoundMsg)
		}
		return apperror.Internal(err)
	}
	return nil
}

// deleteByID hard deletes one row; zero rows affected is a NotFound.
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id uint, notFoundMsg string) error {
	result := db.WithContext(ctx).Delete(model, id)
	if result.Error != nil {
		return apperror.FromDB(result.Error, "")
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound(notFoundMsg)
	}
	return nil
}

// monthRange returns [first day of t's month, first day of next month).
func monthRange(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.UTC().Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func dayRange(t time.Time) (time.Time, time.Time) {
	start := dtos.DateOnly(t)
	return start, start.AddDate(0, 0, 1)
}

func parseDateField(value, field string) (*time.Time, error) {
	t, err := dtos.ParseDate(value)
	if err != nil {
		return nil, apperror.Validation("Invalid " + field)
	}
	return t, nil
}

func optionalID(id *dtos.FlexibleID) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	v := id.Uint()
	return &v
}
