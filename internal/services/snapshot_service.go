package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "prospect/internal/errors"
	"prospect/internal/logger"
	"prospect/internal/models"
	"prospect/internal/pagination"
)

// snapshotService records and serves net worth history.
type snapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db}
}

// ComputeAndRecordSnapshots writes one snapshot per user for the given
// instant, replacing any snapshot already recorded for that calendar day.
// Hidden holdings still count; hiding is a display preference, not an
// exclusion from the balance sheet. Returns the number of users recorded.
func (s *snapshotService) ComputeAndRecordSnapshots(recordedAt time.Time) (int, error) {
	var userIDs []string
	if err := s.db.Model(&models.User{}).Pluck("id", &userIDs).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	recorded := 0
	for _, userID := range userIDs {
		if err := s.recordForUser(userID, recordedAt); err != nil {
			logger.Get().Errorw("failed to record net worth snapshot", "error", err, "user_id", userID)
			continue
		}
		recorded++
	}
	return recorded, nil
}

func (s *snapshotService) recordForUser(userID string, recordedAt time.Time) error {
	var holdings []models.Holding
	if err := s.db.Where("user_id = ?", userID).Find(&holdings).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var assets, liabilities float64
	for _, h := range holdings {
		if h.IsLiability {
			liabilities += h.Value
		} else {
			assets += h.Value
		}
	}

	dayStart := time.Date(recordedAt.Year(), recordedAt.Month(), recordedAt.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.NetWorthSnapshot
		err := tx.Where("user_id = ? AND recorded_at >= ? AND recorded_at < ?", userID, dayStart, dayEnd).
			First(&existing).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"recorded_at":       recordedAt,
				"total_assets":      assets,
				"total_liabilities": liabilities,
				"net_worth":         assets - liabilities,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			snapshot := models.NetWorthSnapshot{
				UserID:           userID,
				RecordedAt:       recordedAt,
				TotalAssets:      assets,
				TotalLiabilities: liabilities,
				NetWorth:         assets - liabilities,
			}
			if err := tx.Create(&snapshot).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return nil
		default:
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	})
}

// GetSnapshots returns the user's snapshot history, newest first, optionally
// bounded by a date range. Zero time bounds are open ends.
func (s *snapshotService) GetSnapshots(userID string, from, to time.Time, page pagination.PageRequest) (*pagination.PageResponse[models.NetWorthSnapshot], error) {
	page.Defaults()

	query := s.db.Model(&models.NetWorthSnapshot{}).Where("user_id = ?", userID)
	if !from.IsZero() {
		query = query.Where("recorded_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("recorded_at <= ?", to)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var snapshots []models.NetWorthSnapshot
	if err := query.
		Order("recorded_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(snapshots, page.Page, page.PageSize, totalItems)
	return &result, nil
}
