package services

import (
	"cleverloo/models"

	"gorm.io/gorm"
)

// UpdateRestroomRating recomputes a facility's aggregate rating from its
// reviews. A facility with no reviews keeps a zero rating.
func UpdateRestroomRating(db *gorm.DB, restroomID uint) error {
	var avg float64
	err := db.Model(&models.Review{}).
		Where("restroom_id = ?", restroomID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return err
	}

	return db.Model(&models.Restroom{}).
		Where("id = ?", restroomID).
		Update("rating", avg).Error
}

// RecomputeAllRatings refreshes every facility's aggregate rating. Used by
// the nightly job to repair drift from cascaded review deletes.
func RecomputeAllRatings(db *gorm.DB) error {
	var ids []uint
	if err := db.Model(&models.Restroom{}).Pluck("id", &ids).Error; err != nil {
		return err
	}
	for _, id := range ids {
		if err := UpdateRestroomRating(db, id); err != nil {
			return err
		}
	}
	return nil
}
