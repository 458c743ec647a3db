package ledger

import (
	"gorm.io/gorm"

	"hrmslite.com/hrmslite/core"
	"hrmslite.com/hrmslite/model"
)

// SweepOrphans deletes every attendance record whose employee reference
// no longer resolves and returns the number removed. It is a
// maintenance pass, not part of the request flow: running it twice in a
// row removes nothing on the second run, and an empty store yields 0.
// Together with the attendance-first delete order it is the safety net
// for a cascade interrupted mid-way.
func SweepOrphans(db *gorm.DB) (int64, error) {
	result := db.
		Where("employee_id NOT IN (?)", db.Model(&model.Employee{}).Select("employee_id")).
		Delete(&model.Attendance{})
	if result.Error != nil {
		return 0, core.Internal("failed to clean up attendance records", result.Error)
	}
	return result.RowsAffected, nil
}
