package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "sekolahku_backend/internals/features/academics/courses/model"
	enrollModel "sekolahku_backend/internals/features/academics/enrollments/model"
	"sekolahku_backend/internals/features/finance/fees/model"
	helper "sekolahku_backend/internals/helpers"
)

/* ==============================================
   Gorm-backed stores
============================================== */

type GormStore struct {
	DB *gorm.DB
}

var _ ChargeStore = (*GormStore)(nil)
var _ DiscountStore = (*GormStore)(nil)
var _ PaymentStore = (*GormStore)(nil)
var _ RunStore = (*GormStore)(nil)

func (s *GormStore) ChargeByID(ctx context.Context, feeID uuid.UUID) (*model.Fee, error) {
	var fee model.Fee
	if err := s.DB.WithContext(ctx).
		First(&fee, "fee_id = ? AND fee_deleted_at IS NULL", feeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeeNotFound
		}
		return nil, err
	}
	return &fee, nil
}

func (s *GormStore) ChargeExists(ctx context.Context, enrollmentID uuid.UUID, cycleKey time.Time) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).
		Model(&model.Fee{}).
		Where("fee_enrollment_id = ? AND fee_cycle_key = ? AND fee_deleted_at IS NULL", enrollmentID, cycleKey).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) CreateCharge(ctx context.Context, fee *model.Fee) error {
	if err := s.DB.WithContext(ctx).Create(fee).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return ErrDuplicateCycle
		}
		return err
	}
	return nil
}

func (s *GormStore) ChargesByEnrollment(ctx context.Context, enrollmentID uuid.UUID) ([]model.Fee, error) {
	var fees []model.Fee
	if err := s.DB.WithContext(ctx).
		Where("fee_enrollment_id = ? AND fee_deleted_at IS NULL", enrollmentID).
		Order("fee_cycle_key ASC").
		Find(&fees).Error; err != nil {
		return nil, err
	}
	return fees, nil
}

func (s *GormStore) ChargesByDiscount(ctx context.Context, discountID uuid.UUID) ([]model.Fee, error) {
	var fees []model.Fee
	if err := s.DB.WithContext(ctx).
		Where("fee_discount_id = ? AND fee_deleted_at IS NULL", discountID).
		Order("fee_cycle_key ASC").
		Find(&fees).Error; err != nil {
		return nil, err
	}
	return fees, nil
}

func (s *GormStore) DiscountByID(ctx context.Context, discountID uuid.UUID) (*model.FeeDiscount, error) {
	var d model.FeeDiscount
	if err := s.DB.WithContext(ctx).
		First(&d, "fee_discount_id = ? AND fee_discount_deleted_at IS NULL", discountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *GormStore) CreateDiscountApplying(ctx context.Context, d *model.FeeDiscount, fees []model.Fee) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		for i := range fees {
			if err := tx.Save(&fees[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) RemoveDiscountReverting(ctx context.Context, d *model.FeeDiscount, fees []model.Fee) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range fees {
			if err := tx.Save(&fees[i]).Error; err != nil {
				return err
			}
		}
		return tx.Delete(d).Error
	})
}

func (s *GormStore) SaveChargeWithTransaction(ctx context.Context, fee *model.Fee, txn *model.FeeTransaction) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(fee).Error; err != nil {
			return err
		}
		return tx.Create(txn).Error
	})
}

func (s *GormStore) SaveRun(ctx context.Context, run *model.BillingRun) error {
	return s.DB.WithContext(ctx).Create(run).Error
}

/* ==============================================
   Registry & catalog adapters

   The billing engine reads enrollments and fee
   schedules through its ports; these adapters
   bind the ports to the academics tables.
============================================== */

type GormEnrollmentRegistry struct {
	DB *gorm.DB
}

var _ EnrollmentSource = (*GormEnrollmentRegistry)(nil)

func (r *GormEnrollmentRegistry) ListActiveEnrollments(ctx context.Context) ([]ActiveEnrollment, error) {
	var rows []enrollModel.Enrollment
	if err := r.DB.WithContext(ctx).
		Where("enrollment_status = ? AND enrollment_deleted_at IS NULL", enrollModel.EnrollmentStatusActive).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ActiveEnrollment, 0, len(rows))
	for _, m := range rows {
		out = append(out, toActiveEnrollment(m))
	}
	return out, nil
}

func (r *GormEnrollmentRegistry) EnrollmentByID(ctx context.Context, enrollmentID uuid.UUID) (*ActiveEnrollment, error) {
	var m enrollModel.Enrollment
	if err := r.DB.WithContext(ctx).
		First(&m, "enrollment_id = ? AND enrollment_deleted_at IS NULL", enrollmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	enr := toActiveEnrollment(m)
	return &enr, nil
}

func (r *GormEnrollmentRegistry) MarkCompleted(ctx context.Context, enrollmentID uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Model(&enrollModel.Enrollment{}).
		Where("enrollment_id = ? AND enrollment_status = ? AND enrollment_deleted_at IS NULL",
			enrollmentID, enrollModel.EnrollmentStatusActive).
		Updates(map[string]any{
			"enrollment_status":     enrollModel.EnrollmentStatusCompleted,
			"enrollment_updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

func toActiveEnrollment(m enrollModel.Enrollment) ActiveEnrollment {
	return ActiveEnrollment{
		EnrollmentID: m.EnrollmentID,
		StudentID:    m.EnrollmentStudentID,
		CourseID:     m.EnrollmentCourseID,
		JoiningDate:  m.EnrollmentJoiningDate,
		EndDate:      m.EnrollmentEndDate,
		Status:       string(m.EnrollmentStatus),
	}
}

type GormCourseCatalog struct {
	DB *gorm.DB
}

var _ FeeScheduleSource = (*GormCourseCatalog)(nil)

func (c *GormCourseCatalog) GetFeeSchedule(ctx context.Context, courseID uuid.UUID) (FeeSchedule, error) {
	var m courseModel.Course
	if err := c.DB.WithContext(ctx).
		First(&m, "course_id = ? AND course_deleted_at IS NULL", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FeeSchedule{}, errors.New("course not found")
		}
		return FeeSchedule{}, err
	}
	return FeeSchedule{
		BaseFee:        m.CourseFeeAmount,
		FeeFrequency:   string(m.CourseFeeFrequency),
		DurationMonths: m.CourseDurationMonths,
	}, nil
}
