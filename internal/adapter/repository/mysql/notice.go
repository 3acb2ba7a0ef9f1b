package mysql

import (
	"context"

	"gorm.io/gorm"

	noticeDomain "grantflow-backend/internal/domain/notice"
)

type NoticeRepository struct{ db *gorm.DB }

func NewNoticeRepository(db *gorm.DB) *NoticeRepository { return &NoticeRepository{db: db} }

func (r *NoticeRepository) Create(ctx context.Context, n *noticeDomain.Notice) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NoticeRepository) GetByNoticeID(ctx context.Context, noticeID string) (*noticeDomain.Notice, error) {
	var out noticeDomain.Notice
	res := r.db.WithContext(ctx).Where("notice_id = ?", noticeID).First(&out)
	return &out, res.Error
}

func (r *NoticeRepository) Save(ctx context.Context, n *noticeDomain.Notice) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *NoticeRepository) ListTargetUnitIDs(ctx context.Context, noticeID uint64) ([]uint64, error) {
	var out []uint64
	res := r.db.WithContext(ctx).
		Model(&noticeDomain.Target{}).
		Where("notice_id = ?", noticeID).
		Pluck("org_unit_id", &out)
	return out, res.Error
}

func (r *NoticeRepository) AddTargets(ctx context.Context, noticeID uint64, orgUnitIDs []uint64) error {
	targets := make([]noticeDomain.Target, 0, len(orgUnitIDs))
	for _, unitID := range orgUnitIDs {
		targets = append(targets, noticeDomain.Target{NoticeID: noticeID, OrgUnitID: unitID})
	}
	return r.db.WithContext(ctx).Create(&targets).Error
}

func (r *NoticeRepository) RemoveTargets(ctx context.Context, noticeID uint64, orgUnitIDs []uint64) error {
	return r.db.WithContext(ctx).
		Where("notice_id = ? AND org_unit_id IN ?", noticeID, orgUnitIDs).
		Delete(&noticeDomain.Target{}).Error
}

func (r *NoticeRepository) ListTargetedAtUnits(ctx context.Context, orgUnitIDs []uint64) ([]noticeDomain.Notice, error) {
	if len(orgUnitIDs) == 0 {
		return nil, nil
	}
	var out []noticeDomain.Notice
	res := r.db.WithContext(ctx).
		Joins("JOIN notice_targets ON notice_targets.notice_id = notices.id").
		Where("notice_targets.org_unit_id IN ? AND notices.hidden = ?", orgUnitIDs, false).
		Distinct("notices.*").
		Find(&out)
	return out, res.Error
}

func (r *NoticeRepository) CreateForward(ctx context.Context, f *noticeDomain.Forward) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *NoticeRepository) ForwardExists(ctx context.Context, noticeID, orgUnitID uint64, userID string) (bool, error) {
	var count int64
	res := r.db.WithContext(ctx).
		Model(&noticeDomain.Forward{}).
		Where("notice_id = ? AND org_unit_id = ? AND user_id = ?", noticeID, orgUnitID, userID).
		Count(&count)
	return count > 0, res.Error
}

func (r *NoticeRepository) ListForwards(ctx context.Context, noticeID uint64) ([]noticeDomain.Forward, error) {
	var out []noticeDomain.Forward
	res := r.db.WithContext(ctx).
		Where("notice_id = ?", noticeID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

func (r *NoticeRepository) ListForwardedNoticeIDs(ctx context.Context, forwarderRole string, orgUnitIDs []uint64, userID string) ([]uint64, error) {
	q := r.db.WithContext(ctx).
		Model(&noticeDomain.Forward{}).
		Where("forwarder_role = ?", forwarderRole)
	if len(orgUnitIDs) > 0 {
		q = q.Where("org_unit_id IN ? OR user_id = ?", orgUnitIDs, userID)
	} else {
		q = q.Where("user_id = ?", userID)
	}
	var out []uint64
	res := q.Distinct().Pluck("notice_id", &out)
	return out, res.Error
}

func (r *NoticeRepository) GetByIDs(ctx context.Context, ids []uint64) ([]noticeDomain.Notice, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []noticeDomain.Notice
	res := r.db.WithContext(ctx).
		Where("id IN ? AND hidden = ?", ids, false).
		Find(&out)
	return out, res.Error
}
