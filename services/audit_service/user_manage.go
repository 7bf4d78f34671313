package audit_service

import (
	"errors"
	"time"

	"aigc-audit-admin/db"
	"aigc-audit-admin/model/audit_model"

	"gorm.io/gorm"
)

type UserManageService struct{}

var userManageViolation = &ViolationService{}

// markUserStatus 更新用户状态，用户不存在时创建占位记录
// 用户账号本身由外部系统维护，这里只维护封禁状态位
func (s *UserManageService) markUserStatus(userID string, status int) error {
	now := time.Now()
	var user audit_model.AppUser
	err := db.Dao.Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = audit_model.AppUser{
			ID:         userID,
			Status:     status,
			CreateTime: now,
			UpdateTime: now,
		}
		return db.Dao.Create(&user).Error
	}
	if err != nil {
		return err
	}

	user.Status = status
	user.UpdateTime = now
	return db.Dao.Save(&user).Error
}

// DisableUser 封禁用户并记录违规
func (s *UserManageService) DisableUser(userID, reason, operator string) error {
	if err := s.markUserStatus(userID, audit_model.UserStatusDisabled); err != nil {
		return err
	}
	_, err := userManageViolation.Record(userID, reason, audit_model.ViolationTypeRepeated, "账号已封禁", operator)
	return err
}

// EnableUser 申诉审核通过后解封用户
// 解封动作沿用 ViolationTypeUserReport 记入台账，与历史数据保持一致
func (s *UserManageService) EnableUser(userID, reason, operator string) error {
	if err := s.markUserStatus(userID, audit_model.UserStatusNormal); err != nil {
		return err
	}
	_, err := userManageViolation.Record(userID, reason, audit_model.ViolationTypeUserReport, "账号已解封", operator)
	return err
}

// GetUserStatus 查询用户状态，无记录视为正常
func (s *UserManageService) GetUserStatus(userID string) (int, error) {
	var user audit_model.AppUser
	err := db.Dao.Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return audit_model.UserStatusNormal, nil
	}
	if err != nil {
		return 0, err
	}
	return user.Status, nil
}
