package database

import (
	"SWJTUCTF/models"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect 连接 MySQL 并配置连接池
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// 避免 MySQL wait_timeout 断开空闲连接
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// MigrateTables 创建种子数据所需的表
func MigrateTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Contest{},
		&models.Team{},
		&models.TeamMemberRecord{},
		&models.Challenge{},
		&models.User{},
	)
	if err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}
	return nil
}

// Close 关闭底层连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
