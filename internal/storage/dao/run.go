package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DefaultFindLimit limit 不是正数时使用
const DefaultFindLimit = 20

type RunDAO interface {
	// Insert 插入一条运行记录
	Insert(ctx context.Context, r TripletRun) error
	// FindByTask 按创建时间倒序查询某个任务的运行记录
	FindByTask(ctx context.Context, name string, limit int) ([]TripletRun, error)
}

type GORMRunDAO struct {
	db *gorm.DB
}

func NewGORMRunDAO(db *gorm.DB) RunDAO {
	return &GORMRunDAO{db: db}
}

func (dao *GORMRunDAO) Insert(ctx context.Context, r TripletRun) error {
	if r.Ctime == 0 {
		r.Ctime = time.Now().UnixMilli()
	}
	return dao.db.WithContext(ctx).Create(&r).Error
}

func (dao *GORMRunDAO) FindByTask(ctx context.Context, name string, limit int) ([]TripletRun, error) {
	if limit <= 0 {
		limit = DefaultFindLimit
	}
	var runs []TripletRun
	err := dao.db.WithContext(ctx).Model(&TripletRun{}).
		Where("task_name = ?", name).
		Order("ctime DESC").
		Limit(limit).
		Find(&runs).Error
	return runs, err
}

// InitTables 建表
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&TripletRun{})
}

// TripletRun 一次三数之和任务的运行记录
type TripletRun struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	TaskName string `gorm:"type:varchar(128);index"`
	// Input 和 Triplets 都是 JSON
	Input    string `gorm:"type:text"`
	Triplets string `gorm:"type:text"`
	Count    int
	Elapsed  int64 // 毫秒
	Ctime    int64 `gorm:"index"`
}
