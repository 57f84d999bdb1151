package ioc

import (
	"github.com/alehua/zerosum/internal/pkg/logger"
	"github.com/alehua/zerosum/internal/storage/dao"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func InitDB(dsn string, l logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				SingularTable: true, // 使用单数表名
			},
		})
	if err != nil {
		return nil, err
	}
	if err = dao.InitTables(db); err != nil {
		return nil, err
	}
	l.Info("数据库初始化完成")
	return db, nil
}
