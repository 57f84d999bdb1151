package ioc

import (
	"github.com/alehua/zerosum/internal/config"
	"github.com/alehua/zerosum/internal/pkg/logger"
	"go.uber.org/zap"
)

func InitLogger(cfg config.LogConfig) (logger.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = level
	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return logger.NewZapLogger(l), nil
}
