package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alehua/zerosum/internal/storage/dao"
)

type RunRepository struct {
	dao dao.RunDAO
}

func NewRunRepository(d dao.RunDAO) RunStorage {
	return &RunRepository{dao: d}
}

func (repo *RunRepository) Insert(ctx context.Context, r Run) error {
	entity, err := repo.toEntity(r)
	if err != nil {
		return err
	}
	return repo.dao.Insert(ctx, entity)
}

func (repo *RunRepository) ListByTask(ctx context.Context, name string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = dao.DefaultFindLimit
	}
	entities, err := repo.dao.FindByTask(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	runs := make([]Run, 0, len(entities))
	for _, e := range entities {
		r, err := repo.toDomain(e)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, nil
}

func (repo *RunRepository) toEntity(r Run) (dao.TripletRun, error) {
	input, err := json.Marshal(nonNil(r.Input))
	if err != nil {
		return dao.TripletRun{}, fmt.Errorf("序列化输入失败: %w", err)
	}
	triplets, err := json.Marshal(nonNil(r.Triplets))
	if err != nil {
		return dao.TripletRun{}, fmt.Errorf("序列化结果失败: %w", err)
	}
	var ctime int64
	if !r.Ctime.IsZero() {
		ctime = r.Ctime.UnixMilli()
	}
	return dao.TripletRun{
		Id:       r.Id,
		TaskName: r.TaskName,
		Input:    string(input),
		Triplets: string(triplets),
		Count:    len(r.Triplets),
		Elapsed:  r.Elapsed.Milliseconds(),
		Ctime:    ctime,
	}, nil
}

func (repo *RunRepository) toDomain(e dao.TripletRun) (Run, error) {
	r := Run{
		Id:       e.Id,
		TaskName: e.TaskName,
		Elapsed:  time.Duration(e.Elapsed) * time.Millisecond,
	}
	if e.Ctime != 0 {
		r.Ctime = time.UnixMilli(e.Ctime)
	}
	if err := json.Unmarshal([]byte(e.Input), &r.Input); err != nil {
		return Run{}, fmt.Errorf("运行记录 %d 输入解析失败: %w", e.Id, err)
	}
	if err := json.Unmarshal([]byte(e.Triplets), &r.Triplets); err != nil {
		return Run{}, fmt.Errorf("运行记录 %d 结果解析失败: %w", e.Id, err)
	}
	return r, nil
}

// nonNil 保证 nil 切片序列化成 [] 而不是 null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
