package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// dryRunDB 只生成 SQL, 不连接数据库
func dryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "root:root@tcp(localhost:13317)/zerosum",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)

	var sqls []string
	capture := func(db *gorm.DB) {
		sqls = append(sqls, db.Statement.SQL.String())
	}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	return db, &sqls
}

func TestGORMRunDAO_Insert(t *testing.T) {
	db, sqls := dryRunDB(t)
	dao := NewGORMRunDAO(db)

	err := dao.Insert(context.Background(), TripletRun{
		TaskName: "demo",
		Input:    "[-1,0,1,2,-1,-4]",
		Triplets: "[[-1,-1,2],[-1,0,1]]",
		Count:    2,
	})
	require.NoError(t, err)
	require.Len(t, *sqls, 1)
	assert.Contains(t, (*sqls)[0], "INSERT INTO `triplet_run`")
	assert.Contains(t, (*sqls)[0], "`task_name`")
	assert.Contains(t, (*sqls)[0], "`ctime`")
}

func TestGORMRunDAO_FindByTask(t *testing.T) {
	db, sqls := dryRunDB(t)
	dao := NewGORMRunDAO(db)

	runs, err := dao.FindByTask(context.Background(), "demo", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
	require.Len(t, *sqls, 1)
	assert.Contains(t, (*sqls)[0], "FROM `triplet_run`")
	assert.Contains(t, (*sqls)[0], "task_name = ?")
	assert.Contains(t, (*sqls)[0], "ORDER BY ctime DESC")
}

func TestGORMRunDAO_FindByTaskDefaultLimit(t *testing.T) {
	db, _ := dryRunDB(t)
	var explained []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:explain_query", func(db *gorm.DB) {
		explained = append(explained, db.Dialector.Explain(db.Statement.SQL.String(), db.Statement.Vars...))
	}))
	dao := NewGORMRunDAO(db)

	for _, limit := range []int{0, -1} {
		_, err := dao.FindByTask(context.Background(), "demo", limit)
		require.NoError(t, err)
	}
	require.Len(t, explained, 2)
	for _, sql := range explained {
		assert.Contains(t, sql, "LIMIT 20")
	}
}
