package dao

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mechanic_payroll/database"
	"mechanic_payroll/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "shop.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func TestAdminDAO(t *testing.T) {
	ctx := context.Background()
	admins := NewAdminDAO(setupDB(t))

	_, err := admins.GetByUsername(ctx, "sks_mechanics")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, admins.Create(ctx, &models.Admin{Username: "sks_mechanics", Password: "hash"}))

	found, err := admins.GetByUsername(ctx, "sks_mechanics")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.Password)

	// username is unique at the storage level
	err = admins.Create(ctx, &models.Admin{Username: "sks_mechanics", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicate)

	n, err := admins.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemberDAO(t *testing.T) {
	ctx := context.Background()
	members := NewMemberDAO(setupDB(t))

	alex := &models.Member{Name: "Alex", Role: "MECHANIC"}
	sam := &models.Member{Name: "Sam", Role: "trainee"}
	require.NoError(t, members.Create(ctx, alex))
	require.NoError(t, members.Create(ctx, sam))
	assert.NotZero(t, alex.ID)

	found, err := members.GetByID(ctx, alex.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex", found.Name)

	_, err = members.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := members.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	trainees, err := members.List(ctx, "TRAINEE")
	require.NoError(t, err)
	require.Len(t, trainees, 1)
	assert.Equal(t, "Sam", trainees[0].Name)

	// same plain case-insensitive match as the rate table: no trimming
	padded, err := members.List(ctx, " trainee ")
	require.NoError(t, err)
	assert.Empty(t, padded)
}

func TestEarningDAO(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	members := NewMemberDAO(db)
	earnings := NewEarningDAO(db)

	alex := &models.Member{Name: "Alex", Role: "MECHANIC"}
	require.NoError(t, members.Create(ctx, alex))

	total, err := earnings.TotalForMember(ctx, alex.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)

	require.NoError(t, earnings.Create(ctx, &models.Earning{MemberID: alex.ID, Amount: 100}))
	require.NoError(t, earnings.Create(ctx, &models.Earning{MemberID: alex.ID, Amount: 50}))

	total, err = earnings.TotalForMember(ctx, alex.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, total)

	err = earnings.Create(ctx, &models.Earning{MemberID: alex.ID + 100, Amount: 10})
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := earnings.ListForMember(ctx, alex.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 100.0, list[0].Amount)
	assert.Equal(t, 50.0, list[1].Amount)
}
