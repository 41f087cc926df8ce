package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mechanic_payroll/database"
	"mechanic_payroll/models"
	"mechanic_payroll/services"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInitAdminAndSalaryCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shop.db")
	t.Setenv("DATABASE_URL", dbPath)
	t.Setenv("ADMIN_PASSWORD", "sks@1188")
	t.Setenv("LOG_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("REQUIRE_AUTH", "")
	t.Setenv("TOKEN_EXPIRY", "")

	out, err := run(t, "init-admin")
	require.NoError(t, err)
	assert.Contains(t, out, "Admin created")

	out, err = run(t, "init-admin")
	require.NoError(t, err)
	assert.Contains(t, out, "Admin already exists")

	db, err := database.Open(dbPath, zap.NewNop())
	require.NoError(t, err)
	alex := models.Member{Name: "Alex", Role: "MECHANIC"}
	require.NoError(t, db.Create(&alex).Error)
	require.NoError(t, db.Create(&models.Earning{MemberID: alex.ID, Amount: 100}).Error)
	require.NoError(t, db.Create(&models.Earning{MemberID: alex.ID, Amount: 50}).Error)
	require.NoError(t, database.Close(db))

	out, err = run(t, "salary", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "member:       Alex")
	assert.Contains(t, out, "total_earned: 150")
	assert.Contains(t, out, "salary:       60")

	_, err = run(t, "salary", "2")
	assert.ErrorIs(t, err, services.ErrMemberNotFound)

	_, err = run(t, "salary", "abc")
	assert.Error(t, err)
}

func TestInitAdminRequiresPassword(t *testing.T) {
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "shop.db"))
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("REQUIRE_AUTH", "")
	t.Setenv("TOKEN_EXPIRY", "")

	_, err := run(t, "init-admin")
	assert.Error(t, err)
}
