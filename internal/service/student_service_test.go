package service

import (
	"context"
	"testing"

	"github.com/riyaziyyat/exam-backend/internal/config"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStudent() *model.Student {
	return &model.Student{
		Name:          "Leyla",
		Surname:       "Həsənova",
		Email:         "leyla.hasanova",
		Password:      "leyla123",
		Group:         "9A",
		Class:         "9a",
		ParentContact: "+994501112233",
		Status:        model.StudentActive,
	}
}

func TestStudentCreateThenGet(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil, nil)

	in := sampleStudent()
	require.NoError(t, env.students.Create(ctx, in))
	assert.NotEmpty(t, in.ID)

	got, err := env.students.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	withID := sampleStudent()
	withID.ID = "custom"
	require.NoError(t, env.students.Create(ctx, withID))
	got, err = env.students.GetByID(ctx, "custom")
	require.NoError(t, err)
	assert.Equal(t, withID, got)

	dup := sampleStudent()
	dup.ID = "custom"
	assert.ErrorIs(t, env.students.Create(ctx, dup), ErrConflict)
}

func TestStudentGetMissing(t *testing.T) {
	_, err := newTestEnv(t, nil, nil).students.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentUpdate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil, nil)

	in := sampleStudent()
	require.NoError(t, env.students.Create(ctx, in))

	changed := sampleStudent()
	changed.ID = "ignored"
	changed.Status = model.StudentDisabled
	require.NoError(t, env.students.Update(ctx, in.ID, changed))
	assert.Equal(t, in.ID, changed.ID)

	got, err := env.students.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StudentDisabled, got.Status)

	assert.ErrorIs(t, env.students.Update(ctx, "missing", sampleStudent()), ErrNotFound)
}

func TestStudentBcryptPasswordsAreHashedOnce(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.PasswordHashing = config.HashingBcrypt
	env := newTestEnv(t, cfg, nil)

	in := sampleStudent()
	require.NoError(t, env.students.Create(ctx, in))
	stored := in.Password
	assert.NotEqual(t, "leyla123", stored)

	// Sending the stored hash back keeps it.
	same := sampleStudent()
	same.Password = stored
	require.NoError(t, env.students.Update(ctx, in.ID, same))
	got, err := env.students.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, got.Password)

	res, err := env.auth.Login(ctx, "leyla.hasanova", "leyla123")
	require.NoError(t, err)
	assert.Equal(t, model.UserTypeStudent, res.UserType)
}

func TestStudentDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil, nil)

	in := sampleStudent()
	require.NoError(t, env.students.Create(ctx, in))
	require.NoError(t, env.students.Delete(ctx, in.ID))
	assert.ErrorIs(t, env.students.Delete(ctx, in.ID), ErrNotFound)

	list, err := env.students.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStudentUpgradePasswords(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil, nil)
	_, err := env.seed.Seed(ctx)
	require.NoError(t, err)

	m := BcryptMatcher{Cost: 4}
	n, err := env.students.UpgradePasswords(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := env.students.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.True(t, m.Matches(got.Password, "aynur123"))

	n, err = env.students.UpgradePasswords(ctx, m)
	require.NoError(t, err)
	assert.Zero(t, n, "already hashed passwords are left alone")
}
