package service

import (
	"context"
	"testing"

	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupCreateAndList(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil, nil)

	for _, name := range []string{"9A", "10B"} {
		require.NoError(t, env.groups.Create(ctx, &model.Group{Name: name}))
	}
	assert.ErrorIs(t, env.groups.Create(ctx, &model.Group{Name: "9A"}), ErrConflict)

	names, err := env.groups.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"9A", "10B"}, names)

	g, err := env.groups.GetByName(ctx, "10B")
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)

	_, err = env.groups.GetByName(ctx, "11S")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGroupDelete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		students int
		group    string
		wantErr  error
	}{
		{name: "no students", students: 0, group: "9A"},
		{name: "one student", students: 1, group: "9A", wantErr: ErrHasDependents},
		{name: "several students", students: 3, group: "9A", wantErr: ErrHasDependents},
		{name: "unknown group", group: "12Z", wantErr: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil, nil)
			require.NoError(t, env.groups.Create(ctx, &model.Group{Name: "9A"}))
			for i := 0; i < tt.students; i++ {
				require.NoError(t, env.students.Create(ctx, sampleStudent()))
			}

			err := env.groups.Delete(ctx, tt.group)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			names, err := env.groups.ListNames(ctx)
			require.NoError(t, err)
			assert.Empty(t, names)
		})
	}
}

func TestGroupRename(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil, nil)

	require.NoError(t, env.groups.Create(ctx, &model.Group{Name: "9A"}))
	require.NoError(t, env.groups.Create(ctx, &model.Group{Name: "10B"}))
	original, err := env.groups.GetByName(ctx, "10B")
	require.NoError(t, err)

	require.NoError(t, env.groups.Rename(ctx, "10B", &model.Group{Name: "10C"}))
	renamed, err := env.groups.GetByName(ctx, "10C")
	require.NoError(t, err)
	assert.Equal(t, original.ID, renamed.ID)

	assert.ErrorIs(t, env.groups.Rename(ctx, "10C", &model.Group{Name: "9A"}), ErrConflict)
	assert.ErrorIs(t, env.groups.Rename(ctx, "missing", &model.Group{Name: "x"}), ErrNotFound)

	// 9A has a student now, so it keeps its name.
	require.NoError(t, env.students.Create(ctx, sampleStudent()))
	assert.ErrorIs(t, env.groups.Rename(ctx, "9A", &model.Group{Name: "9B"}), ErrHasDependents)
	assert.NoError(t, env.groups.Rename(ctx, "9A", &model.Group{Name: "9A"}))
}
