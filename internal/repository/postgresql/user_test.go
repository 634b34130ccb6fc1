package postgresql_test

import (
	"context"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	mock_database "github.com/articurated/ordermanagement/internal/db/mocks"
	"github.com/articurated/ordermanagement/internal/repository/postgresql"
)

// fakeRow satisfies pgx.Row for the single-column password lookup.
type fakeRow struct {
	value string
	err   error
}

func (r *fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

func TestUserRepo_CreateUser(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewUserRepo(mockDB)

	mockDB.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Eq("ops"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
			// The stored value is a bcrypt hash, never the plain password.
			hashed := args[1].(string)
			assert.NotEqual(t, "secret", hashed)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret")))
			return pgconn.CommandTag("INSERT 0 1"), nil
		})

	require.NoError(t, repo.CreateUser(ctx, "ops", "secret"))
}

// fakeCountRow satisfies pgx.Row for the single-column count lookup.
type fakeCountRow struct {
	count int
	err   error
}

func (r *fakeCountRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.count
	return nil
}

func TestUserRepo_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the account on a fresh database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("admin")).
			Return(&fakeCountRow{count: 0})
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Eq("admin"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
				hashed := args[1].(string)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret")))
				return pgconn.CommandTag("INSERT 0 1"), nil
			})

		require.NoError(t, repo.EnsureAdmin(ctx, "admin", "secret"))
	})

	t.Run("existing account is left untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("admin")).
			Return(&fakeCountRow{count: 1})

		// No insert.
		require.NoError(t, repo.EnsureAdmin(ctx, "admin", "secret"))
	})

	t.Run("empty credentials are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := postgresql.NewUserRepo(mock_database.NewMockDB(ctrl))

		assert.Error(t, repo.EnsureAdmin(ctx, "admin", ""))
		assert.Error(t, repo.EnsureAdmin(ctx, "", "secret"))
	})
}

func TestUserRepo_ValidateUser(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("ops")).
			Return(&fakeRow{value: string(hashed)})

		valid, err := repo.ValidateUser(ctx, "ops", "secret")
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("ops")).
			Return(&fakeRow{value: string(hashed)})

		valid, err := repo.ValidateUser(ctx, "ops", "wrong")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("ghost")).
			Return(&fakeRow{err: assert.AnError})

		valid, err := repo.ValidateUser(ctx, "ghost", "secret")
		assert.Error(t, err)
		assert.False(t, valid)
	})
}
