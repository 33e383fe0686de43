package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookadmin/internal/domain/user"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
)

// fakeUserRepo 内存用户仓储（种子测试用）
type fakeUserRepo struct {
	users  map[uint]*user.User
	roles  map[string]bool
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[uint]*user.User),
		roles:  make(map[string]bool),
		nextID: 1,
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, exist := range r.users {
		if exist.Email == u.Email {
			return user.ErrEmailDuplicate
		}
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) AddToRole(ctx context.Context, userID uint, roleName string) error {
	if !r.roles[roleName] {
		return user.ErrRoleNotFound
	}
	u, ok := r.users[userID]
	if !ok {
		return user.ErrUserNotFound
	}
	u.AddRole(roleName)
	return nil
}

func (r *fakeUserRepo) RoleExists(ctx context.Context, name string) (bool, error) {
	return r.roles[name], nil
}

func (r *fakeUserRepo) CreateRole(ctx context.Context, name string) error {
	r.roles[name] = true
	return nil
}

// passthroughTx 直通事务实现（测试用）
type passthroughTx struct{}

func (passthroughTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestSeeder(repo *fakeUserRepo) *Seeder {
	svc := user.NewService(repo)
	return NewSeeder(svc, repo, passthroughTx{}, logger.NewNop())
}

func TestSeederRun(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	seeder := newTestSeeder(repo)

	seeder.Run(ctx)

	t.Run("预置全部角色", func(t *testing.T) {
		for _, role := range []string{
			user.RoleAdministrator, user.RoleStaff, user.RoleHelpdesk1, user.RoleCustomer,
		} {
			exists, err := repo.RoleExists(ctx, role)
			require.NoError(t, err)
			assert.True(t, exists, "role=%s", role)
		}
	})

	t.Run("预置演示账号与角色", func(t *testing.T) {
		admin, err := repo.FindByEmail(ctx, "admin@bookstore.co.nz")
		require.NoError(t, err)
		assert.True(t, admin.HasRole(user.RoleAdministrator))
		assert.False(t, admin.HasRole(user.RoleCustomer))

		flic, err := repo.FindByEmail(ctx, "flic@felicitywinter.com")
		require.NoError(t, err)
		assert.True(t, flic.HasRole(user.RoleCustomer))
		assert.True(t, flic.HasRole(user.RoleAdministrator))

		sommers, err := repo.FindByEmail(ctx, "felicity.sommers@gmail.com")
		require.NoError(t, err)
		assert.Equal(t, []string{user.RoleCustomer}, sommers.Roles)
	})

	t.Run("预置的密码可用于登录", func(t *testing.T) {
		svc := user.NewService(repo)
		u, err := svc.Login(ctx, "admin@bookstore.co.nz", demoPassword)
		require.NoError(t, err)
		assert.Equal(t, "admin@bookstore.co.nz", u.Email)
	})
}

func TestSeederIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	seeder := newTestSeeder(repo)

	seeder.Run(ctx)

	// 记录首轮状态
	userCount := len(repo.users)
	admin, err := repo.FindByEmail(ctx, "admin@bookstore.co.nz")
	require.NoError(t, err)
	firstHash := admin.Password
	firstRoles := admin.Roles

	// 再跑一轮:不新增用户、不重置密码、不重复角色
	seeder.Run(ctx)

	assert.Equal(t, userCount, len(repo.users))

	admin, err = repo.FindByEmail(ctx, "admin@bookstore.co.nz")
	require.NoError(t, err)
	assert.Equal(t, firstHash, admin.Password)
	assert.Equal(t, firstRoles, admin.Roles)
}

func TestSeederBackfillsMissingRoles(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	seeder := newTestSeeder(repo)

	// 预先存在一个只有Customer角色的flic账号
	for _, role := range []string{user.RoleCustomer, user.RoleAdministrator} {
		require.NoError(t, repo.CreateRole(ctx, role))
	}
	u := user.NewUser("flic@felicitywinter.com", "some-hash", "Felicity", "Winter")
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.AddToRole(ctx, u.ID, user.RoleCustomer))

	seeder.Run(ctx)

	// 补齐了缺失的Administrator角色,但没有重置密码
	got, err := repo.FindByEmail(ctx, "flic@felicitywinter.com")
	require.NoError(t, err)
	assert.True(t, got.HasRole(user.RoleAdministrator))
	assert.Equal(t, "some-hash", got.Password)
}
