package author

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	apperrors "github.com/xiebiao/bookadmin/pkg/errors"
	"github.com/xiebiao/bookadmin/pkg/metrics"
	"github.com/xiebiao/bookadmin/pkg/mq"
)

// stubBookCounter 图书计数桩
type stubBookCounter struct {
	count int64
	err   error
}

func (c *stubBookCounter) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return c.count, c.err
}

func TestDeleteAuthorBookGuard(t *testing.T) {
	metrics.InitMetrics()
	ctx := context.Background()

	t.Run("名下有图书时拒绝删除并告知数量", func(t *testing.T) {
		svc := &recordingAuthorService{}
		uc := NewDeleteAuthorUseCase(svc, &stubBookCounter{count: 3}, mq.NopPublisher{}, logger.NewNop())

		err := uc.Execute(ctx, 1)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeAuthorHasBooks, appErr.Code)
		assert.Contains(t, appErr.Message, "3")
		// 预检拦下后不触碰存储
		assert.Zero(t, svc.deleteCalls)
	})

	t.Run("名下无图书时正常删除", func(t *testing.T) {
		svc := &recordingAuthorService{}
		uc := NewDeleteAuthorUseCase(svc, &stubBookCounter{count: 0}, mq.NopPublisher{}, logger.NewNop())

		require.NoError(t, uc.Execute(ctx, 1))
		assert.Equal(t, 1, svc.deleteCalls)
	})

	t.Run("计数失败时降级为外键兜底继续删除", func(t *testing.T) {
		svc := &recordingAuthorService{}
		counter := &stubBookCounter{err: assert.AnError}
		uc := NewDeleteAuthorUseCase(svc, counter, mq.NopPublisher{}, logger.NewNop())

		require.NoError(t, uc.Execute(ctx, 1))
		assert.Equal(t, 1, svc.deleteCalls)
	})
}
