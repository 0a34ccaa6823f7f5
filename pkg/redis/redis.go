package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/chatscai10/employee-management-system-sub002/config"
)

// Client Redis 客戶端封裝
// 用於排班模組的操作鎖：同一員工月份的編輯工作階段、同一(分店,月份)的配額寫入。
// 排程核心本身不依賴此鎖，鎖只存在於服務邊界，用來消除 check-then-act 競態。
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 建立 Redis 連線並執行 Ping 健康檢查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 連線失敗: %w", err)
	}

	logger.Info("Redis 連線成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 排班操作鎖 ──

const (
	sessionLockPrefix = "scheduling:session:" // {employeeID}:{month}
	quotaLockPrefix   = "scheduling:quota:"   // {storeID}:{month}
)

// AcquireSessionLock 嘗試取得員工月份的工作階段鎖
// 回傳 false 表示其他編輯工作階段仍持有該鎖
func (c *Client) AcquireSessionLock(ctx context.Context, employeeID, month string, ttl time.Duration) (bool, error) {
	key := sessionLockPrefix + employeeID + ":" + month
	return c.rdb.SetNX(ctx, key, "1", ttl).Result()
}

// ReleaseSessionLock 釋放員工月份的工作階段鎖
func (c *Client) ReleaseSessionLock(ctx context.Context, employeeID, month string) error {
	key := sessionLockPrefix + employeeID + ":" + month
	return c.rdb.Del(ctx, key).Err()
}

// WithQuotaLock 以 (分店, 月份) 為鍵序列化配額檢查與寫入
// 自旋等待最多 waitFor；取不到鎖時回傳錯誤，由呼叫端決定重試策略
func (c *Client) WithQuotaLock(ctx context.Context, storeID, month string, ttl, waitFor time.Duration, fn func() error) error {
	key := quotaLockPrefix + storeID + ":" + month
	deadline := time.Now().Add(waitFor)

	for {
		ok, err := c.rdb.SetNX(ctx, key, "1", ttl).Result()
		if err != nil {
			return fmt.Errorf("取得配額鎖失敗: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("配額鎖等待逾時: %s", key)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	defer func() {
		if err := c.rdb.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warn("釋放配額鎖失敗", zap.String("key", key), zap.Error(err))
		}
	}()

	return fn()
}

// Close 關閉 Redis 連線
func (c *Client) Close() error {
	return c.rdb.Close()
}
