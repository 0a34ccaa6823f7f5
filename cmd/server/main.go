package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/chatscai10/employee-management-system-sub002/config"
	"github.com/chatscai10/employee-management-system-sub002/internal/api/handler"
	"github.com/chatscai10/employee-management-system-sub002/internal/api/router"
	"github.com/chatscai10/employee-management-system-sub002/internal/repository"
	"github.com/chatscai10/employee-management-system-sub002/internal/service"
	"github.com/chatscai10/employee-management-system-sub002/pkg/database"
	applogger "github.com/chatscai10/employee-management-system-sub002/pkg/logger"
	"github.com/chatscai10/employee-management-system-sub002/pkg/redis"
)

func main() {
	// 1. 載入設定
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "載入設定失敗: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日誌
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日誌失敗: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("應用啟動中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 連接資料庫
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("資料庫連線失敗", zap.Error(err))
	}
	logger.Info("資料庫連線成功")

	// 3.1 執行資料庫遷移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("取得底層 sql.DB 失敗", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("資料庫遷移失敗", zap.Error(err))
	}

	// 4. 連接 Redis（選用：連線失敗時降級運行，排班鎖改靠資料庫檢查）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 連線失敗，排班工作階段鎖降級為資料庫檢查", zap.Error(err))
		rdb = nil
	}

	// 5. 依賴注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, rdb, logger)
	h := handler.NewHandler(svc)

	// 6. 初始化路由
	engine := router.Setup(cfg, h, logger)

	// 7. 啟動 HTTP 伺服器（優雅關閉）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 伺服器已啟動", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 伺服器異常", zap.Error(err))
		}
	}()

	// 8. 監聽系統訊號，優雅關閉
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到關閉訊號，開始優雅關閉...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("伺服器關閉異常", zap.Error(err))
	}

	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("伺服器已關閉")
}
