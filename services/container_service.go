package services

import (
	"SWJTUCTF/models"
	"SWJTUCTF/stores"
	"SWJTUCTF/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var (
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrContainerBusy       = errors.New("container is already running or starting")
	ErrContainerNotRunning = errors.New("container is not running")
)

// DefaultContainerTTL 靶机默认存活时间
const DefaultContainerTTL = time.Hour

// LaunchResult 启动器返回的靶机连接信息
type LaunchResult struct {
	IP     string
	Port   int
	Handle string
}

// ContainerLauncher 负责真正创建和销毁靶机
type ContainerLauncher interface {
	Launch(ctx context.Context, challenge models.Challenge, flag string) (LaunchResult, error)
	Destroy(ctx context.Context, handle string) error
}

type ContainerService struct {
	store      *stores.ChallengeStore
	launcher   ContainerLauncher
	ttl        time.Duration
	flagPrefix string
	logger     *zap.Logger
	now        func() time.Time
}

func NewContainerService(store *stores.ChallengeStore, launcher ContainerLauncher, ttl time.Duration, flagPrefix string, logger *zap.Logger) *ContainerService {
	if ttl <= 0 {
		ttl = DefaultContainerTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContainerService{
		store:      store,
		launcher:   launcher,
		ttl:        ttl,
		flagPrefix: flagPrefix,
		logger:     logger,
		now:        time.Now,
	}
}

// Start 为 userID 启动题目的靶机，返回该用户视角下带连接信息的题目
func (s *ContainerService) Start(ctx context.Context, challengeID, userID int) (models.Challenge, error) {
	challenge, ok := s.store.BeginLaunch(challengeID, userID)
	if !ok {
		if _, exists := s.store.Get(challengeID, userID); !exists {
			return models.Challenge{}, ErrChallengeNotFound
		}
		return models.Challenge{}, ErrContainerBusy
	}

	flag := utils.GenerateDynamicFlag(s.flagPrefix)
	res, err := s.launcher.Launch(ctx, challenge, flag)
	if err != nil {
		s.store.AbortLaunch(challengeID, userID)
		s.logger.Error("launch container failed", zap.Int("challenge_id", challengeID), zap.Int("user_id", userID), zap.Error(err))
		return models.Challenge{}, fmt.Errorf("launch challenge %d: %w", challengeID, err)
	}

	if !s.store.CompleteLaunch(challengeID, userID, res.IP, res.Port, res.Handle, s.now().Add(s.ttl)) {
		// 启动期间状态被改变，回收刚创建的靶机
		s.destroy(ctx, challengeID, res.Handle)
		return models.Challenge{}, ErrContainerBusy
	}
	s.logger.Info("container started",
		zap.Int("challenge_id", challengeID),
		zap.Int("user_id", userID),
		zap.String("handle", res.Handle),
		zap.String("addr", fmt.Sprintf("%s:%d", res.IP, res.Port)),
	)

	started, _ := s.store.Get(challengeID, userID)
	return started, nil
}

// Stop 销毁 userID 在题目上的靶机，其他用户的靶机不受影响
func (s *ContainerService) Stop(ctx context.Context, challengeID, userID int) error {
	handle, ok := s.store.Release(challengeID, userID)
	if !ok {
		if _, exists := s.store.Get(challengeID, userID); !exists {
			return ErrChallengeNotFound
		}
		return ErrContainerNotRunning
	}
	s.destroy(ctx, challengeID, handle)
	s.logger.Info("container stopped", zap.Int("challenge_id", challengeID), zap.Int("user_id", userID))
	return nil
}

// ReapExpired 回收所有到期的靶机，返回回收数量
func (s *ContainerService) ReapExpired(ctx context.Context) int {
	reaped := 0
	for _, key := range s.store.Expired(s.now()) {
		handle, ok := s.store.Release(key.ChallengeID, key.UserID)
		if !ok {
			continue
		}
		s.destroy(ctx, key.ChallengeID, handle)
		reaped++
	}
	if reaped > 0 {
		s.logger.Info("reaped expired containers", zap.Int("count", reaped))
	}
	return reaped
}

// Run 周期性回收到期靶机，ctx 取消后返回
func (s *ContainerService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ReapExpired(ctx)
		}
	}
}

func (s *ContainerService) destroy(ctx context.Context, challengeID int, handle string) {
	// 种子数据中的靶机没有句柄
	if handle == "" {
		return
	}
	if err := s.launcher.Destroy(ctx, handle); err != nil {
		s.logger.Warn("destroy container failed",
			zap.Int("challenge_id", challengeID),
			zap.String("handle", handle),
			zap.Error(err),
		)
	}
}
