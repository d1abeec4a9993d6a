package services

import (
	"SWJTUCTF/models"
	"context"
	"sync"

	"github.com/google/uuid"
)

const mockBasePort = 30000

// MockLauncher 不创建真实容器，只分配地址和端口
type MockLauncher struct {
	mu       sync.Mutex
	host     string
	nextPort int
	flags    map[string]string
}

func NewMockLauncher(host string) *MockLauncher {
	return &MockLauncher{
		host:     host,
		nextPort: mockBasePort,
		flags:    make(map[string]string),
	}
}

func (l *MockLauncher) Launch(_ context.Context, _ models.Challenge, flag string) (LaunchResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextPort++
	handle := uuid.NewString()
	l.flags[handle] = flag
	return LaunchResult{IP: l.host, Port: l.nextPort, Handle: handle}, nil
}

func (l *MockLauncher) Destroy(_ context.Context, handle string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.flags, handle)
	return nil
}

// Flag 返回靶机注入的 Flag，靶机不存在时返回空串
func (l *MockLauncher) Flag(handle string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flags[handle]
}

// Running 当前存活的靶机数量
func (l *MockLauncher) Running() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.flags)
}
