package stores

import (
	"SWJTUCTF/models"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var ErrUserExists = errors.New("username or email already registered")

type UserStore struct {
	mu         sync.RWMutex
	users      []models.User
	bcryptCost int
}

func NewUserStore(bcryptCost int) *UserStore {
	return &UserStore{bcryptCost: bcryptCost}
}

// Add 添加用户并哈希密码。user.ID 为 0 时自动分配
func (s *UserStore) Add(user models.User, password string) (models.User, error) {
	if err := user.SetPassword(password, s.bcryptCost); err != nil {
		return models.User{}, fmt.Errorf("hash password for %s: %w", user.Username, err)
	}
	return s.Put(user)
}

// Put 保存已带有密码哈希的用户，用于从数据库加载
func (s *UserStore) Put(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	highest := 0
	for _, u := range s.users {
		if strings.EqualFold(u.Username, user.Username) || strings.EqualFold(u.Email, user.Email) || (user.ID != 0 && u.ID == user.ID) {
			return models.User{}, ErrUserExists
		}
		if u.ID > highest {
			highest = u.ID
		}
	}
	if user.ID == 0 {
		user.ID = highest + 1
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	s.users = append(s.users, user)
	return user, nil
}

// Authenticate 使用用户名或邮箱登录
func (s *UserStore) Authenticate(login, password string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, login) || strings.EqualFold(u.Email, login) {
			if u.CheckPassword(password) {
				return u, true
			}
			return models.User{}, false
		}
	}
	return models.User{}, false
}

func (s *UserStore) Get(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *UserStore) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}
