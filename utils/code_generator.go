package utils

import (
	"fmt"
	"github.com/google/uuid"
	"math/rand"
	"strings"
	"time"
)

// InviteCodeCharset 排除容易混淆的字符：0, O, I, 1
const InviteCodeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	inviteCodeLength      = 12
	inviteCodeGroup       = 4
	maxInviteCodeAttempts = 100
)

// NewRand 返回以当前时间为种子的随机源，非并发安全，由调用方加锁
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateInviteCode 生成一个 XXXX-XXXX-XXXX 格式的候选邀请码
func GenerateInviteCode(r *rand.Rand) string {
	var sb strings.Builder
	sb.Grow(inviteCodeLength + inviteCodeLength/inviteCodeGroup - 1)
	for i := 0; i < inviteCodeLength; i++ {
		if i > 0 && i%inviteCodeGroup == 0 {
			sb.WriteByte('-')
		}
		sb.WriteByte(InviteCodeCharset[r.Intn(len(InviteCodeCharset))])
	}
	return sb.String()
}

// GenerateUniqueInviteCode 生成与 exists 不冲突的邀请码。
// 连续 100 次冲突后追加 3 位数字后缀，后缀同样校验，最多再试 100 次
func GenerateUniqueInviteCode(r *rand.Rand, exists func(code string) bool) string {
	var code string
	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		code = GenerateInviteCode(r)
		if !exists(code) {
			return code
		}
	}

	base := code
	for attempt := 0; attempt < maxInviteCodeAttempts; attempt++ {
		code = fmt.Sprintf("%s-%03d", base, r.Intn(1000))
		if !exists(code) {
			return code
		}
	}
	return code
}

// GenerateDynamicFlag 生成动态 Flag
func GenerateDynamicFlag(prefix string) string {
	part1 := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	part2 := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	part3 := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	return fmt.Sprintf("%s{%s-%s-%s}", prefix, part1, part2, part3)
}
