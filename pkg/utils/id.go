package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 生成 32 位十六进制主键
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
