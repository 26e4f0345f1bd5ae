package dedupe

import (
	"fmt"
	"sync"
)

// 缓存容量上限：超出后整体清空而不是部分淘汰。
// 高基数场景下旧标签的计数会被遗忘，这是换取O(1)有界内存的取舍。
const defaultCapacity = 5000

// Cache 有界的标签去重缓存：标签 → 出现次数。
// 读改写整体持锁，保证并发调用时计数序列严格递增。
type Cache struct {
	mu       sync.Mutex
	counts   map[string]int
	capacity int
	resets   int64
}

// New 创建默认容量的去重缓存
func New() *Cache {
	return NewWithCapacity(defaultCapacity)
}

// NewWithCapacity 创建指定容量的去重缓存，容量非正时使用默认值
func NewWithCapacity(capacity int) *Cache {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Cache{counts: make(map[string]int), capacity: capacity}
}

// Apply 记录一次标签出现。首次出现原样返回，
// 重复出现追加"(N)"序号。容量溢出时整体清空，
// 仅保留当前标签已计算出的计数。
func (c *Cache) Apply(label string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.counts[label] + 1
	c.counts[label] = n
	if len(c.counts) > c.capacity {
		c.counts = make(map[string]int)
		c.counts[label] = n
		c.resets++
	}
	if n > 1 {
		return fmt.Sprintf("%s (%d)", label, n)
	}
	return label
}

// Len 返回当前缓存的标签数量
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.counts)
}

// Resets 返回整体清空的累计次数
func (c *Cache) Resets() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resets
}
