package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/wyfcoding/optionpricing/internal/option/domain"
)

// OptionRepository domain.OptionRepository 的进程内实现。
// 单把读写锁保证 Insert/Delete 对同一键的串行化；
// 读写两个方向都做拷贝，外部持有的指针不会污染存量数据。
type OptionRepository struct {
	mu      sync.RWMutex
	options map[string]*domain.Option
}

// NewOptionRepository 创建内存仓储
func NewOptionRepository() *OptionRepository {
	return &OptionRepository{
		options: make(map[string]*domain.Option),
	}
}

// Insert 原子写入新记录，键已存在时返回 ErrOptionExists
func (r *OptionRepository) Insert(_ context.Context, opt *domain.Option) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.options[opt.Name]; exists {
		return domain.ErrOptionExists
	}

	stored := *opt
	r.options[opt.Name] = &stored
	return nil
}

// Get 按键读取，缺失时返回 ErrOptionNotFound
func (r *OptionRepository) Get(_ context.Context, name string) (*domain.Option, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	opt, exists := r.options[name]
	if !exists {
		return nil, domain.ErrOptionNotFound
	}

	found := *opt
	return &found, nil
}

// List 返回调用时刻的全量快照，按 name 升序
func (r *OptionRepository) List(_ context.Context) ([]*domain.Option, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Option, 0, len(r.options))
	for _, opt := range r.options {
		found := *opt
		result = append(result, &found)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Delete 按键删除，缺失时返回 ErrOptionNotFound 且不改动存量
func (r *OptionRepository) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.options[name]; !exists {
		return domain.ErrOptionNotFound
	}

	delete(r.options, name)
	return nil
}
