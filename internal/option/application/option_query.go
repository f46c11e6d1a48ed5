package application

import (
	"context"

	"github.com/wyfcoding/optionpricing/internal/option/domain"
)

// OptionQueryService 处理期权记录的读操作（Queries）。
// 读路径不重新校验也不重新定价，返回创建时固定的现值。
type OptionQueryService struct {
	repo domain.OptionRepository
}

// NewOptionQueryService 构造函数
func NewOptionQueryService(repo domain.OptionRepository) *OptionQueryService {
	return &OptionQueryService{repo: repo}
}

// GetOption 按 name 读取单条记录，缺失时返回 domain.ErrOptionNotFound
func (q *OptionQueryService) GetOption(ctx context.Context, name string) (*OptionDTO, error) {
	opt, err := q.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return toOptionDTO(opt), nil
}

// ListOptions 返回全量记录快照，按 name 升序
func (q *OptionQueryService) ListOptions(ctx context.Context) ([]*OptionDTO, error) {
	opts, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOptionDTOs(opts), nil
}
