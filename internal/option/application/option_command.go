package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wyfcoding/optionpricing/internal/option/domain"
)

// OptionCommandService 处理期权记录的写操作（Commands）。
// 写路径固定为 校验 → 定价 → 落库，记录在完整构造后才对读可见；
// 校验或定价失败直接终止，不产生任何状态变更，也不做内部重试。
type OptionCommandService struct {
	repo      domain.OptionRepository
	model     domain.PricingModel
	validator *domain.Validator
	logger    *slog.Logger
}

// NewOptionCommandService 构造函数
func NewOptionCommandService(repo domain.OptionRepository, model domain.PricingModel, validator *domain.Validator, logger *slog.Logger) *OptionCommandService {
	return &OptionCommandService{
		repo:      repo,
		model:     model,
		validator: validator,
		logger:    logger,
	}
}

// CreateOption 校验原始行情数据，计算现值并写入仓储。
// name 由调用方在路径中给出，核心不解析其结构；重复的 name 返回
// domain.ErrOptionExists，已有记录保持原样。
func (s *OptionCommandService) CreateOption(ctx context.Context, name string, raw domain.RawOption) (*OptionDTO, error) {
	now := time.Now()

	opt, err := s.validator.Validate(raw, now)
	if err != nil {
		return nil, err
	}
	opt.Name = name

	pv, err := s.model.Price(opt)
	if err != nil {
		return nil, fmt.Errorf("failed to price option %s: %w", name, err)
	}
	opt.PresentValue = pv
	opt.CreatedAt = now

	if err := s.repo.Insert(ctx, opt); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "option created",
		"name", name, "type", opt.Type, "t", opt.Maturity, "pv", pv.String())
	return toOptionDTO(opt), nil
}

// DeleteOption 删除指定期权记录，缺失时返回 domain.ErrOptionNotFound
func (s *OptionCommandService) DeleteOption(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "option deleted", "name", name)
	return nil
}
