package domain

import "context"

// OptionRepository 期权记录仓储接口。
// 只提供新增与删除，不存在覆盖写：重复 name 的 Insert 必须返回
// ErrOptionExists 且不得改动已有记录。
type OptionRepository interface {
	Insert(ctx context.Context, opt *Option) error
	Get(ctx context.Context, name string) (*Option, error)
	List(ctx context.Context) ([]*Option, error)
	Delete(ctx context.Context, name string) error
}
