package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrOptionExists        = errors.New("option already exists")
	ErrOptionNotFound      = errors.New("option not found")
	ErrMissingField        = errors.New("missing required field")
	ErrInvalidFormat       = errors.New("invalid field format")
	ErrInvalidExpiryFormat = errors.New("expiry must be in yyyy-mm-dd format")
	ErrInvalidOptionType   = errors.New("option type must be 'c' or 'p'")
	ErrFieldOutOfRange     = errors.New("field value out of range")
	ErrOptionExpired       = errors.New("option expiry must be in the future")
	ErrComputationFailed   = errors.New("present value computation failed")
)

// OptionType 期权类型
type OptionType string

const (
	OptionTypeCall OptionType = "c" // 看涨期权
	OptionTypePut  OptionType = "p" // 看跌期权
)

// ExpiryLayout 到期日的传输格式
const ExpiryLayout = "2006-01-02"

// Option 期权行情记录聚合根。
// 以外部提供的 name 作为唯一标识，Maturity 与 PresentValue
// 在创建时一次性计算并固定，之后不再变更。
type Option struct {
	Name         string          `json:"name"`
	Type         OptionType      `json:"type"`
	FuturePrice  decimal.Decimal `json:"f"`
	StrikePrice  decimal.Decimal `json:"x"`
	Expiry       time.Time       `json:"expiry"`
	RiskFreeRate decimal.Decimal `json:"r"`
	Volatility   decimal.Decimal `json:"v"`
	Maturity     float64         `json:"t"`
	PresentValue decimal.Decimal `json:"pv"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IsExpired 判断期权在给定评估时间是否已到期
func (o *Option) IsExpired(now time.Time) bool {
	return !o.Expiry.After(truncateToDate(now))
}

// FieldError 携带出错字段名的校验错误，支持 errors.Is 匹配底层错误类别。
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func newFieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

// truncateToDate 取 UTC 日期部分，丢弃时分秒
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
