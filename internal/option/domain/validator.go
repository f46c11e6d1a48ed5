package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// RawOption 未经校验的原始请求体，string 键对应 JSON 字段
type RawOption map[string]any

// requiredFields 六个必填字段，缺失时按此顺序报告第一个
var requiredFields = []string{"type", "f", "x", "expiry", "r", "v"}

// Validator 负责把原始请求体转换为满足全部约束的 Option。
// 校验分四个阶段，顺序固定：字段齐全 → 类型格式 → 取值范围 → 到期日有效性，
// 第一个失败的检查决定返回的错误类别。校验无状态、无副作用，失败时不产生部分结果。
type Validator struct{}

// NewValidator 创建校验器
func NewValidator() *Validator {
	return &Validator{}
}

// Validate 校验原始记录并返回类型化的 Option，now 为评估时间。
// 返回的 Option 已包含按 ACT/365 计算的剩余年限，但 Name、PresentValue
// 与 CreatedAt 由调用方在定价与落库时填充。
func (v *Validator) Validate(raw RawOption, now time.Time) (*Option, error) {
	// 1. 字段齐全
	for _, field := range requiredFields {
		if val, ok := raw[field]; !ok || val == nil {
			return nil, newFieldError(field, ErrMissingField)
		}
	}

	// 2. 类型与格式
	optType, err := parseOptionType(raw["type"])
	if err != nil {
		return nil, err
	}

	futurePrice, err := parseNumeric("f", raw["f"])
	if err != nil {
		return nil, err
	}
	strikePrice, err := parseNumeric("x", raw["x"])
	if err != nil {
		return nil, err
	}
	rate, err := parseNumeric("r", raw["r"])
	if err != nil {
		return nil, err
	}
	volatility, err := parseNumeric("v", raw["v"])
	if err != nil {
		return nil, err
	}

	expiry, err := parseExpiry(raw["expiry"])
	if err != nil {
		return nil, err
	}

	// 3. 取值范围：价格与波动率严格为正，利率非负
	if futurePrice <= 0 {
		return nil, newFieldError("f", ErrFieldOutOfRange)
	}
	if strikePrice <= 0 {
		return nil, newFieldError("x", ErrFieldOutOfRange)
	}
	if volatility <= 0 {
		return nil, newFieldError("v", ErrFieldOutOfRange)
	}
	if rate < 0 {
		return nil, newFieldError("r", ErrFieldOutOfRange)
	}

	// 4. 到期日必须严格晚于评估日
	if !expiry.After(truncateToDate(now)) {
		return nil, ErrOptionExpired
	}

	return &Option{
		Type:         optType,
		FuturePrice:  decimal.NewFromFloat(futurePrice),
		StrikePrice:  decimal.NewFromFloat(strikePrice),
		Expiry:       expiry,
		RiskFreeRate: decimal.NewFromFloat(rate),
		Volatility:   decimal.NewFromFloat(volatility),
		Maturity:     YearsToMaturity(expiry, now),
	}, nil
}

// parseOptionType 仅接受小写的 "c" 或 "p"
func parseOptionType(val any) (OptionType, error) {
	s, ok := val.(string)
	if !ok {
		return "", ErrInvalidOptionType
	}
	switch OptionType(s) {
	case OptionTypeCall:
		return OptionTypeCall, nil
	case OptionTypePut:
		return OptionTypePut, nil
	}
	return "", ErrInvalidOptionType
}

// parseNumeric 接受 JSON 数值或数值字符串，拒绝非有限值
func parseNumeric(field string, val any) (float64, error) {
	var f float64
	switch n := val.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, newFieldError(field, ErrInvalidFormat)
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, newFieldError(field, ErrInvalidFormat)
		}
		f = parsed
	default:
		return 0, newFieldError(field, ErrInvalidFormat)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, newFieldError(field, ErrInvalidFormat)
	}
	return f, nil
}

// parseExpiry 解析 yyyy-mm-dd 格式的到期日
func parseExpiry(val any) (time.Time, error) {
	s, ok := val.(string)
	if !ok {
		return time.Time{}, ErrInvalidExpiryFormat
	}
	expiry, err := time.ParseInLocation(ExpiryLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidExpiryFormat
	}
	return expiry, nil
}
