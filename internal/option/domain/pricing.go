package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DaysPerYear ACT/365 日计数约定
const DaysPerYear = 365.0

// minDenominator v*sqrt(t) 小于该值视为数值退化
const minDenominator = 1e-12

// YearsToMaturity 按整数日历天数计算剩余年限 (expiry - now)/365，
// 结果保留 5 位小数，创建时计算一次后固定。
func YearsToMaturity(expiry, now time.Time) float64 {
	days := expiry.Sub(truncateToDate(now)).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Round(days/DaysPerYear*1e5) / 1e5
}

// PricingModel 定价模型接口
type PricingModel interface {
	Price(opt *Option) (decimal.Decimal, error)
	CallPut(opt *Option) (call, put float64, err error)
}

// Black76Model 基于 Black-76 闭式公式的期货期权定价模型。
// 纯计算，无 I/O，相同输入必得相同输出。
type Black76Model struct{}

// NewBlack76Model 创建定价模型
func NewBlack76Model() *Black76Model {
	return &Black76Model{}
}

// CallPut 同时返回看涨与看跌期权的现值（未舍入）。
//
//	d1 = (ln(f/x) + (v²/2)·t) / (v·√t)
//	d2 = d1 - v·√t
//	call = e^(-r·t) · (f·N(d1) - x·N(d2))
//	put  = e^(-r·t) · (x·N(-d2) - f·N(-d1))
//
// 校验层保证 t > 0，这里仍然防御性地拦截退化的 v·√t 分母，
// 返回 ErrComputationFailed 而不是让 NaN/Inf 外泄。
func (m *Black76Model) CallPut(opt *Option) (float64, float64, error) {
	f, _ := opt.FuturePrice.Float64()
	x, _ := opt.StrikePrice.Float64()
	r, _ := opt.RiskFreeRate.Float64()
	v, _ := opt.Volatility.Float64()
	t := opt.Maturity

	denom := v * math.Sqrt(t)
	if denom < minDenominator {
		return 0, 0, ErrComputationFailed
	}

	d1 := (math.Log(f/x) + (v*v/2)*t) / denom
	d2 := d1 - denom
	discount := math.Exp(-r * t)

	call := discount * (f*normCDF(d1) - x*normCDF(d2))
	put := discount * (x*normCDF(-d2) - f*normCDF(-d1))

	if !isFinite(call) || !isFinite(put) {
		return 0, 0, ErrComputationFailed
	}
	return call, put, nil
}

// Price 返回与期权类型匹配的现值，四舍五入到 2 位小数
func (m *Black76Model) Price(opt *Option) (decimal.Decimal, error) {
	call, put, err := m.CallPut(opt)
	if err != nil {
		return decimal.Decimal{}, err
	}

	switch opt.Type {
	case OptionTypeCall:
		return decimal.NewFromFloat(call).Round(2), nil
	case OptionTypePut:
		return decimal.NewFromFloat(put).Round(2), nil
	}
	return decimal.Decimal{}, ErrInvalidOptionType
}

func normCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
