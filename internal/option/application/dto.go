package application

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/optionpricing/internal/option/domain"
)

// OptionDTO 对外暴露的期权记录视图，expiry 渲染为 yyyy-mm-dd
type OptionDTO struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	FuturePrice  decimal.Decimal `json:"f"`
	StrikePrice  decimal.Decimal `json:"x"`
	Expiry       string          `json:"expiry"`
	RiskFreeRate decimal.Decimal `json:"r"`
	Volatility   decimal.Decimal `json:"v"`
	Maturity     float64         `json:"t"`
	PresentValue decimal.Decimal `json:"pv"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toOptionDTO(opt *domain.Option) *OptionDTO {
	return &OptionDTO{
		Name:         opt.Name,
		Type:         string(opt.Type),
		FuturePrice:  opt.FuturePrice,
		StrikePrice:  opt.StrikePrice,
		Expiry:       opt.Expiry.Format(domain.ExpiryLayout),
		RiskFreeRate: opt.RiskFreeRate,
		Volatility:   opt.Volatility,
		Maturity:     opt.Maturity,
		PresentValue: opt.PresentValue,
		CreatedAt:    opt.CreatedAt,
	}
}

func toOptionDTOs(opts []*domain.Option) []*OptionDTO {
	dtos := make([]*OptionDTO, 0, len(opts))
	for _, opt := range opts {
		dtos = append(dtos, toOptionDTO(opt))
	}
	return dtos
}
