package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func referenceOption(optType OptionType) *Option {
	return &Option{
		Name:         "BB-JAN24-C-100",
		Type:         optType,
		FuturePrice:  decimal.NewFromFloat(2006),
		StrikePrice:  decimal.NewFromFloat(2100),
		RiskFreeRate: decimal.NewFromFloat(0.051342),
		Volatility:   decimal.NewFromFloat(0.35),
		Maturity:     1.0,
	}
}

func TestBlack76Model_PutGoldenValue(t *testing.T) {
	// Regression anchor: f=2006, x=2100, r=0.051342, v=0.35, t=1.0
	model := NewBlack76Model()

	pv, err := model.Price(referenceOption(OptionTypePut))
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if got := pv.String(); got != "317.87" {
		t.Errorf("put present value = %s, want 317.87", got)
	}
}

func TestBlack76Model_CallGoldenValue(t *testing.T) {
	model := NewBlack76Model()

	pv, err := model.Price(referenceOption(OptionTypeCall))
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if got := pv.String(); got != "228.57" {
		t.Errorf("call present value = %s, want 228.57", got)
	}
}

func TestBlack76Model_PutCallParity(t *testing.T) {
	// call - put must equal e^(-rt)*(f-x) for any valid input
	model := NewBlack76Model()
	opt := referenceOption(OptionTypeCall)

	call, put, err := model.CallPut(opt)
	if err != nil {
		t.Fatalf("CallPut failed: %v", err)
	}

	f, _ := opt.FuturePrice.Float64()
	x, _ := opt.StrikePrice.Float64()
	r, _ := opt.RiskFreeRate.Float64()
	want := math.Exp(-r*opt.Maturity) * (f - x)

	if diff := math.Abs((call - put) - want); diff > 1e-9 {
		t.Errorf("put-call parity violated: call-put=%f, want %f", call-put, want)
	}
}

func TestBlack76Model_DeterministicPrice(t *testing.T) {
	model := NewBlack76Model()

	first, err := model.Price(referenceOption(OptionTypePut))
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	second, err := model.Price(referenceOption(OptionTypePut))
	if err != nil {
		t.Fatalf("Price failed: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("pricing is not deterministic: %s vs %s", first, second)
	}
}

func TestBlack76Model_DegenerateDenominator(t *testing.T) {
	model := NewBlack76Model()

	opt := referenceOption(OptionTypeCall)
	opt.Maturity = 0 // v*sqrt(t) collapses to zero

	if _, err := model.Price(opt); !errors.Is(err, ErrComputationFailed) {
		t.Errorf("expected ErrComputationFailed, got %v", err)
	}

	opt = referenceOption(OptionTypePut)
	opt.Volatility = decimal.NewFromFloat(1e-13)

	if _, _, err := model.CallPut(opt); !errors.Is(err, ErrComputationFailed) {
		t.Errorf("expected ErrComputationFailed for near-zero volatility, got %v", err)
	}
}

func TestYearsToMaturity(t *testing.T) {
	now := time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name   string
		expiry time.Time
		want   float64
	}{
		{"one year out", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), 1.0},
		{"one day out", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), 0.00274},
		{"half year out", time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC), 0.49863},
		{"past clamps to zero", time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tc := range cases {
		if got := YearsToMaturity(tc.expiry, now); got != tc.want {
			t.Errorf("%s: YearsToMaturity = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestYearsToMaturity_IgnoresTimeOfDay(t *testing.T) {
	expiry := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	morning := time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)

	if a, b := YearsToMaturity(expiry, morning), YearsToMaturity(expiry, evening); a != b {
		t.Errorf("maturity depends on time of day: %v vs %v", a, b)
	}
}
