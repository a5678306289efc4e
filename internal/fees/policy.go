// Package fees computes platform fees for contracts and success-based
// engagements. Everything here is pure and deterministic.
package fees

import (
	"math"

	"cfomatch/internal/domain"
)

const (
	// BasePercent of rate*durationMonths is charged once at contract formation.
	BasePercent = 5
	// RecurringPercent of rate is charged per billing period while active.
	RecurringPercent = 3

	MinExitRate = 0.05
	MaxExitRate = 0.10

	financingPercent = 3
	financingFloor   = 100_000
	grantPercent     = 5
	grantFloor       = 50_000
	placementPercent = 20
	placementFloor   = 500_000
	exitFloor        = 1_000_000
)

type SuccessKind string

const (
	SuccessFinancing SuccessKind = "financing"
	SuccessGrant     SuccessKind = "grant"
	SuccessPlacement SuccessKind = "placement"
	SuccessExit      SuccessKind = "exit"
)

type ContractFee struct {
	BaseFee              float64 `json:"baseFee"`
	RecurringFeePerMonth float64 `json:"recurringFeePerMonth"`
}

// ComputeContractFee returns the one-time base fee and the monthly recurring
// fee for a contract. Both bases use the same formula.
func ComputeContractFee(basis domain.FeeBasis, rate float64, durationMonths int) (ContractFee, error) {
	fields := map[string]string{}
	if basis != domain.FeeHourly && basis != domain.FeeMonthly {
		fields["feeBasis"] = "must be hourly or monthly"
	}
	if !(rate > 0) || math.IsInf(rate, 0) {
		fields["rate"] = "must be greater than 0"
	}
	if durationMonths < 1 {
		fields["durationMonths"] = "must be at least 1"
	}
	if len(fields) > 0 {
		return ContractFee{}, domain.ValidationError("invalid contract terms", fields)
	}
	return ContractFee{
		BaseFee:              Round(rate * float64(durationMonths) * BasePercent / 100),
		RecurringFeePerMonth: Round(rate * RecurringPercent / 100),
	}, nil
}

// Policy carries the configured parts of the fee schedule.
type Policy struct {
	exitRate float64
}

// NewPolicy validates the exit fee rate. A rate outside [0.05, 0.10] is a
// configuration error and must stop startup.
func NewPolicy(exitRate float64) (Policy, error) {
	if math.IsNaN(exitRate) || exitRate < MinExitRate || exitRate > MaxExitRate {
		return Policy{}, domain.ConfigurationError("exit fee rate %v outside [%v, %v]", exitRate, MinExitRate, MaxExitRate)
	}
	return Policy{exitRate: exitRate}, nil
}

func (p Policy) ExitRate() float64 { return p.exitRate }

// ComputeSuccessFee returns the outcome-contingent fee for amount. For
// placement, amount is the annual salary of the placed candidate.
func (p Policy) ComputeSuccessFee(kind SuccessKind, amount float64) (float64, error) {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return 0, domain.FieldError("amount", "must be greater than 0")
	}
	switch kind {
	case SuccessFinancing:
		return withFloor(amount*financingPercent/100, financingFloor), nil
	case SuccessGrant:
		return withFloor(amount*grantPercent/100, grantFloor), nil
	case SuccessPlacement:
		return withFloor(amount*placementPercent/100, placementFloor), nil
	case SuccessExit:
		if p.exitRate == 0 {
			return 0, domain.ConfigurationError("exit fee rate not configured")
		}
		return withFloor(amount*p.exitRate, exitFloor), nil
	}
	return 0, domain.FieldError("kind", "must be one of financing grant placement exit")
}

func withFloor(v, floor float64) float64 {
	return Round(math.Max(v, floor))
}

// Round rounds a money amount to cents.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// Cents converts a money amount to whole cents for exact comparisons.
func Cents(v float64) int64 {
	return int64(math.Round(v * 100))
}
