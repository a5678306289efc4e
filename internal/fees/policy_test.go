package fees

import (
	"testing"

	"cfomatch/internal/domain"
)

func TestComputeContractFeeMonthly(t *testing.T) {
	got, err := ComputeContractFee(domain.FeeMonthly, 500_000, 6)
	if err != nil {
		t.Fatalf("ComputeContractFee: %v", err)
	}
	want := ContractFee{BaseFee: 150_000, RecurringFeePerMonth: 15_000}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputeContractFeeIsDeterministic(t *testing.T) {
	first, _ := ComputeContractFee(domain.FeeMonthly, 600_000, 3)
	for i := 0; i < 10; i++ {
		again, _ := ComputeContractFee(domain.FeeMonthly, 600_000, 3)
		if again != first {
			t.Fatalf("run %d: %+v != %+v", i, again, first)
		}
	}
	if first.BaseFee != 90_000 || first.RecurringFeePerMonth != 18_000 {
		t.Fatalf("unexpected fee %+v", first)
	}
}

func TestComputeContractFeeHourly(t *testing.T) {
	got, err := ComputeContractFee(domain.FeeHourly, 12_345, 4)
	if err != nil {
		t.Fatalf("ComputeContractFee: %v", err)
	}
	if got.BaseFee != 2_469 {
		t.Fatalf("expected base fee 2469, got %v", got.BaseFee)
	}
	if got.RecurringFeePerMonth != 370.35 {
		t.Fatalf("expected recurring 370.35, got %v", got.RecurringFeePerMonth)
	}
}

func TestComputeContractFeeRejectsBadTerms(t *testing.T) {
	_, err := ComputeContractFee("weekly", 0, 0)
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	e := err.(*domain.Error)
	for _, f := range []string{"feeBasis", "rate", "durationMonths"} {
		if _, ok := e.Fields[f]; !ok {
			t.Fatalf("expected field %q in %v", f, e.Fields)
		}
	}
}

func TestSuccessFeeFloors(t *testing.T) {
	p, err := NewPolicy(0.07)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		kind   SuccessKind
		amount float64
		want   float64
	}{
		{SuccessGrant, 1_000_000, 50_000},
		{SuccessGrant, 500_000, 50_000},
		{SuccessGrant, 2_000_000, 100_000},
		{SuccessFinancing, 1_000_000, 100_000},
		{SuccessFinancing, 10_000_000, 300_000},
		{SuccessPlacement, 1_000_000, 500_000},
		{SuccessPlacement, 6_000_000, 1_200_000},
		{SuccessExit, 5_000_000, 1_000_000},
		{SuccessExit, 100_000_000, 7_000_000},
	}
	for _, tc := range cases {
		got, err := p.ComputeSuccessFee(tc.kind, tc.amount)
		if err != nil {
			t.Fatalf("%s(%v): %v", tc.kind, tc.amount, err)
		}
		if got != tc.want {
			t.Fatalf("%s(%v): expected %v, got %v", tc.kind, tc.amount, tc.want, got)
		}
	}
}

func TestSuccessFeeRejectsInput(t *testing.T) {
	p, _ := NewPolicy(0.05)
	if _, err := p.ComputeSuccessFee("lottery", 100); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error for unknown kind, got %v", err)
	}
	if _, err := p.ComputeSuccessFee(SuccessGrant, -1); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error for negative amount, got %v", err)
	}
}

func TestNewPolicyValidatesExitRate(t *testing.T) {
	for _, rate := range []float64{0.05, 0.075, 0.10} {
		if _, err := NewPolicy(rate); err != nil {
			t.Fatalf("rate %v: unexpected error %v", rate, err)
		}
	}
	for _, rate := range []float64{0, 0.049, 0.11, 1} {
		if _, err := NewPolicy(rate); !domain.IsKind(err, domain.KindConfiguration) {
			t.Fatalf("rate %v: expected configuration error, got %v", rate, err)
		}
	}
}

func TestZeroPolicyRefusesExitFee(t *testing.T) {
	var p Policy
	if _, err := p.ComputeSuccessFee(SuccessExit, 10_000_000); !domain.IsKind(err, domain.KindConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
