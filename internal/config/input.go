package config

import (
	"fmt"
	"os"

	"github.com/propgo/property-forecast/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario input files. The projection engine
// assumes pre-validated input, so all shape and range checking lives here.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario domain.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &scenario, nil
}

// ValidateScenario validates a loaded scenario.
func (ip *InputParser) ValidateScenario(s *domain.Scenario) error {
	if s == nil {
		return fmt.Errorf("scenario is required")
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if s.HorizonYears < 1 || s.HorizonYears > 60 {
		return fmt.Errorf("horizon must be between 1 and 60 years, got %d", s.HorizonYears)
	}

	if err := ip.validateProfile(&s.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	seen := map[string]bool{}
	for i, p := range s.Properties {
		if err := ip.validateProperty(&p); err != nil {
			return fmt.Errorf("property %d (%s) validation failed: %w", i, p.Name, err)
		}
		if p.ID != "" && seen[p.ID] {
			return fmt.Errorf("duplicate property id %q", p.ID)
		}
		seen[p.ID] = true
	}

	seen = map[string]bool{}
	for i, l := range s.Loans {
		if err := ip.validateLoan(&l); err != nil {
			return fmt.Errorf("loan %d (%s) validation failed: %w", i, l.ID, err)
		}
		if l.ID != "" && seen[l.ID] {
			return fmt.Errorf("duplicate loan id %q", l.ID)
		}
		seen[l.ID] = true
	}

	if err := ip.validateStress(&s.Stress); err != nil {
		return fmt.Errorf("stress parameters validation failed: %w", err)
	}

	return nil
}

func (ip *InputParser) validateProfile(p *domain.UserProfile) error {
	if p.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}
	if p.RetirementAge < 40 || p.RetirementAge > 80 {
		return fmt.Errorf("retirement age must be between 40 and 80, got %d", p.RetirementAge)
	}
	if p.InflationCpiPa.LessThan(decimal.NewFromFloat(-0.10)) {
		return fmt.Errorf("inflation rate cannot be less than -10%% (extreme deflation)")
	}
	if p.MarginalTaxRate.LessThan(decimal.Zero) || p.MarginalTaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("marginal tax rate must be between 0 and 1")
	}
	if p.LevyRate.LessThan(decimal.Zero) || p.LevyRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("levy rate must be between 0 and 1")
	}
	if p.SalaryCentsPa < 0 {
		return fmt.Errorf("salary cannot be negative")
	}
	if p.LivingExpensesCentsPa < 0 {
		return fmt.Errorf("living expenses cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateProperty(p *domain.Property) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.CurrentValueCents < 0 {
		return fmt.Errorf("current value cannot be negative")
	}
	if p.RentPerWeekCents < 0 {
		return fmt.Errorf("weekly rent cannot be negative")
	}
	if p.VacancyWeeksPa.LessThan(decimal.Zero) || p.VacancyWeeksPa.GreaterThan(decimal.NewFromInt(52)) {
		return fmt.Errorf("vacancy weeks must be between 0 and 52")
	}
	if p.MaintenancePct.LessThan(decimal.Zero) || p.MaintenancePct.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("maintenance percent must be between 0 and 1")
	}
	if p.SoldDate != nil && !p.PurchaseDate.IsZero() && p.SoldDate.Before(p.PurchaseDate) {
		return fmt.Errorf("sold date cannot be before purchase date")
	}
	return nil
}

func (ip *InputParser) validateLoan(l *domain.LoanTerms) error {
	if l.ID == "" {
		return fmt.Errorf("id is required")
	}
	if l.StartBalanceCents < 0 {
		return fmt.Errorf("start balance cannot be negative")
	}
	if l.AnnualRate.LessThan(decimal.Zero) || l.AnnualRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("annual rate must be a fraction between 0 and 1")
	}
	if l.TermYears < 1 {
		return fmt.Errorf("term must be at least 1 year, got %d", l.TermYears)
	}
	if l.InterestOnlyYears < 0 {
		return fmt.Errorf("interest-only years cannot be negative")
	}
	if l.InterestOnlyYears > l.TermYears {
		return fmt.Errorf("interest-only period (%dy) cannot exceed the loan term (%dy)", l.InterestOnlyYears, l.TermYears)
	}
	if l.OffsetStartCents < 0 || l.OffsetMonthlyContribCents < 0 {
		return fmt.Errorf("offset balances cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateStress(sp *domain.StressParams) error {
	if sp.RateBumpPct.LessThan(decimal.Zero) {
		return fmt.Errorf("rate bump cannot be negative")
	}
	if sp.GrowthHaircutPct.LessThan(decimal.Zero) {
		return fmt.Errorf("growth haircut cannot be negative")
	}
	if sp.VacancyWeeks.LessThan(decimal.Zero) || sp.VacancyWeeks.GreaterThan(decimal.NewFromInt(52)) {
		return fmt.Errorf("stress vacancy weeks must be between 0 and 52")
	}
	if sp.BorrowCapDownPct.LessThan(decimal.Zero) {
		return fmt.Errorf("borrowing-capacity cut cannot be negative")
	}
	return nil
}
