package quotation

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every problem that blocks a submit. It unwraps to
// ErrIncompleteVersion.
type ValidationError struct {
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.Field+" "+p.Message)
	}
	return ErrIncompleteVersion.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrIncompleteVersion }

// ValidateForSubmit checks that every required field of the version is filled in.
func (v *Version) ValidateForSubmit() error {
	var problems []FieldProblem
	add := func(field, msg string) { problems = append(problems, FieldProblem{Field: field, Message: msg}) }

	required := []struct {
		field string
		value string
	}{
		{"system_size", v.SystemSize},
		{"panel_specifications", v.PanelSpecifications},
		{"estimated_energy_production", v.EstimatedEnergyProduction},
		{"savings", v.Savings},
		{"payback_period", v.PaybackPeriod},
		{"roi", v.ROI},
		{"incentives", v.Incentives},
		{"product_warranties", v.ProductWarranties},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			add(r.field, "is required")
		}
	}

	if len(v.CostBreakdown) == 0 {
		add("cost_breakdown", "must have at least one row")
	}
	for i, row := range v.CostBreakdown {
		prefix := fmt.Sprintf("cost_breakdown[%d].", i)
		if strings.TrimSpace(row.Item) == "" {
			add(prefix+"item", "is required")
		}
		if row.Quantity <= 0 {
			add(prefix+"quantity", "must be greater than 0")
		}
		if row.UnitPrice <= 0 {
			add(prefix+"unit_price", "must be greater than 0")
		}
	}

	if len(v.Timeline) == 0 {
		add("timeline", "must have at least one phase")
	}
	for i, ph := range v.Timeline {
		prefix := fmt.Sprintf("timeline[%d].", i)
		if strings.TrimSpace(ph.Phase) == "" {
			add(prefix+"phase", "is required")
		}
		if strings.TrimSpace(ph.Description) == "" {
			add(prefix+"description", "is required")
		}
		start, startOK := parseDate(ph.StartDate)
		end, endOK := parseDate(ph.EndDate)
		if !startOK {
			add(prefix+"start_date", "must be a date (YYYY-MM-DD)")
		}
		if !endOK {
			add(prefix+"end_date", "must be a date (YYYY-MM-DD)")
		}
		if startOK && endOK && end.Before(start) {
			add(prefix+"end_date", "must not be before start_date")
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	return t, err == nil
}
