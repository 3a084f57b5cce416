package valueobjects

import "fmt"

type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

var validUrgencies = map[Urgency]bool{
	UrgencyCritical: true,
	UrgencyHigh:     true,
	UrgencyMedium:   true,
	UrgencyLow:      true,
}

// AllUrgencies returns the closed set of urgencies in descending severity.
func AllUrgencies() []Urgency {
	return []Urgency{
		UrgencyCritical,
		UrgencyHigh,
		UrgencyMedium,
		UrgencyLow,
	}
}

func (u Urgency) String() string {
	return string(u)
}

func (u Urgency) IsValid() bool {
	return validUrgencies[u]
}

func (u Urgency) IsCritical() bool {
	return u == UrgencyCritical
}

func (u Urgency) IsHigh() bool {
	return u == UrgencyHigh
}

// IsSevere reports whether the urgency is critical or high.
func (u Urgency) IsSevere() bool {
	return u == UrgencyCritical || u == UrgencyHigh
}

func NewUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid urgency: %s", s)
	}
	return u, nil
}
