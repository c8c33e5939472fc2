package share

import (
	"strings"

	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

// Admission builds a recipient set from raw candidates. It is lenient:
// invalid and duplicate candidates are dropped silently instead of failing
// the batch.
type Admission struct {
	validator *pkgvalidator.CustomValidator
}

// NewAdmission creates an admission step backed by the recipient tag
func NewAdmission(v *pkgvalidator.CustomValidator) *Admission {
	if v == nil {
		v = pkgvalidator.New()
	}
	return &Admission{validator: v}
}

// Admit trims each candidate and keeps the first occurrence of every valid
// address, in input order.
func (a *Admission) Admit(candidates []string) []string {
	admitted := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		addr := strings.TrimSpace(candidate)
		if !a.validator.IsRecipient(addr) {
			continue
		}
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		admitted = append(admitted, addr)
	}
	return admitted
}
