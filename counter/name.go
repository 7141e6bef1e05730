package counter

import (
	c "github.com/d0ngw/hitcounter/common"
)

var defaultNameRule = c.NewValidateRule("counter name must be 3 to 20 ASCII letters or digits",
	mustValidator(c.NewStrLenValidator(map[string]string{"min": "3", "max": "20"})),
	mustValidator(c.NewAlnumValidator(nil)),
)

func mustValidator(v c.StrValidator, err error) c.StrValidator {
	if err != nil {
		panic(err)
	}
	return v
}

// ValidateName check name is 3 to 20 ASCII letters or digits,
// return an *Error wrapping ErrInvalidName if not
func ValidateName(name string) error {
	if !defaultNameRule.Validate(name) {
		return newError(name, ErrInvalidName)
	}
	return nil
}

// NameValidator validate counter names by a rule of the validate service
type NameValidator struct {
	rules    c.ValidateService
	ruleName string
}

// NewNameValidator create NameValidator, it falls back to ValidateName when rules
// is nil or has no rule named ruleName
func NewNameValidator(rules c.ValidateService, ruleName string) *NameValidator {
	if rules != nil && !rules.HasRule(ruleName) {
		c.Warnf("validate rule %s not found,use the default counter name rule", ruleName)
		rules = nil
	}
	return &NameValidator{rules: rules, ruleName: ruleName}
}

// Validate the name
func (p *NameValidator) Validate(name string) error {
	if p == nil || p.rules == nil {
		return ValidateName(name)
	}
	if err := p.rules.Validate(p.ruleName, name); err != nil {
		c.Debugf("counter name %q rejected by %s:%s", name, p.ruleName, err)
		return newError(name, ErrInvalidName)
	}
	return nil
}
