package common

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotEmpty(t *testing.T) {
	va := &NotEmptyValidator{}
	assert.False(t, va.Validate(""))
	assert.False(t, va.Validate(" "))
	assert.False(t, va.Validate("　"))
	assert.True(t, va.Validate(" abc "))
	assert.True(t, va.Validate("　a　"))
}

func TestAlnum(t *testing.T) {
	va := &AlnumValidator{}
	assert.True(t, va.Validate("abcXYZ019"))
	assert.False(t, va.Validate(""))
	assert.False(t, va.Validate("abc!"))
	assert.False(t, va.Validate("ab c"))
	assert.False(t, va.Validate("abc_1"))
	assert.False(t, va.Validate("计数器"))
	assert.False(t, va.Validate("ａbc"))

	empty, err := NewAlnumValidator(map[string]string{"empty": "true"})
	assert.NoError(t, err)
	assert.True(t, empty.Validate(""))
}

func TestStrLen(t *testing.T) {
	va, err := NewStrLenValidator(map[string]string{"min": "3", "max": "20"})
	assert.NoError(t, err)
	assert.False(t, va.Validate("ab"))
	assert.True(t, va.Validate("abc"))
	assert.True(t, va.Validate(strings.Repeat("a", 20)))
	assert.False(t, va.Validate(strings.Repeat("a", 21)))

	_, err = NewStrLenValidator(map[string]string{"min": "5", "max": "2"})
	assert.Error(t, err)
	_, err = NewStrLenValidator(map[string]string{"min": "a", "max": "2"})
	assert.Error(t, err)
}

func TestInteger(t *testing.T) {
	va64 := &Int64Validator{
		min: -3,
		max: 10}
	assert.False(t, va64.Validate("a"))
	assert.False(t, va64.Validate("11"))
	assert.True(t, va64.Validate("10"))
	assert.True(t, va64.Validate("-3"))
	assert.True(t, va64.Validate(""))
}

func TestRegex(t *testing.T) {
	rv := &RegExValidator{
		pattern: regexp.MustCompile("^a+")}

	assert.True(t, rv.Validate("a"))
	assert.False(t, rv.Validate("1a"))

	_, err := NewRegexValidator(map[string]string{"pattern": "("})
	assert.Error(t, err)
	_, err = NewRegexValidator(map[string]string{})
	assert.Error(t, err)
}

func TestNewValidatorByConf(t *testing.T) {
	v, err := NewValidatorByConf(map[string]string{"name": VALNUM})
	assert.NoError(t, err)
	assert.IsType(t, &AlnumValidator{}, v)

	_, err = NewValidatorByConf(map[string]string{"name": "no_such"})
	assert.Error(t, err)

	assert.Panics(t, func() {
		RegValidatorNewer(VSTRLEN, NewStrLenValidator)
	})
}

var validatesData = `
sname: v1
rules:
- name: counterName
  desc: "只允许3到20个字母或数字"
  validators:
  - name: strlen
    min: "3"
    max: "20"
  - name: alnum
- name: allowempty
  desc: "字符串可以为空,如果不为空,则最大长度为5"
  validators:
  - name: strlen
    min: "0"
    max: "5"
`

func TestRuleValidateService(t *testing.T) {
	conf := &ValidateRuleConfig{}
	assert.NoError(t, LoadYAML([]byte(validatesData), conf))
	assert.NoError(t, conf.Parse())

	svc, err := conf.NewService()
	assert.NoError(t, err)
	assert.Equal(t, "v1", svc.Name())
	assert.True(t, svc.HasRule("counterName"))
	assert.False(t, svc.HasRule("none"))

	assert.NoError(t, svc.Validate("counterName", "abc"))
	err = svc.Validate("counterName", "ab")
	assert.Error(t, err)
	herr, ok := err.(HumanError)
	assert.True(t, ok)
	assert.True(t, herr.Human())
	assert.Equal(t, "只允许3到20个字母或数字", err.Error())

	assert.NoError(t, svc.Validate("allowempty", ""))
	assert.Error(t, svc.Validate("none", "abc"))

	err = ValidateAll(svc, NewValidatePair("counterName", "abc"), &ValidatePair{Name: "allowempty", Value: "toolong", Msg: "too long"})
	assert.EqualError(t, err, "too long")
}

func TestValidateRuleConfigError(t *testing.T) {
	conf := &ValidateRuleConfig{Rules: []RuleConfig{{Name: " "}}}
	assert.Error(t, conf.Parse())

	conf = &ValidateRuleConfig{Rules: []RuleConfig{{Name: "a", Validators: []map[string]string{{"name": "bad"}}}}}
	assert.Error(t, conf.Parse())

	var nilConf *ValidateRuleConfig
	assert.NoError(t, nilConf.Parse())
	_, err := nilConf.NewService()
	assert.Error(t, err)
}
