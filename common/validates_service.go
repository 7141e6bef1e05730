package common

import (
	"fmt"
	"strings"
)

// RuleConfig 验证规则配置
type RuleConfig struct {
	Name       string              `yaml:"name"`
	Desc       string              `yaml:"desc"`       //规则描述
	Validators []map[string]string `yaml:"validators"` //验证器列表,必须要有name
}

// ValidateRuleConfig 验证规则配置
type ValidateRuleConfig struct {
	Rules  []RuleConfig    `yaml:"rules"`
	SName  string          `yaml:"sname"` //服务的名称
	parsed validateRuleMap //解析后的结果
}

// Parse 解析验证的配置
func (p *ValidateRuleConfig) Parse() error {
	if p == nil {
		Warnf("no validate conf")
		return nil
	}
	rules := make(validateRuleMap)
	for _, ruleConfig := range p.Rules {
		ruleName := strings.TrimSpace(ruleConfig.Name)
		if len(ruleName) == 0 {
			return fmt.Errorf("The rule name must not be empty")
		}
		if _, ok := rules[ruleName]; ok {
			return fmt.Errorf("duplicate validate rule %s", ruleName)
		}
		validators := make([]StrValidator, 0, len(ruleConfig.Validators))
		for _, validatorConf := range ruleConfig.Validators {
			v, err := NewValidatorByConf(validatorConf)
			if err != nil {
				return fmt.Errorf("rule %s:%w", ruleName, err)
			}
			validators = append(validators, v)
		}
		rules[ruleName] = &ValidateRule{
			desc:       ruleConfig.Desc,
			validators: validators}
		Debugf("Add validate rule:%s", ruleName)
	}
	p.parsed = rules
	return nil
}

// NewService 根据配置解析的结果创建验证服务,必须在Parse之后调用
func (p *ValidateRuleConfig) NewService() (*RuleValidateService, error) {
	if p == nil || p.parsed == nil {
		return nil, fmt.Errorf("Can't create ValidateService from unparsed config")
	}
	svr := &RuleValidateService{rules: p.parsed}
	svr.SName = p.SName
	return svr, nil
}

// ValidateRule 定义验证规则
type ValidateRule struct {
	desc       string         //规则描述
	validators []StrValidator //通过Rules构建出来的验证规则
}

// NewValidateRule 使用desc和validators直接构建规则
func NewValidateRule(desc string, validators ...StrValidator) *ValidateRule {
	return &ValidateRule{desc: desc, validators: validators}
}

// Validate 依次使用各个验证器验证s
func (p *ValidateRule) Validate(s string) bool {
	for _, v := range p.validators {
		if !v.Validate(s) {
			return false
		}
	}
	return true
}

type validateRuleMap map[string]*ValidateRule

// ValidateConfigurer validateConfig
type ValidateConfigurer interface {
	GetValidateRuleConfig() *ValidateRuleConfig
}

// ValidateService 验证服务
type ValidateService interface {
	//Validate 使用name指定验证规则,对value进行验证,验证通过返回nil,否则返回错误原因
	Validate(name string, value string) error
	//HasRule 是否有名称为name的规则
	HasRule(name string) bool
}

// RuleValidateService  根据规则进行的验证服务
type RuleValidateService struct {
	BaseService
	rules validateRuleMap
}

// HasRule implements ValidateService
func (p *RuleValidateService) HasRule(ruleName string) bool {
	_, ok := p.rules[ruleName]
	return ok
}

// Validate 验证
func (p *RuleValidateService) Validate(ruleName string, s string) error {
	rule := p.rules[ruleName]
	if rule == nil {
		return fmt.Errorf("can't find validate rule %s", ruleName)
	}
	if !rule.Validate(s) {
		return NewValidateError(rule.desc)
	}
	return nil
}

// ValidatePair 定义验证规则名称其需要验证的值
type ValidatePair struct {
	Name  string
	Value string
	Msg   string
}

// NewValidatePair create ValidatePair
func NewValidatePair(name, value string) *ValidatePair {
	return &ValidatePair{Name: name, Value: value}
}

// ValidateAll 验证所有的规则
func ValidateAll(validateService ValidateService, nameAndValues ...*ValidatePair) error {
	for _, nv := range nameAndValues {
		if err := validateService.Validate(nv.Name, nv.Value); err != nil {
			if nv.Msg != "" {
				return NewValidateError(nv.Msg)
			}
			return err
		}
	}
	return nil
}

// HumanError 可以直接展示给用户的错误
type HumanError interface {
	error
	Human() bool
}

// ValidateError error
type ValidateError struct {
	msg string //错误消息
}

// NewValidateError new
func NewValidateError(msg string) *ValidateError {
	return &ValidateError{msg: msg}
}

func (p *ValidateError) Error() string {
	if p == nil {
		return ""
	}
	return p.msg
}

// Human impls HumanError.Human
func (p *ValidateError) Human() bool {
	return p != nil
}
