package common

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// StrValidator 字符串验证器
type StrValidator interface {
	//Validate 验证字符串参数是否符合规则
	Validate(param string) bool
}

// StringLenValidator 字符串长度验证,长度按字节计算
type StringLenValidator struct {
	min int //最小长度
	max int //最大长度
}

// Validate 验证字符串的长度
func (p *StringLenValidator) Validate(param string) bool {
	strLen := len(param)
	return p.min <= strLen && strLen <= p.max
}

// NotEmptyValidator 非空
type NotEmptyValidator struct {
}

// Validate 验证字符串是否为空
func (p *NotEmptyValidator) Validate(param string) bool {
	if len(param) == 0 {
		return false
	}
	return len(strings.TrimSpace(param)) > 0
}

// AlnumValidator 只允许ASCII字母和数字
type AlnumValidator struct {
	empty bool //是否允许为空
}

// Validate 验证是否只包含ASCII字母和数字
func (p *AlnumValidator) Validate(param string) bool {
	if param == "" {
		return p.empty
	}
	for i := 0; i < len(param); i++ {
		b := param[i]
		if !(b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9') {
			return false
		}
	}
	return true
}

// Int64Validator 64位整数验证
type Int64Validator struct {
	min int64 //最小值
	max int64 //最大值
}

// Validate 验证整型值
func (p *Int64Validator) Validate(param string) bool {
	if len(param) == 0 {
		return true
	}
	if v, err := strconv.ParseInt(param, 10, 64); err == nil {
		return p.min <= v && v <= p.max
	}
	return false
}

// RegExValidator 正则表达式验证
type RegExValidator struct {
	pattern *regexp.Regexp //正则表达式
	empty   bool           //是否允许为空
}

// Validate 正则表达式验证
func (p *RegExValidator) Validate(param string) bool {
	if param == "" && p.empty {
		return true
	}
	return p.pattern.MatchString(param)
}

// ValidatorNewer 创建验证器的函数类型
type ValidatorNewer func(conf map[string]string) (StrValidator, error)

// NewNotEmptyValidator 创建非空验证器
func NewNotEmptyValidator(conf map[string]string) (StrValidator, error) {
	return vNOTEMPTY, nil
}

// NewAlnumValidator 创建字母数字验证器,conf["empty"]为true时允许为空
func NewAlnumValidator(conf map[string]string) (StrValidator, error) {
	return &AlnumValidator{empty: strings.ToLower(conf["empty"]) == "true"}, nil
}

// NewStrLenValidator 创建字符串长度验证,conf["min"],最小值;conf["max"],最大值
func NewStrLenValidator(conf map[string]string) (StrValidator, error) {
	minLen, err := strconv.Atoi(conf["min"])
	if err != nil {
		return nil, fmt.Errorf("invalid strlen min %q:%w", conf["min"], err)
	}
	maxLen, err := strconv.Atoi(conf["max"])
	if err != nil {
		return nil, fmt.Errorf("invalid strlen max %q:%w", conf["max"], err)
	}
	if minLen < 0 || maxLen < 0 || minLen > maxLen {
		return nil, fmt.Errorf("Invalid str length,minLen:%v,maxLen:%v", minLen, maxLen)
	}
	return &StringLenValidator{min: minLen, max: maxLen}, nil
}

// NewInt64Validator 创建int64验证,conf["min"],最小值;conf["max"],最大值
func NewInt64Validator(conf map[string]string) (StrValidator, error) {
	min, err := strconv.ParseInt(conf["min"], 10, 64)
	if err != nil {
		return nil, err
	}
	max, err := strconv.ParseInt(conf["max"], 10, 64)
	if err != nil {
		return nil, err
	}
	if min > max {
		return nil, fmt.Errorf("Invalid min %d,max %d", min, max)
	}
	return &Int64Validator{min: min, max: max}, nil
}

// NewRegexValidator 创建正则表达式验证,conf["pattern"] 正则表达式
func NewRegexValidator(conf map[string]string) (StrValidator, error) {
	pattern := conf["pattern"]
	allowEmpty := "true" == strings.ToLower(conf["empty"])
	if len(pattern) == 0 {
		return nil, fmt.Errorf("Invalid pattern %s", pattern)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegExValidator{pattern: re, empty: allowEmpty}, nil
}

//默认的构建器的名称
const (
	VNOTEMPTY = "notempty" //无构建参数
	VALNUM    = "alnum"
	VSTRLEN   = "strlen"
	VINT64    = "i64"
	VREGEX    = "regex"
)

var (
	vNOTEMPTY        = &NotEmptyValidator{}
	validateRegister = NewCopyOnWriteMap[string, ValidatorNewer]()
)

// RegValidatorNewer 根据名称注册验证器构建函数,名称重复时panic
func RegValidatorNewer(name string, validator ValidatorNewer) {
	if err := validateRegister.PutIfAbsent(name, validator); err != nil {
		panic("Duplicate validator " + err.Error())
	}
}

// NewValidatorByConf 根据配置conf["name"]及其对应的参数构建验证器
func NewValidatorByConf(conf map[string]string) (StrValidator, error) {
	name := conf["name"]
	if f, ok := validateRegister.Get(name); ok {
		return f(conf)
	}
	return nil, fmt.Errorf("Can't find the validator name:%s", name)
}

//初始化注册内置的验证器
func init() {
	RegValidatorNewer(VNOTEMPTY, NewNotEmptyValidator)
	RegValidatorNewer(VALNUM, NewAlnumValidator)
	RegValidatorNewer(VSTRLEN, NewStrLenValidator)
	RegValidatorNewer(VINT64, NewInt64Validator)
	RegValidatorNewer(VREGEX, NewRegexValidator)
}
