package http

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"unicode"
)

// Controller 接口定义http处理器
type Controller interface {
	// 控制器的名称
	GetName() string
	// 路径前缀,Controller的所有pattern都以该路径为前缀
	GetPath() string
	// GetPatternMethods 返回pattern与处理方法名称的映射,pattern的格式与http.ServeMux一致,例如"GET /items/{id}"
	// 返回nil时,所有的处理方法按照下划线命名绑定到GetPath()下
	GetPatternMethods() map[string]string
}

// BaseController 表示一个控制器
type BaseController struct {
	Name           string            // Controller的名称
	Path           string            // Controller的路径
	PatternMethods map[string]string // pattern -> 方法名
}

// GetName implements Controller.GetName
func (p *BaseController) GetName() string {
	return p.Name
}

// GetPath implements Controller.GetPath
func (p *BaseController) GetPath() string {
	return p.Path
}

// GetPatternMethods implements Controller.GetPatternMethods
func (p *BaseController) GetPatternMethods() map[string]string {
	return p.PatternMethods
}

var (
	m               http.HandlerFunc
	handlerFuncType = reflect.TypeOf(m)
)

// ReflectHandlers 查找controller中签名为http.HandlerFunc的可导出方法,key为方法名
func ReflectHandlers(controller Controller) (handlers map[string]http.HandlerFunc, err error) {
	val := reflect.ValueOf(controller)
	if !val.IsValid() || val.Kind() != reflect.Ptr || val.IsNil() {
		return nil, fmt.Errorf("controller must be a valid pointer")
	}

	handlers = map[string]http.HandlerFunc{}
	controllerType := val.Type()
	for i := 0; i < val.NumMethod(); i++ {
		methodVal := val.Method(i)
		if methodVal.Type().ConvertibleTo(handlerFuncType) {
			handlers[controllerType.Method(i).Name] = methodVal.Convert(handlerFuncType).Interface().(http.HandlerFunc)
		}
	}
	return handlers, nil
}

// controllerPatterns 解析controller的pattern与处理函数
func controllerPatterns(controller Controller) (map[string]http.HandlerFunc, error) {
	handlers, err := ReflectHandlers(controller)
	if err != nil {
		return nil, err
	}

	patterns := map[string]http.HandlerFunc{}
	patternMethods := controller.GetPatternMethods()
	if patternMethods == nil {
		base := controller.GetPath()
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		for name, h := range handlers {
			patterns[base+ToUnderlineName(name)] = h
		}
		return patterns, nil
	}

	for pattern, methodName := range patternMethods {
		h, ok := handlers[methodName]
		if !ok {
			return nil, fmt.Errorf("can't find handler method %s in %T for pattern %s", methodName, controller, pattern)
		}
		patterns[JoinPattern(controller.GetPath(), pattern)] = h
	}
	return patterns, nil
}

// JoinPattern 将base路径加到pattern的路径部分之前,pattern可以带有http方法前缀;
// 带有host的pattern保持不变
func JoinPattern(base, pattern string) string {
	method := ""
	if i := strings.IndexByte(pattern, ' '); i > 0 {
		method = pattern[:i+1]
		pattern = strings.TrimLeft(pattern[i+1:], " ")
	}
	if !strings.HasPrefix(pattern, "/") {
		return method + pattern
	}
	return method + strings.TrimSuffix(base, "/") + pattern
}

// ToUnderlineName 将驼峰命名改为小写的下划线命名
func ToUnderlineName(camelName string) string {
	nameRune := []rune(camelName)
	normalizeName := make([]rune, 0, len(nameRune))

	for ni := 0; ni < len(nameRune); ni++ {
		if ni != 0 && unicode.IsUpper(nameRune[ni]) && unicode.IsLower(nameRune[ni-1]) {
			normalizeName = append(normalizeName, '_')
		}

		r := nameRune[ni]
		if unicode.IsUpper(nameRune[ni]) {
			r = unicode.ToLower(r)
		}
		normalizeName = append(normalizeName, r)
	}
	return string(normalizeName)
}
