// Package api 计数器服务的http接口
package api

import (
	"errors"
	"net/http"

	c "github.com/d0ngw/hitcounter/common"
	"github.com/d0ngw/hitcounter/counter"
)

// 服务信息
const (
	ServiceMessage = "Hit Counter Service"
	ServiceVersion = "1.0.0"
)

// ErrNotTesting 非测试配置下不允许重置所有计数器
var ErrNotTesting = errors.New("reset counters is only allowed in testing")

// StatusOf 取得err对应的http状态码
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, counter.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, counter.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, counter.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// messageOf 可以展示给客户端的错误信息
func messageOf(err error) string {
	var human c.HumanError
	if errors.As(err, &human) && human.Human() {
		return human.Error()
	}
	return "Internal server error"
}
