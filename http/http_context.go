package http

import (
	"context"
	"net/http"
)

type key int

const (
	errorKey     key = 0 // 处理错误的key
	requestIDKey key = 1 // 请求ID的key
)

// RequestWithContext 向req的context中设置key = val,返回新的request
func RequestWithContext(req *http.Request, key, val interface{}) *http.Request {
	ctx := req.Context()
	ctx = context.WithValue(ctx, key, val)
	return req.WithContext(ctx)
}

// FromRequestContext 从req的context中取得key值
func FromRequestContext(req *http.Request, key interface{}) interface{} {
	return req.Context().Value(key)
}

// RequestWithError 向req中设置当前处理的错误,返回新的request,设置了错误的请求不会再交给处理函数
func RequestWithError(req *http.Request, err error) *http.Request {
	return RequestWithContext(req, errorKey, err)
}

// ErrorFromRequestContext 从req的context取得错误值,没有错误时返回nil
func ErrorFromRequestContext(req *http.Request) error {
	err, _ := req.Context().Value(errorKey).(error)
	return err
}

// RequestID 取得由RequestIDMiddleware设置的请求ID
func RequestID(req *http.Request) string {
	id, _ := req.Context().Value(requestIDKey).(string)
	return id
}
