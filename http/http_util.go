package http

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	c "github.com/d0ngw/hitcounter/common"
)

// ErrorResp 错误响应
type ErrorResp struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// AcceptMsgPack 客户端是否接受msgpack格式的响应
func AcceptMsgPack(r *http.Request) bool {
	if r == nil {
		return false
	}
	for _, accept := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType := strings.TrimSpace(strings.SplitN(accept, ";", 2)[0])
		if mediaType == ContentTypeMsgPack || mediaType == "application/x-msgpack" {
			return true
		}
	}
	return false
}

// Render 根据请求的Accept选择msgpack或者JSON渲染data
func Render(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	var body []byte
	var err error
	contentType := ContentTypeJSON
	if AcceptMsgPack(r) {
		contentType = ContentTypeMsgPack
		body, err = MsgPackEncodeBytes(data)
	} else {
		body, err = JSONEncodeBytes(data)
		body = append(body, '\n')
	}
	if err != nil {
		c.Errorf("encode %T fail,err:%s", data, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err = w.Write(body); err != nil {
		c.Warnf("write response fail,err:%s", err)
	}
}

// RenderJSON 渲染JSON
func RenderJSON(w http.ResponseWriter, jsonData interface{}) {
	Render(w, nil, http.StatusOK, jsonData)
}

// RenderError 渲染错误响应,status为http状态码
func RenderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if status >= http.StatusInternalServerError {
		c.Errorf("%d %s", status, msg)
	} else {
		c.Warnf("%s: %s", http.StatusText(status), msg)
	}
	Render(w, r, status, &ErrorResp{Status: status, Error: http.StatusText(status), Message: msg})
}

// RenderText 渲染Text
func RenderText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

// BaseURL 根据请求取得服务的基础URL,例如http://localhost:8080
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// DoRequest 发送请求,返回状态码、响应体和header
func DoRequest(client *http.Client, method, url string, header http.Header) (status int, body []byte, respHeader http.Header, err error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return 0, nil, nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}
	return resp.StatusCode, body, resp.Header, nil
}

// GetURL 请求URL,状态码不是200时返回错误
func GetURL(client *http.Client, url string) (string, error) {
	status, body, _, err := DoRequest(client, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("Status:%d,msg:%s", status, http.StatusText(status))
	}
	return strings.TrimSpace(string(body)), nil
}
