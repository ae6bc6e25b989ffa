package inspect

import (
	"github.com/kashguard/go-docsig/internal/docsig/correlate"
)

// CheckRequest 一次文档检查请求
// Document 是请求独占的只读字节缓冲，随请求结束丢弃
type CheckRequest struct {
	Document []byte
	ClientIP string
}

// FirstUnsignedResult 第一个未签名签名行的查询结果
// 文档没有签名行或全部已签名时 Found=false 且 Signer 为 nil
type FirstUnsignedResult struct {
	Found  bool
	Signer *correlate.SignatureStatus
}

// Report 文档签名报告（请求级聚合，完全由解析结果推导）
type Report struct {
	IsDigitallySigned bool
	SignatureCount    int
	Signatures        []correlate.SignatureStatus
}
