package inspect

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/dropbox/godropbox/time2"
	"github.com/kashguard/go-docsig/internal/docsig/audit"
	"github.com/kashguard/go-docsig/internal/docsig/correlate"
	"github.com/kashguard/go-docsig/internal/docsig/opc"
	"github.com/kashguard/go-docsig/internal/docsig/sigline"
	"github.com/kashguard/go-docsig/internal/docsig/signer"
	"github.com/pkg/errors"
)

// 解析失败作为单一处理失败信号传播到查询门面边界
// 解析是确定性的，不做重试；失败时不返回部分结果
var (
	ErrMalformedPackage       = opc.ErrMalformedPackage
	ErrMalformedSignaturePart = opc.ErrMalformedSignaturePart
)

// Service 文档签名检查服务接口
// 两个操作都是输入字节的纯函数：相同输入产生相同输出，除计算外无副作用
type Service interface {
	FirstUnsignedSigner(ctx context.Context, req *CheckRequest) (*FirstUnsignedResult, error)
	SignatureReport(ctx context.Context, req *CheckRequest) (*Report, error)
}

// service 文档签名检查服务实现
type service struct {
	clock       time2.Clock
	auditLogger audit.Logger
}

// NewService 创建新的文档签名检查服务
//
//nolint:ireturn // returning interface is intentional for abstraction
func NewService(clock time2.Clock, auditLogger audit.Logger) (Service, error) {
	return &service{
		clock:       clock,
		auditLogger: auditLogger,
	}, nil
}

// FirstUnsignedSigner 返回文档顺序中第一个未签名的签名行
func (s *service) FirstUnsignedSigner(ctx context.Context, req *CheckRequest) (*FirstUnsignedResult, error) {
	report, err := s.inspect(req)
	s.logAudit(ctx, req, "first_unsigned_signer", err)
	if err != nil {
		return nil, err
	}

	result := &FirstUnsignedResult{}
	if unsigned := correlate.FirstUnsigned(report.Signatures); unsigned != nil {
		result.Found = true
		result.Signer = unsigned
	}

	return result, nil
}

// SignatureReport 返回全部签名行状态列表及签名计数
func (s *service) SignatureReport(ctx context.Context, req *CheckRequest) (*Report, error) {
	report, err := s.inspect(req)
	s.logAudit(ctx, req, "signature_report", err)
	if err != nil {
		return nil, err
	}

	return report, nil
}

// inspect 执行一次完整的解析、提取与关联
// 签名行提取与签名人标识提取互相独立，关联是两者输出上的纯连接
func (s *service) inspect(req *CheckRequest) (*Report, error) {
	// 打开 OPC 包
	pkg, err := opc.OpenPackage(req.Document)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open document package")
	}

	// 解析主文档部件
	body, err := pkg.MainDocument()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse main document part")
	}

	// 定位数字签名源结构
	origin, err := pkg.SignatureOrigin()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse signature origin parts")
	}

	// 提取签名行和签名人标识
	lines := sigline.Extract(body)
	records := signer.Extract(origin.Parts)

	// 关联两个集合
	statuses := correlate.Correlate(lines, records, origin.Present)

	return &Report{
		IsDigitallySigned: origin.Present,
		SignatureCount:    len(records),
		Signatures:        statuses,
	}, nil
}

// logAudit 记录审计事件（失败被吞掉，不影响响应）
func (s *service) logAudit(ctx context.Context, req *CheckRequest, operation string, inspectErr error) {
	result := "Success"
	if inspectErr != nil {
		result = "Failure"
	}

	_ = s.auditLogger.LogEvent(ctx, &audit.AuditEvent{
		Timestamp:      s.clock.Now(),
		EventType:      "DocumentInspected",
		DocumentDigest: documentDigest(req.Document),
		Operation:      operation,
		Result:         result,
		IPAddress:      req.ClientIP,
	})
}

// documentDigest 计算输入文档的摘要，用于审计日志中关联同一文档的多次检查
func documentDigest(document []byte) string {
	hash := sha256.Sum256(document)
	return hex.EncodeToString(hash[:])
}
