package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
)

// PostCheckDocumentPayload 文档检查请求体
type PostCheckDocumentPayload struct {
	// base64 编码的 OPC 文档字节
	// Required: true
	Document *strfmt.Base64 `json:"document"`
}

// Validate validates this post check document payload
func (m *PostCheckDocumentPayload) Validate(_ strfmt.Registry) error {
	if m.Document == nil {
		return errors.Required("document", "body", nil)
	}

	return nil
}

// SignatureStatusItem 单个签名行的关联状态
type SignatureStatusItem struct {
	// 文档作者声明的建议签名人（缺失时为 "Unknown"）
	// Required: true
	SuggestedSigner *string `json:"suggestedSigner"`

	// 建议签名人邮箱（缺失时为 "Unknown"）
	// Required: true
	Email *string `json:"email"`

	// 是否已被附加签名满足
	// Required: true
	Signed *bool `json:"signed"`
}

// Validate validates this signature status item
func (m *SignatureStatusItem) Validate(_ strfmt.Registry) error {
	if m.SuggestedSigner == nil {
		return errors.Required("suggestedSigner", "body", nil)
	}
	if m.Email == nil {
		return errors.Required("email", "body", nil)
	}
	if m.Signed == nil {
		return errors.Required("signed", "body", nil)
	}

	return nil
}

// PostFirstUnsignedSignerResponse 第一个未签名签名行查询响应
type PostFirstUnsignedSignerResponse struct {
	// 是否存在未签名的签名行
	// Required: true
	Found *bool `json:"found"`

	// 第一个未签名的签名行，found=false 时缺省
	Signer *SignatureStatusItem `json:"signer,omitempty"`
}

// Validate validates this post first unsigned signer response
func (m *PostFirstUnsignedSignerResponse) Validate(formats strfmt.Registry) error {
	if m.Found == nil {
		return errors.Required("found", "body", nil)
	}
	if m.Signer != nil {
		return m.Signer.Validate(formats)
	}

	return nil
}

// PostCheckSignaturesResponse 完整签名状态报告响应
type PostCheckSignaturesResponse struct {
	// 包中是否存在数字签名源结构
	// Required: true
	IsDigitallySigned *bool `json:"isDigitallySigned"`

	// 包内签名相关证书标识条目计数
	// Required: true
	SignatureCount *int64 `json:"signatureCount"`

	// 按文档顺序的签名行状态列表
	// Required: true
	Signatures []*SignatureStatusItem `json:"signatures"`
}

// Validate validates this post check signatures response
func (m *PostCheckSignaturesResponse) Validate(formats strfmt.Registry) error {
	if m.IsDigitallySigned == nil {
		return errors.Required("isDigitallySigned", "body", nil)
	}
	if m.SignatureCount == nil {
		return errors.Required("signatureCount", "body", nil)
	}
	if m.Signatures == nil {
		return errors.Required("signatures", "body", nil)
	}

	for _, item := range m.Signatures {
		if item == nil {
			continue
		}
		if err := item.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}

// GetAuditLogsResponseEventsItems0 审计日志条目
type GetAuditLogsResponseEventsItems0 struct {
	// Required: true
	Timestamp *strfmt.DateTime `json:"timestamp"`

	// Required: true
	EventType *string `json:"eventType"`

	// Required: true
	Operation *string `json:"operation"`

	// Required: true
	Result *string `json:"result"`

	DocumentDigest string                 `json:"documentDigest,omitempty"`
	IPAddress      string                 `json:"ipAddress,omitempty"`
	Details        map[string]interface{} `json:"details,omitempty"`
}

// Validate validates this get audit logs response events items0
func (m *GetAuditLogsResponseEventsItems0) Validate(_ strfmt.Registry) error {
	if m.Timestamp == nil {
		return errors.Required("timestamp", "body", nil)
	}
	if m.EventType == nil {
		return errors.Required("eventType", "body", nil)
	}
	if m.Operation == nil {
		return errors.Required("operation", "body", nil)
	}
	if m.Result == nil {
		return errors.Required("result", "body", nil)
	}

	return nil
}

// GetAuditLogsResponse 审计日志查询响应
type GetAuditLogsResponse struct {
	Events []*GetAuditLogsResponseEventsItems0 `json:"events"`
	Total  int64                               `json:"total"`
}

// Validate validates this get audit logs response
func (m *GetAuditLogsResponse) Validate(formats strfmt.Registry) error {
	for _, event := range m.Events {
		if event == nil {
			continue
		}
		if err := event.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}
