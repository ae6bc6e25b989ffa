package opc

import (
	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

const (
	// 主文档部件（WordprocessingML 正文）
	mainDocumentPartName = "word/document.xml"
	// 数字签名源部件，存在即表示文档已附加签名容器
	signatureOriginPartName = "_xmlsignatures/origin.sigs"
	// 签名子部件前缀
	signaturePartPrefix = "_xmlsignatures/"
)

var (
	ErrMalformedPackage       = errors.New("malformed OPC package")
	ErrMalformedSignaturePart = errors.New("malformed signature part")
)

// SignatureOrigin 数字签名源结构
// Present 跟踪签名源容器是否存在，与子部件数量无关：
// 容器存在但没有任何签名子部件时 Present 仍为 true
type SignatureOrigin struct {
	Present bool
	Parts   []*etree.Document
}
