package sigline

import (
	"strings"

	"github.com/beevik/etree"
)

// Extract 按文档顺序（深度优先）提取正文中的所有签名行
// 只选择 Office 绘图命名空间下限定名为 signatureline 的元素
func Extract(doc *etree.Document) []SignatureLine {
	lines := make([]SignatureLine, 0)

	root := doc.Root()
	if root == nil {
		return lines
	}

	walk(root, &lines)

	return lines
}

func walk(el *etree.Element, lines *[]SignatureLine) {
	if el.Tag == signatureLineTag && el.NamespaceURI() == officeNamespaceURI {
		*lines = append(*lines, SignatureLine{
			SuggestedSigner:      attrOrUnknown(el, suggestedSignerAttr),
			SuggestedSignerEmail: attrOrUnknown(el, suggestedSignerEmailAttr),
			Order:                len(*lines),
		})
	}

	for _, child := range el.ChildElements() {
		walk(child, lines)
	}
}

// attrOrUnknown 读取签名行属性，缺失或为空白时返回 UnknownValue
// 这是对可选输入的全函数，不走错误路径
func attrOrUnknown(el *etree.Element, key string) string {
	for _, attr := range el.Attr {
		if attr.Key != key {
			continue
		}
		// 属性通常带 Office 命名空间前缀，部分生成器省略前缀
		if attr.Space != "" && attr.NamespaceURI() != officeNamespaceURI {
			continue
		}
		if strings.TrimSpace(attr.Value) == "" {
			return UnknownValue
		}
		return attr.Value
	}

	return UnknownValue
}
