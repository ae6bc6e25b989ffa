package signer

import (
	"github.com/beevik/etree"
)

// Extract 遍历所有签名子部件，提取每个 X509IssuerName 元素的文本内容
// 子部件间顺序对匹配无影响，但调用方传入的顺序决定计数遍历的稳定性
func Extract(parts []*etree.Document) []IdentityRecord {
	records := make([]IdentityRecord, 0)

	for _, part := range parts {
		root := part.Root()
		if root == nil {
			continue
		}
		walk(root, &records)
	}

	return records
}

func walk(el *etree.Element, records *[]IdentityRecord) {
	// 按本地名匹配，忽略命名空间（不同签名实现使用不同的 dsig 前缀）
	if el.Tag == issuerNameTag {
		*records = append(*records, IdentityRecord{RawIdentity: el.Text()})
	}

	for _, child := range el.ChildElements() {
		walk(child, records)
	}
}
